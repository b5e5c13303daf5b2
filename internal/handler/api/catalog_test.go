//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"hotel-platform/internal/domain/hotel"
	"hotel-platform/internal/handler/api"
	resdto "hotel-platform/internal/handler/dto/response"
	"hotel-platform/internal/usecase/commands"
	"hotel-platform/internal/usecase/queries"
	"hotel-platform/tests/common/httptest"
	"hotel-platform/tests/common/testutil"
	commandsmock "hotel-platform/tests/mock/commands"
	queriesmock "hotel-platform/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCatalogCommands
	mockQueries  *queriesmock.MockHotelQueries
	handler      *api.CatalogHandler
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCatalogCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockHotelQueries(s.mockCtrl)
	s.handler = api.NewCatalogHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/hotels", s.handler.ListHotels)
	s.router.POST("/hotels", s.handler.CreateHotel)
	s.router.GET("/hotels/:id/rooms", s.handler.ListRooms)
	s.router.POST("/hotels/:id/rooms", s.handler.CreateRoom)
	s.router.GET("/rooms/:id", s.handler.GetRoom)
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func (s *CatalogHandlerTestSuite) TestListHotels() {
	img := "https://img.example.com/h.png"
	views := []*queries.HotelView{
		{ID: uuid.New(), Name: "Grand", Location: "Lisbon", Description: "Sea view", ImgURL: &img, CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: uuid.New(), Name: "Budget", Location: "Porto", Description: "Cheap", CreatedAt: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)},
	}
	s.mockQueries.EXPECT().ListHotels(gomock.Any()).Return(views, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/hotels", nil, "")

	var body []resdto.HotelResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	want := []resdto.HotelResponse{
		{ID: views[0].ID, Name: "Grand", Location: "Lisbon", Description: "Sea view", ImgURL: &img, CreatedAt: views[0].CreatedAt},
		{ID: views[1].ID, Name: "Budget", Location: "Porto", Description: "Cheap", CreatedAt: views[1].CreatedAt},
	}
	if diff := cmp.Diff(want, body); diff != "" {
		s.T().Errorf("hotels mismatch (-want +got):\n%s", diff)
	}
}

func (s *CatalogHandlerTestSuite) TestCreateHotel() {
	reqBody := map[string]any{"name": "Grand", "location": "Lisbon", "description": "Sea view"}

	s.Run("success", func() {
		view := &queries.HotelView{ID: uuid.New(), Name: "Grand", Location: "Lisbon", Description: "Sea view"}
		s.mockCommands.EXPECT().CreateHotel(gomock.Any(), commands.CreateHotelInput{Name: "Grand", Location: "Lisbon", Description: "Sea view"}).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/hotels", reqBody, "token")

		var body resdto.HotelResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.ID, body.ID)
	})

	s.Run("error: missing location", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/hotels",
			testutil.DtoMap(s.T(), reqBody, testutil.Field("location", nil)), "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *CatalogHandlerTestSuite) TestCreateRoom() {
	hotelID := uuid.New()
	url := "/hotels/" + hotelID.String() + "/rooms"
	reqBody := map[string]any{"room_number": "101", "room_type": 2, "price_per_night": 120.5}

	s.Run("success: price accepted as JSON number", func() {
		s.mockCommands.EXPECT().CreateRoom(gomock.Any(), commands.CreateRoomInput{
			HotelID: hotelID, RoomNumber: "101", RoomType: 2, PricePerNight: hotel.NewMoney(12050),
		}).Return(&queries.RoomView{ID: uuid.New(), HotelID: hotelID, RoomNumber: "101", RoomType: 2, PricePerNight: "120.50"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var body resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("120.50", body.PricePerNight)
	})

	s.Run("success: price accepted as string", func() {
		s.mockCommands.EXPECT().CreateRoom(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in commands.CreateRoomInput) (*queries.RoomView, error) {
				s.Equal(int64(9900), in.PricePerNight.Cents())
				return &queries.RoomView{ID: uuid.New(), PricePerNight: "99.00"}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			testutil.DtoMap(s.T(), reqBody, testutil.Field("price_per_night", "99")), "token")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 on bad input", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "three decimals", mutate: testutil.Field("price_per_night", 10.005)},
			{name: "missing room_type", mutate: testutil.Field("room_type", nil)},
			{name: "missing room_number", mutate: testutil.Field("room_number", nil)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 404 for unknown hotel", func() {
		s.mockCommands.EXPECT().CreateRoom(gomock.Any(), gomock.Any()).Return(nil, commands.ErrHotelNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Hotel not found")
	})

	s.Run("error: 400 for duplicate room number", func() {
		s.mockCommands.EXPECT().CreateRoom(gomock.Any(), gomock.Any()).Return(nil, commands.ErrRoomNumberTaken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Room number already exists")
	})
}

func (s *CatalogHandlerTestSuite) TestListRooms() {
	hotelID := uuid.New()

	s.Run("error: 404 for unknown hotel", func() {
		s.mockQueries.EXPECT().ListRooms(gomock.Any(), hotelID).Return(nil, queries.ErrHotelNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/hotels/"+hotelID.String()+"/rooms", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Hotel not found")
	})

	s.Run("success: empty hotel", func() {
		s.mockQueries.EXPECT().ListRooms(gomock.Any(), hotelID).Return([]*queries.RoomView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/hotels/"+hotelID.String()+"/rooms", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq("[]", rec.Body.String())
	})
}

func (s *CatalogHandlerTestSuite) TestGetRoom() {
	roomID := uuid.New()

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetRoom(gomock.Any(), roomID).
			Return(&queries.RoomView{ID: roomID, RoomNumber: "7", PricePerNight: "80.00"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/"+roomID.String(), nil, "")

		var body resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("7", body.RoomNumber)
	})

	s.Run("error: 404", func() {
		s.mockQueries.EXPECT().GetRoom(gomock.Any(), roomID).Return(nil, queries.ErrRoomNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/"+roomID.String(), nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room not found")
	})
}
