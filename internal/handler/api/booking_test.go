//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"hotel-platform/internal/handler/api"
	resdto "hotel-platform/internal/handler/dto/response"
	"hotel-platform/internal/pkg/errs"
	"hotel-platform/internal/usecase/commands"
	"hotel-platform/internal/usecase/queries"
	"hotel-platform/tests/common/builder"
	"hotel-platform/tests/common/httptest"
	"hotel-platform/tests/common/testutil"
	commandsmock "hotel-platform/tests/mock/commands"
	queriesmock "hotel-platform/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.BookingHandler
	userID       uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.userID)
		c.Next()
	}

	s.router.POST("/bookings", authMiddleware, s.handler.Create)
	s.router.GET("/bookings/my", authMiddleware, s.handler.ListMine)
	s.router.DELETE("/bookings/:id", authMiddleware, s.handler.Cancel)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
	expectMsg  string
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"
	bb := builder.NewBookingBuilder()
	reqBody := bb.BuildRequestDTO()

	s.Run("success: returns 201 with the admitted booking", func() {
		view := bb.WithUserID(s.userID).BuildView()
		s.mockCommands.EXPECT().Reserve(gomock.Any(), commands.ReserveInput{
			RoomID: bb.RoomID, UserID: s.userID, CheckIn: bb.CheckIn, CheckOut: bb.CheckOut,
		}).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.ID, body.ID)
		s.Equal("2025-07-01", body.CheckInDate)
		s.Equal("2025-07-04", body.CheckOutDate)
		s.Equal("120.00", body.Room.PricePerNight)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/bookings/" + view.ID.String()})
	})

	s.Run("error: 400 before admission on malformed input", func() {
		cases := []testCaseBooking{
			{name: "missing room_id", mutate: testutil.Field("room_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing check_in_date", mutate: testutil.Field("check_in_date", nil), expectCode: http.StatusBadRequest},
			{name: "datetime instead of date", mutate: testutil.Field("check_in_date", "2025-07-01T00:00:00Z"), expectCode: http.StatusBadRequest, expectMsg: "YYYY-MM-DD"},
			{name: "nonexistent date", mutate: testutil.Field("check_out_date", "2025-02-30"), expectCode: http.StatusBadRequest, expectMsg: "YYYY-MM-DD"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
			})
		}
	})

	s.Run("error: use case failures map to status codes", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
			expectMsg  string
		}{
			{name: "invalid range", err: errs.Mark(errs.New("check-out date must be after check-in date"), errs.ErrValidation), expectCode: http.StatusBadRequest, expectMsg: "check-out date must be after check-in date"},
			{name: "overlap", err: commands.ErrRoomUnavailable, expectCode: http.StatusBadRequest, expectMsg: "Room is not available"},
			{name: "unknown room", err: commands.ErrRoomNotFound, expectCode: http.StatusNotFound, expectMsg: "Room not found"},
			{name: "lock timeout", err: errs.Mark(errs.New("55P03"), commands.ErrAdmissionBusy), expectCode: http.StatusServiceUnavailable, expectMsg: "retry"},
			{name: "database down", err: errs.Mark(errs.New("conn refused"), errs.ErrDatabaseOperationFailed), expectCode: http.StatusServiceUnavailable},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Reserve(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
				if tc.expectCode == http.StatusServiceUnavailable {
					httptest.AssertHeaders(s.T(), rec, map[string]string{"Retry-After": "1"})
				}
			})
		}
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestListMine
// ================================================================================

func (s *BookingHandlerTestSuite) TestListMine() {
	s.Run("success: returns the user's bookings", func() {
		views := []*queries.ReservationView{
			builder.NewBookingBuilder().WithUserID(s.userID).BuildView(),
			builder.NewBookingBuilder().WithUserID(s.userID).WithDates("2025-08-01", "2025-08-02").BuildView(),
		}
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/my", nil, "token")

		var body []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
		s.Equal("2025-08-01", body[1].CheckInDate)
	})

	s.Run("success: empty list is an empty array", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/my", nil, "token")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq("[]", rec.Body.String())
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancel() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), bookingID, s.userID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "token")

		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 403 for another user's booking", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), bookingID, s.userID).Return(commands.ErrForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "access")
	})

	s.Run("error: 404 for unknown booking", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), bookingID, s.userID).Return(commands.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 400 for malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/not-a-uuid", nil, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking id")
	})
}
