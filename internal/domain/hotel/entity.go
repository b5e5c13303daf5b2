package hotel

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	ErrEmptyName         = errors.New("name cannot be empty")
	ErrNameTooLong       = errors.New("name is too long (max 255 characters)")
	ErrEmptyLocation     = errors.New("location cannot be empty")
	ErrEmptyDescription  = errors.New("description cannot be empty")
	ErrImageURLTooLong   = errors.New("image url is too long (max 500 characters)")
	ErrEmptyRoomNumber   = errors.New("room number must be between 1 and 50 characters")
	ErrNonPositivePrice  = errors.New("price per night must be greater than zero")
	ErrInvalidPriceValue = errors.New("price per night has more than two decimal places")
)

const (
	MaxNameLength       = 255
	MaxLocationLength   = 255
	MaxImageURLLength   = 500
	MaxRoomNumberLength = 50
)

type Hotel struct {
	id          uuid.UUID
	name        string
	location    string
	description string
	imgURL      *string
	createdAt   time.Time
}

func NewHotel(name, location, description string, imgURL *string, now time.Time) (*Hotel, error) {
	name = strings.TrimSpace(name)
	location = strings.TrimSpace(location)
	description = strings.TrimSpace(description)

	switch {
	case name == "":
		return nil, ErrEmptyName
	case utf8.RuneCountInString(name) > MaxNameLength:
		return nil, ErrNameTooLong
	case location == "" || utf8.RuneCountInString(location) > MaxLocationLength:
		return nil, ErrEmptyLocation
	case description == "":
		return nil, ErrEmptyDescription
	}
	if err := validateImageURL(imgURL); err != nil {
		return nil, err
	}

	return &Hotel{
		id:          uuid.New(),
		name:        name,
		location:    location,
		description: description,
		imgURL:      imgURL,
		createdAt:   now,
	}, nil
}

func (h *Hotel) ID() uuid.UUID        { return h.id }
func (h *Hotel) Name() string         { return h.name }
func (h *Hotel) Location() string     { return h.location }
func (h *Hotel) Description() string  { return h.description }
func (h *Hotel) ImgURL() *string      { return h.imgURL }
func (h *Hotel) CreatedAt() time.Time { return h.createdAt }

type Room struct {
	id            uuid.UUID
	hotelID       uuid.UUID
	roomNumber    string
	roomType      int
	pricePerNight Money
	imgURL        *string
}

func NewRoom(hotelID uuid.UUID, roomNumber string, roomType int, price Money, imgURL *string) (*Room, error) {
	roomNumber = strings.TrimSpace(roomNumber)
	if roomNumber == "" || utf8.RuneCountInString(roomNumber) > MaxRoomNumberLength {
		return nil, ErrEmptyRoomNumber
	}
	if price.Cents() <= 0 {
		return nil, ErrNonPositivePrice
	}
	if err := validateImageURL(imgURL); err != nil {
		return nil, err
	}

	return &Room{
		id:            uuid.New(),
		hotelID:       hotelID,
		roomNumber:    roomNumber,
		roomType:      roomType,
		pricePerNight: price,
		imgURL:        imgURL,
	}, nil
}

func ReconstructRoom(id, hotelID uuid.UUID, roomNumber string, roomType int, price Money, imgURL *string) *Room {
	return &Room{
		id:            id,
		hotelID:       hotelID,
		roomNumber:    roomNumber,
		roomType:      roomType,
		pricePerNight: price,
		imgURL:        imgURL,
	}
}

func (r *Room) ID() uuid.UUID        { return r.id }
func (r *Room) HotelID() uuid.UUID   { return r.hotelID }
func (r *Room) RoomNumber() string   { return r.roomNumber }
func (r *Room) RoomType() int        { return r.roomType }
func (r *Room) PricePerNight() Money { return r.pricePerNight }
func (r *Room) ImgURL() *string      { return r.imgURL }

func validateImageURL(imgURL *string) error {
	if imgURL != nil && utf8.RuneCountInString(*imgURL) > MaxImageURLLength {
		return ErrImageURLTooLong
	}
	return nil
}
