package reservation

import (
	"errors"
	"time"
)

const DateLayout = "2006-01-02"

var ErrInvalidStay = errors.New("check-out date must be after check-in date")

// Stay is a half-open date range [checkIn, checkOut). Both ends are calendar
// dates normalised to midnight UTC.
type Stay struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStay(checkIn, checkOut time.Time) (Stay, error) {
	in := truncateDate(checkIn)
	out := truncateDate(checkOut)
	if !out.After(in) {
		return Stay{}, ErrInvalidStay
	}
	return Stay{checkIn: in, checkOut: out}, nil
}

// ParseStay accepts YYYY-MM-DD dates.
func ParseStay(checkIn, checkOut string) (Stay, error) {
	in, err := time.Parse(DateLayout, checkIn)
	if err != nil {
		return Stay{}, ErrInvalidStay
	}
	out, err := time.Parse(DateLayout, checkOut)
	if err != nil {
		return Stay{}, ErrInvalidStay
	}
	return NewStay(in, out)
}

func (s Stay) CheckIn() time.Time  { return s.checkIn }
func (s Stay) CheckOut() time.Time { return s.checkOut }

func (s Stay) Nights() int {
	return int(s.checkOut.Sub(s.checkIn).Hours() / 24)
}

// Overlaps reports whether the two ranges share at least one night.
// A stay that checks in on the day another checks out does not overlap it.
func (s Stay) Overlaps(other Stay) bool {
	return s.checkIn.Before(other.checkOut) && s.checkOut.After(other.checkIn)
}

func (s Stay) String() string {
	return "[" + s.checkIn.Format(DateLayout) + "," + s.checkOut.Format(DateLayout) + ")"
}

func truncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
