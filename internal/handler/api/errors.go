package api

import (
	"net/http"

	"hotel-platform/internal/handler/httperr"
	"hotel-platform/internal/pkg/errs"
	"hotel-platform/internal/usecase/commands"
	"hotel-platform/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// Seconds a client should wait before retrying a 503.
const retryAfterSeconds = "1"

// abortWithUseCaseError translates use case sentinels into HTTP responses.
// Order matters: specific sentinels are checked before the generic marks.
func abortWithUseCaseError(c *gin.Context, err error) {
	status, msg := statusOf(err)
	if status == http.StatusServiceUnavailable {
		c.Header("Retry-After", retryAfterSeconds)
	}
	httperr.AbortWithError(c, status, err, msg, nil)
}

func statusOf(err error) (int, string) {
	switch {
	case errs.Is(err, commands.ErrRoomUnavailable):
		return http.StatusBadRequest, "Room is not available for the selected dates"
	case errs.Is(err, commands.ErrEmailTaken):
		return http.StatusBadRequest, "Email already registered"
	case errs.Is(err, commands.ErrRoomNumberTaken):
		return http.StatusBadRequest, "Room number already exists in this hotel"
	case errs.Is(err, errs.ErrValidation):
		return http.StatusBadRequest, err.Error()

	case errs.Is(err, commands.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Incorrect email or password"
	case errs.Is(err, commands.ErrForbidden):
		return http.StatusForbidden, "You don't have access to this booking"

	case errs.Is(err, commands.ErrRoomNotFound), errs.Is(err, queries.ErrRoomNotFound):
		return http.StatusNotFound, "Room not found"
	case errs.Is(err, commands.ErrHotelNotFound), errs.Is(err, queries.ErrHotelNotFound):
		return http.StatusNotFound, "Hotel not found"
	case errs.Is(err, commands.ErrReservationNotFound):
		return http.StatusNotFound, "Booking not found"
	case errs.Is(err, queries.ErrUserNotFound):
		return http.StatusNotFound, "User not found"

	case errs.Is(err, commands.ErrAdmissionBusy):
		return http.StatusServiceUnavailable, "Room is busy, please retry"
	case errs.Is(err, errs.ErrDatabaseOperationFailed):
		return http.StatusServiceUnavailable, "Service temporarily unavailable"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
