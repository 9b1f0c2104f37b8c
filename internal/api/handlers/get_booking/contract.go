package get_booking

import (
	"context"

	"github.com/uzairqr/SalonBook-Service/internal/service/bookings/models"
)

type BookingsService interface {
	GetBooking(ctx context.Context, code string) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
