package cancel_booking

import (
	"context"

	"github.com/uzairqr/SalonBook-Service/internal/service/bookings/models"
)

type BookingsService interface {
	CancelBooking(ctx context.Context, req *models.CancelBookingRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
