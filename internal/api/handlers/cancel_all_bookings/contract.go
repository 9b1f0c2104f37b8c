package cancel_all_bookings

import (
	"context"

	"github.com/uzairqr/SalonBook-Service/internal/service/bookings/models"
)

type BookingsService interface {
	CancelAllBookings(ctx context.Context, salonName string) (*models.CancelAllResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
