package cancel_current_customer

import (
	"context"

	"github.com/uzairqr/SalonBook-Service/internal/service/bookings/models"
)

type BookingsService interface {
	CancelCurrentCustomer(ctx context.Context, salonName string) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
