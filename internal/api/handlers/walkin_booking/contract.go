package walkin_booking

import (
	"context"

	walkinBooking "github.com/uzairqr/SalonBook-Service/internal/usecase/walkin_booking"
)

type WalkinBookingUseCase interface {
	Execute(ctx context.Context, req *walkinBooking.Request) (*walkinBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
