package register_salon

import (
	"context"

	"github.com/uzairqr/SalonBook-Service/internal/service/salons/models"
)

type SalonsService interface {
	Register(ctx context.Context, req *models.RegisterSalonRequest) (*models.SalonResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
