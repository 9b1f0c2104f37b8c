package list_salons

import (
	"context"

	"github.com/uzairqr/SalonBook-Service/internal/service/salons/models"
)

type SalonsService interface {
	List(ctx context.Context) (*models.SalonListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
