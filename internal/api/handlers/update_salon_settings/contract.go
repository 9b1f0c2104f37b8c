package update_salon_settings

import (
	"context"

	"github.com/uzairqr/SalonBook-Service/internal/service/salons/models"
)

type SalonsService interface {
	UpdateSettings(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SalonResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
