package salons

import (
	"context"

	"github.com/uzairqr/SalonBook-Service/internal/domain"
)

// SalonRepository интерфейс репозитория салонов
type SalonRepository interface {
	// GetAll возвращает все салоны вместе с версией коллекции
	GetAll(ctx context.Context) ([]*domain.Salon, int64, error)
	GetByName(ctx context.Context, name string) (*domain.Salon, error)
	// ReplaceAll условно перезаписывает коллекцию, если версия не изменилась
	ReplaceAll(ctx context.Context, salons []*domain.Salon, expectedVersion int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
