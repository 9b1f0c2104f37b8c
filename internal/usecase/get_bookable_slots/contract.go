package get_bookable_slots

import (
	"context"
	"time"

	"github.com/uzairqr/SalonBook-Service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetAll возвращает все бронирования вместе с версией коллекции
	GetAll(ctx context.Context) ([]*domain.Booking, int64, error)
}

// SalonRepository интерфейс репозитория салонов
type SalonRepository interface {
	GetByName(ctx context.Context, name string) (*domain.Salon, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
