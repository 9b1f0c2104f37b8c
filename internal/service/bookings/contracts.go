package bookings

import (
	"context"
	"time"

	"github.com/uzairqr/SalonBook-Service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetAll возвращает все бронирования вместе с версией коллекции
	GetAll(ctx context.Context) ([]*domain.Booking, int64, error)
	// GetByCode возвращает бронирование по уникальному коду
	GetByCode(ctx context.Context, code string) (*domain.Booking, error)
	// ReplaceAll условно перезаписывает коллекцию, если версия не изменилась
	ReplaceAll(ctx context.Context, bookings []*domain.Booking, expectedVersion int64) error
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
