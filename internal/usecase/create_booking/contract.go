package create_booking

import (
	"context"
	"time"

	"github.com/uzairqr/SalonBook-Service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetAll возвращает все бронирования вместе с версией коллекции
	GetAll(ctx context.Context) ([]*domain.Booking, int64, error)
	// ReplaceAll условно перезаписывает коллекцию, если версия не изменилась
	ReplaceAll(ctx context.Context, bookings []*domain.Booking, expectedVersion int64) error
}

// SalonRepository интерфейс репозитория салонов
type SalonRepository interface {
	GetByName(ctx context.Context, name string) (*domain.Salon, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// CodeGenerator интерфейс генерации кодов бронирований и токенов
type CodeGenerator interface {
	NewBookingCode() string
	NewToken() string
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
