package bookings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/uzairqr/SalonBook-Service/internal/domain"
	"github.com/uzairqr/SalonBook-Service/pkg/docstore"
)

// Repository репозиторий бронирований поверх версионированной коллекции
// "bookings". Частичных обновлений нет — коллекция всегда читается и
// перезаписывается целиком, запись условна по версии
type Repository struct {
	store CollectionStore
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(store CollectionStore) *Repository {
	return &Repository{store: store}
}

// GetAll возвращает все бронирования вместе с текущей версией коллекции
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Booking, int64, error) {
	raw, version, err := r.store.Get(ctx, domain.BookingsCollection)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: GetAll: %v", ErrStore, err)
	}
	if len(raw) == 0 {
		return []*domain.Booking{}, version, nil
	}

	var records []*bookingRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, 0, fmt.Errorf("%w: GetAll: %v", ErrDecode, err)
	}

	result := make([]*domain.Booking, 0, len(records))
	for _, rec := range records {
		result = append(result, toDomain(rec))
	}
	return result, version, nil
}

// GetByCode возвращает бронирование по уникальному коду
func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.Booking, error) {
	all, _, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, b := range all {
		if b.Code == code {
			return b, nil
		}
	}
	return nil, ErrBookingNotFound
}

// ReplaceAll перезаписывает коллекцию целиком при условии, что её версия
// не изменилась с момента чтения. При проигранной гонке возвращает
// ErrVersionConflict — вызывающий обязан перечитать и перепроверить
func (r *Repository) ReplaceAll(ctx context.Context, bookings []*domain.Booking, expectedVersion int64) error {
	records := make([]*bookingRecord, 0, len(bookings))
	for _, b := range bookings {
		records = append(records, fromDomain(b))
	}

	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("%w: ReplaceAll: %v", ErrDecode, err)
	}

	if err := r.store.Put(ctx, domain.BookingsCollection, raw, expectedVersion); err != nil {
		if errors.Is(err, docstore.ErrVersionConflict) {
			return fmt.Errorf("%w: ReplaceAll: %v", ErrVersionConflict, err)
		}
		return fmt.Errorf("%w: ReplaceAll: %v", ErrStore, err)
	}
	return nil
}
