package salons

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/uzairqr/SalonBook-Service/internal/domain"
	"github.com/uzairqr/SalonBook-Service/pkg/docstore"
)

// Repository репозиторий салонов поверх версионированной коллекции "salons"
type Repository struct {
	store CollectionStore
}

// NewRepository создает новый экземпляр репозитория салонов
func NewRepository(store CollectionStore) *Repository {
	return &Repository{store: store}
}

// GetAll возвращает все салоны вместе с текущей версией коллекции.
// Версия нужна для последующей условной записи через ReplaceAll
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Salon, int64, error) {
	raw, version, err := r.store.Get(ctx, domain.SalonsCollection)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: GetAll: %v", ErrStore, err)
	}
	if len(raw) == 0 {
		return []*domain.Salon{}, version, nil
	}

	var records []*salonRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, 0, fmt.Errorf("%w: GetAll: %v", ErrDecode, err)
	}

	result := make([]*domain.Salon, 0, len(records))
	for _, rec := range records {
		result = append(result, toDomain(rec))
	}
	return result, version, nil
}

// GetByName возвращает салон по уникальному имени
func (r *Repository) GetByName(ctx context.Context, name string) (*domain.Salon, error) {
	all, _, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, s := range all {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, ErrSalonNotFound
}

// ReplaceAll перезаписывает коллекцию целиком при условии, что её версия
// не изменилась с момента чтения
func (r *Repository) ReplaceAll(ctx context.Context, salons []*domain.Salon, expectedVersion int64) error {
	records := make([]*salonRecord, 0, len(salons))
	for _, s := range salons {
		records = append(records, fromDomain(s))
	}

	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("%w: ReplaceAll: %v", ErrDecode, err)
	}

	if err := r.store.Put(ctx, domain.SalonsCollection, raw, expectedVersion); err != nil {
		if errors.Is(err, docstore.ErrVersionConflict) {
			return fmt.Errorf("%w: ReplaceAll: %v", ErrVersionConflict, err)
		}
		return fmt.Errorf("%w: ReplaceAll: %v", ErrStore, err)
	}
	return nil
}
