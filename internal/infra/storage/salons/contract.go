package salons

import (
	"context"
	"encoding/json"
)

// CollectionStore интерфейс версионированного хранилища коллекций
type CollectionStore interface {
	Get(ctx context.Context, name string) (json.RawMessage, int64, error)
	Put(ctx context.Context, name string, records json.RawMessage, expectedVersion int64) error
}
