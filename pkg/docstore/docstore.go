// Package docstore implements a versioned document-collection store on top of
// PostgreSQL. Each named collection is a single JSONB document holding the
// whole record sequence, plus a monotonically increasing version token.
//
// There are no partial updates: callers read the whole collection together
// with its version and write it back conditionally. A write with a stale
// version fails with ErrVersionConflict, which is how concurrent
// read-modify-write cycles are detected instead of silently lost.
package docstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/uzairqr/SalonBook-Service/pkg/psqlbuilder"
)

const table = "collections"

var (
	// ErrVersionConflict is returned when a conditional Put lost a race to
	// another writer; the caller should re-read and re-validate
	ErrVersionConflict = errors.New("docstore: collection version conflict")

	// ErrBuildQuery is returned when a SQL query cannot be built
	ErrBuildQuery = errors.New("docstore: failed to build query")

	// ErrExecQuery is returned when a SQL query fails to execute
	ErrExecQuery = errors.New("docstore: failed to execute query")
)

// DBExecutor is the subset of *sql.DB the store needs
type DBExecutor interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// ConflictObserver counts lost version races, per collection
type ConflictObserver interface {
	ObserveStoreConflict(collection string)
}

// Store reads and writes versioned collections
type Store struct {
	db       DBExecutor
	observer ConflictObserver
}

// New creates a store over the given database handle
func New(db DBExecutor) *Store {
	return &Store{db: db}
}

// WithConflictObserver registers a metrics sink for version conflicts
func (s *Store) WithConflictObserver(observer ConflictObserver) *Store {
	s.observer = observer
	return s
}

func (s *Store) observeConflict(name string) {
	if s.observer != nil {
		s.observer.ObserveStoreConflict(name)
	}
}

// Get returns the raw records of a collection and its current version token.
// An absent collection reads as empty with version 0; a subsequent Put with
// version 0 creates it.
func (s *Store) Get(ctx context.Context, name string) (json.RawMessage, int64, error) {
	query, args, err := psqlbuilder.Select("version", "data").
		From(table).
		Where(squirrel.Eq{"name": name}).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: Get - build select: %v", ErrBuildQuery, err)
	}

	var version int64
	var data []byte
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&version, &data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, nil
	}
	if err != nil {
		return nil, 0, fmt.Errorf("%w: Get - scan collection %q: %v", ErrExecQuery, name, err)
	}

	return data, version, nil
}

// Put replaces the whole collection, but only if its version still equals
// expectedVersion. On success the stored version becomes expectedVersion+1.
func (s *Store) Put(ctx context.Context, name string, records json.RawMessage, expectedVersion int64) error {
	if expectedVersion == 0 {
		return s.create(ctx, name, records)
	}

	query, args, err := psqlbuilder.Update(table).
		Set("data", []byte(records)).
		Set("version", expectedVersion+1).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"name": name, "version": expectedVersion}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Put - build update: %v", ErrBuildQuery, err)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Put - execute update on %q: %v", ErrExecQuery, name, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Put - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		s.observeConflict(name)
		return fmt.Errorf("%w: collection %q is no longer at version %d", ErrVersionConflict, name, expectedVersion)
	}

	return nil
}

func (s *Store) create(ctx context.Context, name string, records json.RawMessage) error {
	query, args, err := psqlbuilder.Insert(table).
		Columns("name", "version", "data").
		Values(name, 1, []byte(records)).
		Suffix("ON CONFLICT (name) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Put - build insert: %v", ErrBuildQuery, err)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Put - execute insert on %q: %v", ErrExecQuery, name, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Put - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		// Somebody created the collection first
		s.observeConflict(name)
		return fmt.Errorf("%w: collection %q already exists", ErrVersionConflict, name)
	}

	return nil
}
