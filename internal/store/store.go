// Package store defines the persistent key-value record store the logbook
// core is built on: named JSON documents, each holding one whole collection.
// Every mutation is a full read-modify-write of the addressed document;
// there is no row-level update primitive. That makes interleaved writers a
// last-write-wins race, which is acceptable under the single-gatehouse,
// single-operator assumption and documented as a known limitation.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/entrelagos/gatelog/internal/common"
)

// Logical document keys. These match the keys accumulated by earlier
// releases of the logbook, so an existing database keeps working.
const (
	KeyGuardians = "apoderados"
	KeySuppliers = "proveedores"
	KeyVisitors  = "visitas"
	KeyStaff     = "funcionarios"
	KeyStudents  = "estudiantes"
	KeyDailyLog  = "registro_diario"
)

// Store is the minimal persistence surface: named JSON documents that
// survive process restarts. Get returns common.ErrNotFound for a key that
// was never written; callers default missing collections to empty.
type Store interface {
	Get(ctx context.Context, key string) (json.RawMessage, error)
	Set(ctx context.Context, key string, value json.RawMessage) error
}

// Load reads and unmarshals the collection stored at key. A missing key
// yields an empty slice, not an error.
func Load[T any](ctx context.Context, s Store, key string) ([]T, error) {
	raw, err := s.Get(ctx, key)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %v", common.ErrPersistence, key, err)
	}
	return items, nil
}

// Save marshals items and rewrites the whole document at key.
func Save[T any](ctx context.Context, s Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("%w: encoding %s: %v", common.ErrPersistence, key, err)
	}
	return s.Set(ctx, key, raw)
}
