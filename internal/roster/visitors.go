package roster

import (
	"context"

	"github.com/entrelagos/gatelog/internal/models"
	"github.com/entrelagos/gatelog/internal/store"
)

// VisitorLog accumulates outside-visitor captures. Visitors have no seed;
// the collection grows as visits are registered at the gate.
type VisitorLog struct {
	store store.Store
}

// NewVisitorLog returns a log over s.
func NewVisitorLog(s store.Store) *VisitorLog {
	return &VisitorLog{store: s}
}

// List returns every captured visitor, oldest first.
func (l *VisitorLog) List(ctx context.Context) ([]models.Visitor, error) {
	return store.Load[models.Visitor](ctx, l.store, store.KeyVisitors)
}

// Append records a new visitor capture.
func (l *VisitorLog) Append(ctx context.Context, v models.Visitor) error {
	current, err := l.List(ctx)
	if err != nil {
		return err
	}
	return store.Save(ctx, l.store, store.KeyVisitors, append(current, v))
}
