package roster

import (
	"context"

	"github.com/entrelagos/gatelog/internal/models"
	"github.com/entrelagos/gatelog/internal/store"
)

// StudentRoster always serves the seed dataset. Every Load rewrites the
// stored collection from seed, so ad-hoc edits from earlier sessions are
// discarded. That always-fresh policy is intentional and mirrors how the
// enrollment list is managed outside this system.
type StudentRoster struct {
	store store.Store
	seed  []models.Student
}

// NewStudentRoster returns a roster over s backed by seed.
func NewStudentRoster(s store.Store, seed []models.Student) *StudentRoster {
	return &StudentRoster{store: s, seed: seed}
}

// Load rewrites the stored roster from seed and returns it.
func (r *StudentRoster) Load(ctx context.Context) ([]models.Student, error) {
	if err := store.Save(ctx, r.store, store.KeyStudents, r.seed); err != nil {
		return nil, err
	}
	return r.seed, nil
}
