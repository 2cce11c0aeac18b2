package roster

import (
	"context"

	"github.com/entrelagos/gatelog/internal/models"
	"github.com/entrelagos/gatelog/internal/store"
)

// GuardianRoster always serves the seed dataset, filtered to usable rows.
// Like students, every Load rewrites the stored collection from seed.
type GuardianRoster struct {
	store store.Store
	seed  []models.Guardian
}

// NewGuardianRoster returns a roster over s backed by seed.
func NewGuardianRoster(s store.Store, seed []models.Guardian) *GuardianRoster {
	return &GuardianRoster{store: s, seed: seed}
}

// Load filters the seed, rewrites the stored roster and returns it.
func (r *GuardianRoster) Load(ctx context.Context) ([]models.Guardian, error) {
	usable := FilterGuardians(r.seed)
	if err := store.Save(ctx, r.store, store.KeyGuardians, usable); err != nil {
		return nil, err
	}
	return usable, nil
}
