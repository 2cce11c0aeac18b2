package roster

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/entrelagos/gatelog/internal/common"
	"github.com/entrelagos/gatelog/internal/models"
	"github.com/entrelagos/gatelog/internal/store"
	"github.com/entrelagos/gatelog/internal/textx"
)

// StaffRoster persists the staff collection. Unlike students and
// guardians, staff edits survive: the seed is only written when the store
// has no staff yet.
type StaffRoster struct {
	store store.Store
	seed  []models.Staff
}

// NewStaffRoster returns a roster over s, seeded from seed on first use.
func NewStaffRoster(s store.Store, seed []models.Staff) *StaffRoster {
	return &StaffRoster{store: s, seed: seed}
}

// Load returns the stored staff roster, writing the seed first if the
// store is empty.
func (r *StaffRoster) Load(ctx context.Context) ([]models.Staff, error) {
	existing, err := store.Load[models.Staff](ctx, r.store, store.KeyStaff)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return existing, nil
	}
	if err := store.Save(ctx, r.store, store.KeyStaff, r.seed); err != nil {
		return nil, err
	}
	return r.seed, nil
}

// Add appends a new staff member. Name and document are required; a member
// with the same name or document (case-insensitive) is rejected with
// common.ErrDuplicatePerson. The plate is normalized on write.
func (r *StaffRoster) Add(ctx context.Context, member models.Staff) error {
	member.Name = strings.TrimSpace(member.Name)
	member.Document = strings.TrimSpace(member.Document)
	if member.Name == "" {
		return errors.New("staff name required")
	}
	if member.Document == "" {
		return errors.New("staff document required")
	}
	member.Plate = textx.FormatPlate(member.Plate)

	current, err := r.Load(ctx)
	if err != nil {
		return err
	}
	for _, m := range current {
		if strings.EqualFold(strings.TrimSpace(m.Name), member.Name) ||
			strings.EqualFold(strings.TrimSpace(m.Document), member.Document) {
			return fmt.Errorf("%w: %s", common.ErrDuplicatePerson, member.Name)
		}
	}
	return store.Save(ctx, r.store, store.KeyStaff, append(current, member))
}

// Delete removes the member with the given display name. Removal is
// irreversible.
func (r *StaffRoster) Delete(ctx context.Context, name string) error {
	current, err := r.Load(ctx)
	if err != nil {
		return err
	}
	kept := current[:0:0]
	for _, m := range current {
		if m.Name != name {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(current) {
		return fmt.Errorf("%w: %s", common.ErrNotFound, name)
	}
	return store.Save(ctx, r.store, store.KeyStaff, kept)
}

// UpdatePlate sets a member's vehicle plate (normalized) and returns the
// updated record. The member is addressed by display name.
func (r *StaffRoster) UpdatePlate(ctx context.Context, name, plate string) (models.Staff, error) {
	current, err := r.Load(ctx)
	if err != nil {
		return models.Staff{}, err
	}
	formatted := textx.FormatPlate(plate)
	for i, m := range current {
		if m.Name == name {
			current[i].Plate = formatted
			if err := store.Save(ctx, r.store, store.KeyStaff, current); err != nil {
				return models.Staff{}, err
			}
			return current[i], nil
		}
	}
	return models.Staff{}, fmt.Errorf("%w: %s", common.ErrNotFound, name)
}
