package roster

import (
	"context"
	"fmt"
	"strings"

	"github.com/entrelagos/gatelog/internal/common"
	"github.com/entrelagos/gatelog/internal/models"
	"github.com/entrelagos/gatelog/internal/store"
)

// SupplierRoster persists the supplier collection; seeded once, then
// user additions survive.
type SupplierRoster struct {
	store store.Store
	seed  []models.Supplier
}

// NewSupplierRoster returns a roster over s, seeded from seed on first use.
func NewSupplierRoster(s store.Store, seed []models.Supplier) *SupplierRoster {
	return &SupplierRoster{store: s, seed: seed}
}

// Load returns the stored supplier roster, writing the seed first if the
// store is empty.
func (r *SupplierRoster) Load(ctx context.Context) ([]models.Supplier, error) {
	existing, err := store.Load[models.Supplier](ctx, r.store, store.KeySuppliers)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return existing, nil
	}
	if err := store.Save(ctx, r.store, store.KeySuppliers, r.seed); err != nil {
		return nil, err
	}
	return r.seed, nil
}

// Add appends a new supplier. Company and responsible name are required;
// an existing company/name pair is rejected.
func (r *SupplierRoster) Add(ctx context.Context, sup models.Supplier) error {
	sup.Company = strings.TrimSpace(sup.Company)
	sup.Name = strings.TrimSpace(sup.Name)
	sup.Days = strings.TrimSpace(sup.Days)
	if sup.Company == "" || sup.Name == "" {
		return fmt.Errorf("%w: supplier company and responsible name required", common.ErrInvalidPayload)
	}
	current, err := r.Load(ctx)
	if err != nil {
		return err
	}
	for _, s := range current {
		if strings.EqualFold(s.Company, sup.Company) && strings.EqualFold(s.Name, sup.Name) {
			return fmt.Errorf("%w: %s", common.ErrDuplicatePerson, sup.Subject())
		}
	}
	return store.Save(ctx, r.store, store.KeySuppliers, append(current, sup))
}
