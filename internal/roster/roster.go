// Package roster maintains the reference collections of people the gate
// can register: staff, students, guardians and suppliers, plus the visitor
// capture log.
//
// Seeding policy differs per roster and is deliberate: staff and suppliers
// seed once on first use and then persist user edits; students and
// guardians reload from seed on every refresh, overwriting prior state.
package roster

import (
	"strings"

	"github.com/entrelagos/gatelog/internal/models"
)

// UsableGuardian reports whether a guardian seed row carries real data.
// The guardian sheet the seed was exported from contains placeholder rows
// ("nan", "Columna12") and rows with no document; those never reach the
// stored roster.
func UsableGuardian(g models.Guardian) bool {
	name := strings.ToLower(strings.TrimSpace(g.Name))
	doc := strings.ToLower(strings.TrimSpace(g.Document))
	if name == "" || doc == "" {
		return false
	}
	return name != "nan" && doc != "nan" && name != "columna12"
}

// FilterGuardians returns the usable subset of a guardian roster.
func FilterGuardians(in []models.Guardian) []models.Guardian {
	out := make([]models.Guardian, 0, len(in))
	for _, g := range in {
		if UsableGuardian(g) {
			out = append(out, g)
		}
	}
	return out
}
