// Package seed embeds the static roster datasets the gatehouse starts
// from. The JSON field names mirror the spreadsheet exports the data came
// out of, including the occasional junk row in the guardian sheet; callers
// filter those out.
package seed

import (
	_ "embed"
	"encoding/json"

	"github.com/entrelagos/gatelog/internal/models"
)

//go:embed funcionarios.json
var staffJSON []byte

//go:embed estudiantes.json
var studentsJSON []byte

//go:embed apoderados.json
var guardiansJSON []byte

//go:embed proveedores.json
var suppliersJSON []byte

// Staff decodes the staff seed roster.
func Staff() []models.Staff {
	return decode[models.Staff](staffJSON)
}

// Students decodes the student seed roster.
func Students() []models.Student {
	return decode[models.Student](studentsJSON)
}

// Guardians decodes the guardian seed roster, unfiltered.
func Guardians() []models.Guardian {
	return decode[models.Guardian](guardiansJSON)
}

// Suppliers decodes the supplier seed roster.
func Suppliers() []models.Supplier {
	return decode[models.Supplier](suppliersJSON)
}

func decode[T any](raw []byte) []T {
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		// The seeds are embedded at build time; a decode failure is a
		// packaging bug, not a runtime condition.
		panic("seed: " + err.Error())
	}
	return items
}
