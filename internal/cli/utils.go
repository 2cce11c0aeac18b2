package cli

import (
	"bufio"
	"errors"
	"os"

	"github.com/entrelagos/gatelog/internal/common"
	"github.com/entrelagos/gatelog/internal/match"
	"github.com/entrelagos/gatelog/internal/models"
)

// maxCandidates caps how many search hits are offered for selection.
const maxCandidates = 10

// pickPerson prompts for a search query, runs the roster search and lets
// the user pick one hit. ok is false when the user cancelled or nothing
// matched.
func pickPerson[T models.Person](reader *bufio.Reader, people []T, label func(T) string) (picked T, ok bool, err error) {
	query, err := GetSimpleText(reader, "Buscar (nombre, RUT o código)", os.Stdout)
	if err != nil {
		return picked, false, err
	}

	found := match.Search(people, query, match.ByNameOrDocument)
	if len(found) == 0 {
		printlnFn("Sin resultados para:", query)
		return picked, false, nil
	}
	if len(found) > maxCandidates {
		found = found[:maxCandidates]
	}

	labels := make([]string, len(found))
	for i, p := range found {
		labels[i] = label(p)
	}
	idx, err := GetChoice(reader, labels, os.Stdout)
	if err != nil {
		return picked, false, err
	}
	if idx < 0 {
		return picked, false, nil
	}
	return found[idx], true, nil
}

// reportOutcome turns the reconciler's expected rejections into console
// messages; anything else propagates as an error.
func reportOutcome(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, common.ErrDuplicateEntry):
		printlnFn("Ya registra un ingreso hoy.")
		return nil
	case errors.Is(err, common.ErrMissingEntry):
		printlnFn("No registra ingreso hoy. Registre el ingreso primero.")
		return nil
	default:
		return err
	}
}
