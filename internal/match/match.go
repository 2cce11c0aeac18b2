// Package match resolves free-text queries and scanned code payloads
// against a roster. Matching is a pure query; nothing here touches the
// record store.
package match

import (
	"fmt"
	"strings"

	"github.com/entrelagos/gatelog/internal/common"
	"github.com/entrelagos/gatelog/internal/models"
	"github.com/entrelagos/gatelog/internal/textx"
)

// Mode selects which keys a text search runs against.
type Mode int

const (
	// ByNameOrDocument matches query tokens against the display name and
	// the query against the document number.
	ByNameOrDocument Mode = iota
	// ByCode matches strictly on the normalized code field.
	ByCode
)

// Search returns the candidates matching query under the given mode.
// The query and all candidate fields are folded (lowercase, diacritics
// stripped) before comparison, so "jose" finds "José". An empty query
// matches everyone.
//
// In ByNameOrDocument mode a candidate matches when every token of the
// query is a substring of some token of the candidate's name, or when the
// folded document number contains the query.
func Search[T models.Person](people []T, query string, mode Mode) []T {
	q := textx.Fold(strings.TrimSpace(query))
	var out []T
	for _, p := range people {
		if matches(p, q, mode) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p models.Person, foldedQuery string, mode Mode) bool {
	if mode == ByCode {
		return strings.Contains(textx.Fold(p.Code()), foldedQuery)
	}

	nameTokens := textx.Tokens(textx.Fold(p.DisplayName()))
	queryTokens := textx.Tokens(foldedQuery)

	allFound := true
	for _, qt := range queryTokens {
		found := false
		for _, nt := range nameTokens {
			if strings.Contains(nt, qt) {
				found = true
				break
			}
		}
		if !found {
			allFound = false
			break
		}
	}
	if allFound {
		return true
	}
	return foldedQuery != "" && strings.Contains(textx.Fold(p.DocumentNumber()), foldedQuery)
}

// ScanPayload is a decoded scannable tag: newline-separated fields in
// fixed positional order. Trailing fields may be absent; there is no
// escaping for embedded newlines.
type ScanPayload struct {
	Code     string
	Name     string
	Document string
	Plate    string
}

// ParsePayload splits a raw scan into its positional fields. A payload
// that yields no usable identity field (code, name or document) fails
// with common.ErrInvalidPayload, which callers must surface differently
// from a failed lookup.
func ParsePayload(raw string) (ScanPayload, error) {
	lines := strings.Split(raw, "\n")
	if len(lines) > 4 {
		return ScanPayload{}, fmt.Errorf("%w: %d fields", common.ErrInvalidPayload, len(lines))
	}
	fields := make([]string, 4)
	for i, l := range lines {
		fields[i] = strings.TrimSpace(l)
	}
	p := ScanPayload{Code: fields[0], Name: fields[1], Document: fields[2], Plate: fields[3]}
	if p.Code == "" && p.Name == "" && p.Document == "" {
		return ScanPayload{}, fmt.Errorf("%w: no usable field", common.ErrInvalidPayload)
	}
	return p, nil
}

// Resolve decodes a raw scan payload and finds the person it identifies.
// Resolution tries, in order, code equality, document equality and name
// equality, all case-insensitive; the first candidate matching any field
// wins. No match fails with common.ErrNotFound.
func Resolve[T models.Person](people []T, raw string) (T, error) {
	var zero T
	payload, err := ParsePayload(raw)
	if err != nil {
		return zero, err
	}
	for _, p := range people {
		if equalsFold(p.Code(), payload.Code) ||
			equalsFold(p.DocumentNumber(), payload.Document) ||
			equalsFold(p.DisplayName(), payload.Name) {
			return p, nil
		}
	}
	return zero, fmt.Errorf("%w: scan did not match any roster member", common.ErrNotFound)
}

func equalsFold(field, value string) bool {
	return field != "" && value != "" && strings.EqualFold(field, value)
}
