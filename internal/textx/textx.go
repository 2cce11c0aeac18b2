// Package textx provides the text normalization and formatting rules shared
// by the matcher, the filter engine and the capture forms: accent folding,
// alphanumeric folding, vehicle plate grouping and national ID formatting.
package textx

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lowercases s and strips diacritics, so "José" folds to "jose".
// If the transform fails on malformed input the lowercased original is
// returned unchanged.
func Fold(s string) string {
	out, _, err := transform.String(stripAccents, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}

// FoldAlnum folds s and drops every non-alphanumeric rune. Used by the
// daily-log free-text filter, where "A.B.-12" must match "AB-12".
func FoldAlnum(s string) string {
	var b strings.Builder
	for _, r := range Fold(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Tokens splits s into lookup tokens on whitespace and commas, dropping
// empties.
func Tokens(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})
}

// FormatPlate normalizes a vehicle plate: strips everything that is not a
// letter or digit, uppercases, truncates to six characters and regroups into
// two-character segments joined by hyphens ("ab12cd" -> "AB-12-CD").
func FormatPlate(s string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(s) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	clean := b.String()
	if len(clean) > 6 {
		clean = clean[:6]
	}
	var groups []string
	for len(clean) > 0 {
		n := 2
		if len(clean) < n {
			n = len(clean)
		}
		groups = append(groups, clean[:n])
		clean = clean[n:]
	}
	return strings.Join(groups, "-")
}

// FormatDocument normalizes a national ID: keeps digits and a check letter
// K, truncates to nine characters, groups the body into thousands with
// periods and appends "-<check digit>" ("123456789" -> "12.345.678-9").
func FormatDocument(s string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(s) {
		if (r >= '0' && r <= '9') || r == 'K' {
			b.WriteRune(r)
		}
	}
	clean := b.String()
	if len(clean) > 9 {
		clean = clean[:9]
	}
	if len(clean) <= 1 {
		return clean
	}
	body, dv := clean[:len(clean)-1], clean[len(clean)-1:]
	var out []byte
	for i, j := len(body)-1, 1; i >= 0; i, j = i-1, j+1 {
		out = append([]byte{body[i]}, out...)
		if j%3 == 0 && i != 0 {
			out = append([]byte{'.'}, out...)
		}
	}
	return string(out) + "-" + dv
}

// FormatPhone keeps digits only, truncated to nine.
func FormatPhone(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	out := b.String()
	if len(out) > 9 {
		out = out[:9]
	}
	return out
}
