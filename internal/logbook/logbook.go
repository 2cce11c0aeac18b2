// Package logbook provides the read side of the daily log: newest-first
// listing plus date and free-text filtering.
package logbook

import (
	"context"
	"strings"
	"time"

	"github.com/entrelagos/gatelog/internal/models"
	"github.com/entrelagos/gatelog/internal/store"
	"github.com/entrelagos/gatelog/internal/textx"
)

// Mode selects the width of the date window around Filter.Date.
type Mode int

const (
	ModeDay Mode = iota
	ModeWeek
)

// Filter narrows a listing. A nil Date disables the date window entirely;
// Text matches case- and accent-insensitively against the subject name and
// vehicle plate.
type Filter struct {
	Date *time.Time
	Mode Mode
	Text string
}

// WeekBounds returns the calendar week containing t, running Sunday
// through Saturday. Times are midnight local; the window is inclusive on
// both ends.
func WeekBounds(t time.Time) (start, end time.Time) {
	t = t.Local()
	start = time.Date(t.Year(), t.Month(), t.Day()-int(t.Weekday()), 0, 0, 0, 0, time.Local)
	return start, start.AddDate(0, 0, 6)
}

// Apply returns the entries accepted by f, preserving input order. The
// input slice is never mutated.
func Apply(entries []models.LogEntry, f Filter) []models.LogEntry {
	query := textx.FoldAlnum(f.Text)
	out := make([]models.LogEntry, 0, len(entries))
	for _, e := range entries {
		if !inWindow(e, f) {
			continue
		}
		if query != "" && !matchesText(e, query) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func inWindow(e models.LogEntry, f Filter) bool {
	if f.Date == nil {
		return true
	}
	switch f.Mode {
	case ModeWeek:
		start, end := WeekBounds(*f.Date)
		return sameOrBetween(e.Date, start, end)
	default:
		return e.OnDay(*f.Date)
	}
}

func sameOrBetween(d, start, end time.Time) bool {
	day := func(t time.Time) time.Time {
		t = t.Local()
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
	}
	x := day(d)
	return !x.Before(day(start)) && !x.After(day(end))
}

func matchesText(e models.LogEntry, query string) bool {
	return strings.Contains(textx.FoldAlnum(e.Name), query) ||
		strings.Contains(textx.FoldAlnum(e.Plate), query)
}

// Book reads the persisted daily log.
type Book struct {
	store store.Store
}

func NewBook(s store.Store) *Book {
	return &Book{store: s}
}

// List returns the filtered log newest-first. Entries are stored in
// insertion order, so the listing is the reversed store order.
func (b *Book) List(ctx context.Context, f Filter) ([]models.LogEntry, error) {
	entries, err := store.Load[models.LogEntry](ctx, b.store, store.KeyDailyLog)
	if err != nil {
		return nil, err
	}
	filtered := Apply(entries, f)
	for i, j := 0, len(filtered)-1; i < j; i, j = i+1, j-1 {
		filtered[i], filtered[j] = filtered[j], filtered[i]
	}
	return filtered, nil
}
