// Package reconcile owns the daily-log state machine: given a subject and
// an action, it decides whether to open a new entry, close an open one,
// synthesize a standalone record or reject the attempt.
//
// Per subject and day the machine is:
//
//	NoEntry -> Open (enter) -> Closed (exit)
//	NoEntry -> Closed (exit, student-only bus synthesis)
//	       ∅ -> EmergencyOpen (emergency exit) -> EmergencyReturned (re-entry)
//
// Every decision re-scans the whole stored collection for the current day;
// there is no separate session index. A reconciliation is one full
// read-modify-write of the collection, so a rejected attempt never leaves
// a partial write behind.
package reconcile

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/entrelagos/gatelog/internal/common"
	"github.com/entrelagos/gatelog/internal/logging"
	"github.com/entrelagos/gatelog/internal/models"
	"github.com/entrelagos/gatelog/internal/store"
	"github.com/entrelagos/gatelog/internal/textx"
)

// Action is a gate event to reconcile against the log.
type Action int

const (
	ActionEnter Action = iota
	ActionExit
	ActionEmergencyExit
)

// State is a log entry's position in the day's state machine.
type State int

const (
	StateNoEntry State = iota
	StateOpen
	StateClosed
	StateEmergencyOpen
	StateEmergencyReturned
)

// StateOf classifies a single entry.
func StateOf(e models.LogEntry) State {
	switch {
	case e.EmergencyPending():
		return StateEmergencyOpen
	case e.Reason == models.ReasonEmergency:
		return StateEmergencyReturned
	case e.Open():
		return StateOpen
	case e.Entry != "" || e.Exit != "":
		return StateClosed
	default:
		return StateNoEntry
	}
}

// Subject carries everything the reconciler records about the person the
// action is for. Name is matched against stored entries by exact string
// equality, not normalized; that sharp edge is kept for compatibility
// with logs accumulated by earlier releases.
type Subject struct {
	Type        models.SubjectType
	Name        string
	Document    string
	Plate       string
	Class       string
	Modality    string
	Companion   string
	Institution string
	Role        string
	// Note is the free-text motive for guardian, supplier and visitor
	// registrations; staff and student motives come from the reason tag.
	Note string
}

// Reconciler applies gate actions to the stored daily log.
type Reconciler struct {
	store store.Store
	log   logging.Logger

	// Test seams.
	now   func() time.Time
	newID func() string
}

// New returns a reconciler over s.
func New(s store.Store, log logging.Logger) *Reconciler {
	return &Reconciler{
		store: s,
		log:   log,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Reconcile applies action for sub and returns the created or mutated
// entry. Rejections (common.ErrDuplicateEntry, common.ErrMissingEntry)
// leave the store untouched.
func (r *Reconciler) Reconcile(ctx context.Context, sub Subject, action Action) (models.LogEntry, error) {
	if strings.TrimSpace(sub.Name) == "" {
		return models.LogEntry{}, fmt.Errorf("subject name required")
	}

	entries, err := store.Load[models.LogEntry](ctx, r.store, store.KeyDailyLog)
	if err != nil {
		return models.LogEntry{}, err
	}

	now := r.now()
	existing := r.findSameDay(entries, sub, now)

	switch action {
	case ActionEnter:
		return r.enter(ctx, entries, sub, existing, now)
	case ActionExit:
		return r.exit(ctx, entries, sub, existing, now)
	case ActionEmergencyExit:
		return r.emergencyExit(ctx, entries, sub, now)
	default:
		return models.LogEntry{}, fmt.Errorf("unknown action %d", action)
	}
}

// findSameDay locates the entry an enter/exit decision hinges on. Staff
// pair against any same-day entry that has an entry time, even one already
// closed; students pair only against a still-open entry. Other subject
// types never pair. Emergency records never participate in pairing.
func (r *Reconciler) findSameDay(entries []models.LogEntry, sub Subject, now time.Time) *models.LogEntry {
	for i := range entries {
		e := &entries[i]
		if e.Type != sub.Type || e.Name != sub.Name || !e.OnDay(now) {
			continue
		}
		switch state := StateOf(*e); sub.Type {
		case models.SubjectStaff:
			if state == StateOpen || state == StateClosed {
				return e
			}
		case models.SubjectStudent:
			if state == StateOpen {
				return e
			}
		}
	}
	return nil
}

func (r *Reconciler) enter(ctx context.Context, entries []models.LogEntry, sub Subject, existing *models.LogEntry, now time.Time) (models.LogEntry, error) {
	pairing := sub.Type == models.SubjectStaff || sub.Type == models.SubjectStudent
	if pairing && existing != nil {
		return models.LogEntry{}, fmt.Errorf("%w: %s already has an entry today", common.ErrDuplicateEntry, sub.Name)
	}

	entry := r.newEntry(sub, now)
	entry.Entry = clock(now)
	entry.Reason = models.ReasonEntry

	if err := store.Save(ctx, r.store, store.KeyDailyLog, append(entries, entry)); err != nil {
		return models.LogEntry{}, err
	}
	r.log.Info(ctx, "entry registered", "type", sub.Type, "name", sub.Name)
	return entry, nil
}

func (r *Reconciler) exit(ctx context.Context, entries []models.LogEntry, sub Subject, existing *models.LogEntry, now time.Time) (models.LogEntry, error) {
	switch sub.Type {
	case models.SubjectStaff:
		if existing == nil {
			return models.LogEntry{}, fmt.Errorf("%w: %s has no entry today", common.ErrMissingEntry, sub.Name)
		}
	case models.SubjectStudent:
		if existing == nil {
			// A student leaving without a scanned entry is not an error:
			// the morning arrival was by school bus. Record a standalone
			// closed entry with the bus sentinel as its entry time.
			entry := r.newEntry(sub, now)
			entry.Entry = models.BusSentinel
			entry.Exit = clock(now)
			entry.Reason = models.ReasonExit
			if err := store.Save(ctx, r.store, store.KeyDailyLog, append(entries, entry)); err != nil {
				return models.LogEntry{}, err
			}
			r.log.Info(ctx, "exit without entry, bus arrival assumed", "name", sub.Name)
			return entry, nil
		}
	default:
		return models.LogEntry{}, fmt.Errorf("exit pairing not supported for %s", sub.Type)
	}

	existing.Exit = clock(now)
	existing.Reason = models.ReasonExit
	if sub.Companion != "" {
		existing.Companion = sub.Companion
	}
	if err := store.Save(ctx, r.store, store.KeyDailyLog, entries); err != nil {
		return models.LogEntry{}, err
	}
	r.log.Info(ctx, "exit registered", "type", sub.Type, "name", sub.Name)
	return *existing, nil
}

// emergencyExit appends a standalone record with no entry time, bypassing
// all duplicate and pairing checks: an unplanned departure is logged after
// the fact, whatever else the day's log says.
func (r *Reconciler) emergencyExit(ctx context.Context, entries []models.LogEntry, sub Subject, now time.Time) (models.LogEntry, error) {
	if sub.Type != models.SubjectStudent {
		return models.LogEntry{}, fmt.Errorf("emergency exit is only recorded for students, not %s", sub.Type)
	}
	entry := r.newEntry(sub, now)
	entry.Exit = clock(now)
	entry.Reason = models.ReasonEmergency
	entry.Companion = ""

	if err := store.Save(ctx, r.store, store.KeyDailyLog, append(entries, entry)); err != nil {
		return models.LogEntry{}, err
	}
	r.log.Warn(ctx, "emergency exit registered", "name", sub.Name)
	return entry, nil
}

func (r *Reconciler) newEntry(sub Subject, now time.Time) models.LogEntry {
	return models.LogEntry{
		ID:          r.newID(),
		Type:        sub.Type,
		Name:        sub.Name,
		Date:        now,
		Note:        sub.Note,
		Plate:       textx.FormatPlate(sub.Plate),
		Document:    sub.Document,
		Class:       sub.Class,
		Modality:    sub.Modality,
		Companion:   sub.Companion,
		Institution: sub.Institution,
		Role:        sub.Role,
	}
}

// MarkExit closes the open entry with the given id, whatever its subject
// type. Used from the daily-log view. Fails with common.ErrNotFound when
// no open entry has that id.
func (r *Reconciler) MarkExit(ctx context.Context, id string) (models.LogEntry, error) {
	return r.mutateByID(ctx, id, func(e *models.LogEntry) bool {
		if e.Exit != "" {
			return false
		}
		e.Exit = clock(r.now())
		return true
	})
}

// MarkReentry fills the entry time of an emergency-exit record, the only
// transition from exit-only back to a paired record: the student returned
// after an unplanned departure. Fails with common.ErrNotFound unless the
// record is an emergency exit still missing its entry time.
func (r *Reconciler) MarkReentry(ctx context.Context, id string) (models.LogEntry, error) {
	return r.mutateByID(ctx, id, func(e *models.LogEntry) bool {
		if !e.EmergencyPending() {
			return false
		}
		e.Entry = clock(r.now())
		return true
	})
}

func (r *Reconciler) mutateByID(ctx context.Context, id string, fn func(*models.LogEntry) bool) (models.LogEntry, error) {
	entries, err := store.Load[models.LogEntry](ctx, r.store, store.KeyDailyLog)
	if err != nil {
		return models.LogEntry{}, err
	}
	for i := range entries {
		if entries[i].ID != id {
			continue
		}
		if !fn(&entries[i]) {
			return models.LogEntry{}, fmt.Errorf("%w: entry %s not in a mutable state", common.ErrNotFound, id)
		}
		if err := store.Save(ctx, r.store, store.KeyDailyLog, entries); err != nil {
			return models.LogEntry{}, err
		}
		return entries[i], nil
	}
	return models.LogEntry{}, fmt.Errorf("%w: entry %s", common.ErrNotFound, id)
}

// Delete removes the entry with the given id. Removal is explicit,
// user-initiated and irreversible; there is no soft delete.
func (r *Reconciler) Delete(ctx context.Context, id string) error {
	entries, err := store.Load[models.LogEntry](ctx, r.store, store.KeyDailyLog)
	if err != nil {
		return err
	}
	kept := entries[:0:0]
	for _, e := range entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(entries) {
		return fmt.Errorf("%w: entry %s", common.ErrNotFound, id)
	}
	if err := store.Save(ctx, r.store, store.KeyDailyLog, kept); err != nil {
		return err
	}
	r.log.Info(ctx, "entry deleted", "id", id)
	return nil
}

// clock renders the wall-clock time the way entry and exit times are
// stored: a local HH:MM:SS string.
func clock(t time.Time) string {
	return t.Local().Format("15:04:05")
}
