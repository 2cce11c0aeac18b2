// Package models defines the log entry and person record types shared by
// the gatehouse logbook core.
package models

import "time"

// SubjectType classifies who a log entry is about. Values double as the
// stored JSON tags, so they match the collections accumulated by earlier
// releases of the logbook.
type SubjectType string

const (
	SubjectStaff    SubjectType = "funcionario"
	SubjectStudent  SubjectType = "estudiante"
	SubjectGuardian SubjectType = "apoderado"
	SubjectSupplier SubjectType = "proveedor"
	SubjectVisitor  SubjectType = "visita"
)

// Reason is an enumerated motive tag. Free-form motive text (guardian visit
// motives, supplier errands) lives in LogEntry.Note; state decisions compare
// the tag, never the display string.
type Reason string

const (
	ReasonNone      Reason = ""
	ReasonEntry     Reason = "entrada"
	ReasonExit      Reason = "salida"
	ReasonEmergency Reason = "urgencia"
)

// Display returns the human-facing motive string for a bare tag.
func (r Reason) Display() string {
	switch r {
	case ReasonEntry:
		return "Ingreso al establecimiento"
	case ReasonExit:
		return "Salida del establecimiento"
	case ReasonEmergency:
		return "Salida de urgencia"
	default:
		return ""
	}
}

// BusSentinel is the placeholder entry time recorded when a student leaves
// without a matching entry (picked up by the school bus in the morning).
const BusSentinel = "Bus escolar"

// LogEntry is a single check-in/check-out record in the daily log.
//
// Entries reference their subject by display name, not by a stable roster
// key; renaming a roster member orphans that member's history from future
// matching. That is a known limitation carried over deliberately.
type LogEntry struct {
	ID          string      `json:"id"`
	Type        SubjectType `json:"tipo"`
	Name        string      `json:"nombre"`
	Date        time.Time   `json:"fecha"`
	Entry       string      `json:"entrada"`
	Exit        string      `json:"salida"`
	Reason      Reason      `json:"motivo"`
	Note        string      `json:"nota,omitempty"`
	Plate       string      `json:"matricula,omitempty"`
	Document    string      `json:"rut,omitempty"`
	Class       string      `json:"curso,omitempty"`
	Modality    string      `json:"modalidad,omitempty"`
	Companion   string      `json:"acompanante,omitempty"`
	Institution string      `json:"institucion,omitempty"`
	Role        string      `json:"cargo,omitempty"`
}

// Open reports whether the entry has been checked in but not out yet.
func (e LogEntry) Open() bool {
	return e.Entry != "" && e.Exit == ""
}

// OnDay reports whether the entry belongs to the same local calendar day
// as t. The time-of-day component is ignored.
func (e LogEntry) OnDay(t time.Time) bool {
	y1, m1, d1 := e.Date.Local().Date()
	y2, m2, d2 := t.Local().Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// EmergencyPending reports whether this is an emergency-exit record still
// waiting for the student's return (exit recorded, no entry yet).
func (e LogEntry) EmergencyPending() bool {
	return e.Reason == ReasonEmergency && e.Exit != "" && e.Entry == ""
}

// Motive returns the display motive: the free-text note when present,
// otherwise the tag's standard wording.
func (e LogEntry) Motive() string {
	if e.Note != "" {
		return e.Note
	}
	return e.Reason.Display()
}
