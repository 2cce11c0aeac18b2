package models

import "time"

// Person is the common lookup surface every roster variant exposes to the
// identity matcher. Any of the three keys may be empty for a given record.
type Person interface {
	// DisplayName is the primary human-facing lookup key.
	DisplayName() string
	// DocumentNumber is the national ID string, when known.
	DocumentNumber() string
	// Code is the roster-assigned identifier, when known.
	Code() string
}

// Staff is a school employee. The roster persists user edits (add, delete,
// plate change).
type Staff struct {
	CodeID   string `json:"codigo,omitempty"`
	Name     string `json:"nombre"`
	Document string `json:"rut"`
	Plate    string `json:"patente,omitempty"`
}

func (s Staff) DisplayName() string    { return s.Name }
func (s Staff) DocumentNumber() string { return s.Document }
func (s Staff) Code() string           { return s.CodeID }

// Student is an enrolled student. The roster always reloads from seed.
type Student struct {
	CodeID   string `json:"codigo,omitempty"`
	Name     string `json:"nombreAlumno"`
	Document string `json:"rut,omitempty"`
	Class    string `json:"curso,omitempty"`
	Modality string `json:"Modalidad,omitempty"`
}

func (s Student) DisplayName() string    { return s.Name }
func (s Student) DocumentNumber() string { return s.Document }
func (s Student) Code() string           { return s.CodeID }

// Guardian is a student's registered guardian. The roster always reloads
// from seed.
type Guardian struct {
	Name        string `json:"nombreApoderado"`
	Document    string `json:"rutApoderado"`
	StudentName string `json:"nombreAlumno,omitempty"`
	Class       string `json:"curso,omitempty"`
	Modality    string `json:"Modalidad,omitempty"`
}

func (g Guardian) DisplayName() string    { return g.Name }
func (g Guardian) DocumentNumber() string { return g.Document }
func (g Guardian) Code() string           { return "" }

// Supplier is an external provider with scheduled visit days.
type Supplier struct {
	Company string `json:"empresa"`
	Name    string `json:"nombre"`
	Days    string `json:"dias,omitempty"`
}

func (s Supplier) DisplayName() string    { return s.Name }
func (s Supplier) DocumentNumber() string { return "" }
func (s Supplier) Code() string           { return "" }

// Subject returns the denormalized display string supplier log entries are
// recorded under.
func (s Supplier) Subject() string { return s.Company + " - " + s.Name }

// Visitor is a one-off outside visitor captured at the gate. Visitors are
// appended to their own collection in addition to the daily log.
type Visitor struct {
	ID          string    `json:"id"`
	Name        string    `json:"nombre"`
	Document    string    `json:"rut"`
	Phone       string    `json:"fono,omitempty"`
	Institution string    `json:"institucion,omitempty"`
	Role        string    `json:"cargo,omitempty"`
	Motive      string    `json:"motivo"`
	Plate       string    `json:"matricula,omitempty"`
	Date        time.Time `json:"fecha"`
}

func (v Visitor) DisplayName() string    { return v.Name }
func (v Visitor) DocumentNumber() string { return v.Document }
func (v Visitor) Code() string           { return "" }

// Subject returns the denormalized display string visitor log entries are
// recorded under: "name - document, - phone".
func (v Visitor) Subject() string {
	return v.Name + " - " + v.Document + ", - " + v.Phone
}
