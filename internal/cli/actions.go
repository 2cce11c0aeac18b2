package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/entrelagos/gatelog/internal/common"
	"github.com/entrelagos/gatelog/internal/match"
	"github.com/entrelagos/gatelog/internal/models"
	"github.com/entrelagos/gatelog/internal/reconcile"
	"github.com/entrelagos/gatelog/internal/textx"
)

func (a *App) askAction(emergency bool) (reconcile.Action, bool, error) {
	prompt := "Acción: (e)ntrada / (s)alida"
	if emergency {
		prompt += " / (u)rgencia"
	}
	answer, err := GetSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return 0, false, err
	}
	switch answer {
	case "e", "entrada":
		return reconcile.ActionEnter, true, nil
	case "s", "salida":
		return reconcile.ActionExit, true, nil
	case "u", "urgencia":
		if emergency {
			return reconcile.ActionEmergencyExit, true, nil
		}
	}
	printlnFn("Acción no reconocida:", answer)
	return 0, false, nil
}

func (a *App) confirm(entry models.LogEntry) {
	when := entry.Entry
	verb := "Ingreso"
	if entry.Reason != models.ReasonEntry {
		when = entry.Exit
		verb = "Salida"
	}
	printlnFn(fmt.Sprintf("%s registrado: %s (%s)", verb, entry.Name, when))
}

// StaffAction registers a staff entry or exit.
func (a *App) StaffAction(ctx context.Context) error {
	members, err := a.staff.Load(ctx)
	if err != nil {
		return err
	}
	m, ok, err := pickPerson(a.reader, members, func(s models.Staff) string {
		return s.Name + "  " + s.Document
	})
	if err != nil || !ok {
		return err
	}
	action, ok, err := a.askAction(false)
	if err != nil || !ok {
		return err
	}
	return a.registerStaff(ctx, m, action)
}

func (a *App) registerStaff(ctx context.Context, m models.Staff, action reconcile.Action) error {
	entry, err := a.reconciler.Reconcile(ctx, reconcile.Subject{
		Type:     models.SubjectStaff,
		Name:     m.Name,
		Document: m.Document,
		Plate:    m.Plate,
	}, action)
	if err != nil {
		return reportOutcome(err)
	}
	a.confirm(entry)
	return nil
}

// StudentAction registers a student entry, exit or emergency exit.
func (a *App) StudentAction(ctx context.Context) error {
	students, err := a.students.Load(ctx)
	if err != nil {
		return err
	}
	st, ok, err := pickPerson(a.reader, students, func(s models.Student) string {
		return s.Name + "  " + s.Class
	})
	if err != nil || !ok {
		return err
	}
	action, ok, err := a.askAction(true)
	if err != nil || !ok {
		return err
	}
	return a.registerStudent(ctx, st, action)
}

func (a *App) registerStudent(ctx context.Context, st models.Student, action reconcile.Action) error {
	sub := reconcile.Subject{
		Type:     models.SubjectStudent,
		Name:     st.Name,
		Document: st.Document,
		Class:    st.Class,
		Modality: st.Modality,
	}
	if action != reconcile.ActionEnter {
		companion, err := GetSimpleText(a.reader, "Acompañante (opcional)", os.Stdout)
		if err != nil {
			return err
		}
		sub.Companion = companion
	}
	entry, err := a.reconciler.Reconcile(ctx, sub, action)
	if err != nil {
		return reportOutcome(err)
	}
	a.confirm(entry)
	return nil
}

// GuardianEntry registers a guardian visit with its motive.
func (a *App) GuardianEntry(ctx context.Context) error {
	guardians, err := a.guardians.Load(ctx)
	if err != nil {
		return err
	}
	g, ok, err := pickPerson(a.reader, guardians, func(g models.Guardian) string {
		return g.Name + "  (" + g.StudentName + ", " + g.Class + ")"
	})
	if err != nil || !ok {
		return err
	}
	motive, err := GetSimpleText(a.reader, "Motivo de la visita", os.Stdout)
	if err != nil {
		return err
	}
	entry, err := a.reconciler.Reconcile(ctx, reconcile.Subject{
		Type:     models.SubjectGuardian,
		Name:     g.Name,
		Document: g.Document,
		Class:    g.Class,
		Modality: g.Modality,
		Note:     motive,
	}, reconcile.ActionEnter)
	if err != nil {
		return err
	}
	a.confirm(entry)
	return nil
}

// SupplierEntry registers a supplier visit under the "company - name"
// subject string.
func (a *App) SupplierEntry(ctx context.Context) error {
	suppliers, err := a.suppliers.Load(ctx)
	if err != nil {
		return err
	}
	s, ok, err := pickPerson(a.reader, suppliers, func(s models.Supplier) string {
		return s.Subject()
	})
	if err != nil || !ok {
		return err
	}
	motive, err := GetSimpleText(a.reader, "Motivo (opcional)", os.Stdout)
	if err != nil {
		return err
	}
	entry, err := a.reconciler.Reconcile(ctx, reconcile.Subject{
		Type: models.SubjectSupplier,
		Name: s.Subject(),
		Note: motive,
	}, reconcile.ActionEnter)
	if err != nil {
		return err
	}
	a.confirm(entry)
	return nil
}

// VisitorEntry captures a one-off visitor: appended to the visitor
// collection and registered in the daily log in the same motion.
func (a *App) VisitorEntry(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Nombre", os.Stdout)
	if err != nil {
		return err
	}
	if name == "" {
		printlnFn("El nombre es obligatorio.")
		return nil
	}
	document, err := GetSimpleText(a.reader, "RUT", os.Stdout)
	if err != nil {
		return err
	}
	phone, err := GetSimpleText(a.reader, "Fono (opcional)", os.Stdout)
	if err != nil {
		return err
	}
	institution, err := GetSimpleText(a.reader, "Institución (opcional)", os.Stdout)
	if err != nil {
		return err
	}
	role, err := GetSimpleText(a.reader, "Cargo (opcional)", os.Stdout)
	if err != nil {
		return err
	}
	motive, err := GetSimpleText(a.reader, "Motivo", os.Stdout)
	if err != nil {
		return err
	}
	plate, err := GetSimpleText(a.reader, "Patente (opcional)", os.Stdout)
	if err != nil {
		return err
	}

	v := models.Visitor{
		ID:          uuid.NewString(),
		Name:        name,
		Document:    textx.FormatDocument(document),
		Phone:       textx.FormatPhone(phone),
		Institution: institution,
		Role:        role,
		Motive:      motive,
		Plate:       textx.FormatPlate(plate),
		Date:        time.Now(),
	}
	if err := a.visitors.Append(ctx, v); err != nil {
		return err
	}

	entry, err := a.reconciler.Reconcile(ctx, reconcile.Subject{
		Type:        models.SubjectVisitor,
		Name:        v.Subject(),
		Document:    v.Document,
		Plate:       v.Plate,
		Institution: v.Institution,
		Role:        v.Role,
		Note:        v.Motive,
	}, reconcile.ActionEnter)
	if err != nil {
		return err
	}
	a.confirm(entry)
	return nil
}

// Scan reads a multi-line credential payload and resolves it against the
// staff roster first, the student roster second. A resolved subject goes
// straight to the action prompt.
func (a *App) Scan(ctx context.Context) error {
	payload, err := GetMultiline(a.reader, "Escanee la credencial", os.Stdout)
	if err != nil {
		return err
	}

	members, err := a.staff.Load(ctx)
	if err != nil {
		return err
	}
	if m, err := match.Resolve(members, payload); err == nil {
		printlnFn("Funcionario:", m.Name)
		action, ok, err := a.askAction(false)
		if err != nil || !ok {
			return err
		}
		return a.registerStaff(ctx, m, action)
	} else if errors.Is(err, common.ErrInvalidPayload) {
		printlnFn("Credencial ilegible.")
		return nil
	}

	students, err := a.students.Load(ctx)
	if err != nil {
		return err
	}
	st, err := match.Resolve(students, payload)
	if err != nil {
		printlnFn("La credencial no corresponde a ningún registro.")
		return nil
	}
	printlnFn("Estudiante:", st.Name)
	action, ok, err := a.askAction(true)
	if err != nil || !ok {
		return err
	}
	return a.registerStudent(ctx, st, action)
}
