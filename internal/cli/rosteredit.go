package cli

import (
	"context"
	"errors"
	"os"

	"github.com/entrelagos/gatelog/internal/common"
	"github.com/entrelagos/gatelog/internal/models"
	"github.com/entrelagos/gatelog/internal/textx"
)

// StaffAdd registers a new staff member in the persisted roster.
func (a *App) StaffAdd(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Nombre", os.Stdout)
	if err != nil {
		return err
	}
	document, err := GetSimpleText(a.reader, "RUT", os.Stdout)
	if err != nil {
		return err
	}
	plate, err := GetSimpleText(a.reader, "Patente (opcional)", os.Stdout)
	if err != nil {
		return err
	}

	err = a.staff.Add(ctx, models.Staff{
		Name:     name,
		Document: textx.FormatDocument(document),
		Plate:    plate,
	})
	switch {
	case errors.Is(err, common.ErrDuplicatePerson):
		printlnFn("Ya existe un funcionario con ese nombre o RUT.")
		return nil
	case err != nil:
		return err
	}
	printlnFn("Funcionario agregado:", name)
	return nil
}

// StaffRemove deletes a staff member by exact name.
func (a *App) StaffRemove(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Nombre exacto del funcionario", os.Stdout)
	if err != nil || name == "" {
		return err
	}
	if err := a.staff.Delete(ctx, name); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			printlnFn("Funcionario no encontrado:", name)
			return nil
		}
		return err
	}
	printlnFn("Funcionario eliminado:", name)
	return nil
}

// StaffPlate changes a staff member's registered vehicle plate.
func (a *App) StaffPlate(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Nombre exacto del funcionario", os.Stdout)
	if err != nil || name == "" {
		return err
	}
	plate, err := GetSimpleText(a.reader, "Nueva patente (vacía para quitar)", os.Stdout)
	if err != nil {
		return err
	}
	member, err := a.staff.UpdatePlate(ctx, name, plate)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			printlnFn("Funcionario no encontrado:", name)
			return nil
		}
		return err
	}
	printlnFn("Patente actualizada:", member.Name, member.Plate)
	return nil
}

// SupplierAdd registers a new supplier in the persisted roster.
func (a *App) SupplierAdd(ctx context.Context) error {
	company, err := GetSimpleText(a.reader, "Empresa", os.Stdout)
	if err != nil {
		return err
	}
	name, err := GetSimpleText(a.reader, "Nombre del contacto", os.Stdout)
	if err != nil {
		return err
	}
	days, err := GetSimpleText(a.reader, "Días de visita (opcional)", os.Stdout)
	if err != nil {
		return err
	}

	err = a.suppliers.Add(ctx, models.Supplier{Company: company, Name: name, Days: days})
	switch {
	case errors.Is(err, common.ErrInvalidPayload):
		printlnFn("Empresa y nombre son obligatorios.")
		return nil
	case errors.Is(err, common.ErrDuplicatePerson):
		printlnFn("Ya existe ese proveedor.")
		return nil
	case err != nil:
		return err
	}
	printlnFn("Proveedor agregado:", company, "-", name)
	return nil
}
