package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/entrelagos/gatelog/internal/common"
	"github.com/entrelagos/gatelog/internal/export"
	"github.com/entrelagos/gatelog/internal/logbook"
)

// askFilter builds a listing filter interactively. The date answer accepts
// "hoy", an explicit YYYY-MM-DD, or empty for no date window; a "s" suffix
// widens the window to the whole week.
func (a *App) askFilter() (logbook.Filter, error) {
	var f logbook.Filter

	answer, err := GetSimpleText(a.reader, "Fecha (hoy / AAAA-MM-DD / vacío = todas)", os.Stdout)
	if err != nil {
		return f, err
	}
	switch answer {
	case "":
	case "hoy":
		now := time.Now()
		f.Date = &now
	default:
		d, err := time.ParseInLocation("2006-01-02", answer, time.Local)
		if err != nil {
			return f, fmt.Errorf("fecha inválida %q", answer)
		}
		f.Date = &d
	}

	if f.Date != nil {
		mode, err := GetSimpleText(a.reader, "Ámbito: (d)ía / (s)emana", os.Stdout)
		if err != nil {
			return f, err
		}
		if mode == "s" || mode == "semana" {
			f.Mode = logbook.ModeWeek
		}
	}

	text, err := GetSimpleText(a.reader, "Buscar nombre o patente (opcional)", os.Stdout)
	if err != nil {
		return f, err
	}
	f.Text = text
	return f, nil
}

// ShowLog lists the filtered daily log, newest first, and remembers the
// filter so a following export covers the same view.
func (a *App) ShowLog(ctx context.Context) error {
	f, err := a.askFilter()
	if err != nil {
		return err
	}
	entries, err := a.book.List(ctx, f)
	if err != nil {
		return err
	}
	a.lastFilter = f

	if len(entries) == 0 {
		printlnFn("Sin registros.")
		return nil
	}
	for _, e := range entries {
		exit := e.Exit
		if exit == "" {
			exit = "--:--:--"
		}
		entry := e.Entry
		if entry == "" {
			entry = "--:--:--"
		}
		printlnFn(fmt.Sprintf("%s  %s  %-11s %-30s %s → %s  %s",
			e.ID[:8], e.Date.Local().Format("02-01-2006"), e.Type, e.Name, entry, exit, e.Motive()))
	}
	printlnFn(fmt.Sprintf("%d registro(s).", len(entries)))
	return nil
}

// findByPrefix resolves the short id shown in listings back to a full id.
func (a *App) findByPrefix(ctx context.Context, prefix string) (string, error) {
	entries, err := a.book.List(ctx, logbook.Filter{})
	if err != nil {
		return "", err
	}
	for _, e := range entries {
		if e.ID == prefix || (len(prefix) >= 8 && len(e.ID) >= len(prefix) && e.ID[:len(prefix)] == prefix) {
			return e.ID, nil
		}
	}
	return "", fmt.Errorf("%w: entry %s", common.ErrNotFound, prefix)
}

func (a *App) promptID(verb string) (string, error) {
	return GetSimpleText(a.reader, "ID del registro a "+verb, os.Stdout)
}

// MarkExitPrompt closes an open record from the log view.
func (a *App) MarkExitPrompt(ctx context.Context) error {
	prefix, err := a.promptID("cerrar")
	if err != nil || prefix == "" {
		return err
	}
	id, err := a.findByPrefix(ctx, prefix)
	if err != nil {
		return reportNotFound(err)
	}
	entry, err := a.reconciler.MarkExit(ctx, id)
	if err != nil {
		return reportNotFound(err)
	}
	printlnFn(fmt.Sprintf("Salida registrada: %s (%s)", entry.Name, entry.Exit))
	return nil
}

// ReentryPrompt completes an emergency-exit record with the return time.
func (a *App) ReentryPrompt(ctx context.Context) error {
	prefix, err := a.promptID("reingresar")
	if err != nil || prefix == "" {
		return err
	}
	id, err := a.findByPrefix(ctx, prefix)
	if err != nil {
		return reportNotFound(err)
	}
	entry, err := a.reconciler.MarkReentry(ctx, id)
	if err != nil {
		return reportNotFound(err)
	}
	printlnFn(fmt.Sprintf("Reingreso registrado: %s (%s)", entry.Name, entry.Entry))
	return nil
}

// DeletePrompt removes a record after confirmation. There is no undo.
func (a *App) DeletePrompt(ctx context.Context) error {
	prefix, err := a.promptID("borrar")
	if err != nil || prefix == "" {
		return err
	}
	id, err := a.findByPrefix(ctx, prefix)
	if err != nil {
		return reportNotFound(err)
	}
	answer, err := GetSimpleText(a.reader, "Borrar definitivamente? (si/no)", os.Stdout)
	if err != nil {
		return err
	}
	if answer != "si" && answer != "sí" {
		printlnFn("Cancelado.")
		return nil
	}
	if err := a.reconciler.Delete(ctx, id); err != nil {
		return reportNotFound(err)
	}
	printlnFn("Registro borrado.")
	return nil
}

// Export writes the last viewed listing as an .xlsx workbook.
func (a *App) Export(ctx context.Context) error {
	entries, err := a.book.List(ctx, a.lastFilter)
	if err != nil {
		return err
	}
	path, err := export.WriteFile(a.config.ExportDir, a.lastFilter, entries)
	if errors.Is(err, common.ErrEmptyExport) {
		printlnFn("Nada que exportar con el filtro actual.")
		return nil
	}
	if err != nil {
		return err
	}
	printlnFn("Exportado:", path)
	return nil
}

func reportNotFound(err error) error {
	if errors.Is(err, common.ErrNotFound) {
		printlnFn("Registro no encontrado o sin cambios posibles.")
		return nil
	}
	return err
}
