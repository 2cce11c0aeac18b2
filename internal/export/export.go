// Package export renders a filtered log listing as an .xlsx workbook.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode"

	"github.com/xuri/excelize/v2"

	"github.com/entrelagos/gatelog/internal/common"
	"github.com/entrelagos/gatelog/internal/filex"
	"github.com/entrelagos/gatelog/internal/logbook"
	"github.com/entrelagos/gatelog/internal/models"
)

// SheetName is the single worksheet every export contains.
const SheetName = "Registros"

var header = []string{
	"Fecha", "Tipo", "Nombre", "Motivo", "Patente",
	"Institución", "Cargo", "Entrada", "Salida", "Acompañante",
}

// absent marks cell values with nothing to show.
const absent = "—"

// Row projects a log entry into the export column order.
func Row(e models.LogEntry) []string {
	return []string{
		e.Date.Local().Format("02-01-2006"),
		capitalize(string(e.Type)),
		e.Name,
		orAbsent(e.Motive()),
		orAbsent(e.Plate),
		orAbsent(e.Institution),
		orAbsent(e.Role),
		orAbsent(e.Entry),
		orAbsent(e.Exit),
		orAbsent(e.Companion),
	}
}

func orAbsent(s string) string {
	if s == "" {
		return absent
	}
	return s
}

func capitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// BaseName names an export after the filter that produced it:
// "sin_fecha" for an unfiltered listing, the day itself for a day window,
// and "semana_<start>_a_<end>" for a week window.
func BaseName(f logbook.Filter) string {
	if f.Date == nil {
		return "sin_fecha"
	}
	if f.Mode == logbook.ModeWeek {
		start, end := logbook.WeekBounds(*f.Date)
		return fmt.Sprintf("semana_%s_a_%s", start.Format("2006-01-02"), end.Format("2006-01-02"))
	}
	return f.Date.Local().Format("2006-01-02")
}

// FileName is the full workbook file name for a filter.
func FileName(f logbook.Filter) string {
	return fmt.Sprintf("registro_%s.xlsx", BaseName(f))
}

// Write streams the entries as a workbook. An empty listing is refused
// with common.ErrEmptyExport before any workbook is built.
func Write(w io.Writer, entries []models.LogEntry) error {
	if len(entries) == 0 {
		return common.ErrEmptyExport
	}

	wb := excelize.NewFile()
	defer wb.Close()

	if err := wb.SetSheetName(wb.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}
	if err := wb.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, e := range entries {
		row := Row(e)
		cell := fmt.Sprintf("A%d", i+2)
		if err := wb.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}
	if err := wb.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// WriteFile writes the workbook for f's listing into dir and returns the
// full path.
func WriteFile(dir string, f logbook.Filter, entries []models.LogEntry) (string, error) {
	if len(entries) == 0 {
		return "", common.ErrEmptyExport
	}
	abs, err := filex.EnsureDir(dir)
	if err != nil {
		return "", fmt.Errorf("creating export dir: %w", err)
	}
	path := filepath.Join(abs, FileName(f))
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating export file: %w", err)
	}
	defer file.Close()

	if err := Write(file, entries); err != nil {
		return "", err
	}
	return path, nil
}
