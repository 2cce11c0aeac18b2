package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/entrelagos/gatelog/internal/common"
	"github.com/entrelagos/gatelog/internal/logbook"
	"github.com/entrelagos/gatelog/internal/models"
)

func sample() []models.LogEntry {
	date := time.Date(2024, 3, 13, 9, 15, 0, 0, time.Local)
	return []models.LogEntry{
		{
			ID: "a", Type: models.SubjectStaff, Name: "Carla Mansilla",
			Date: date, Entry: "08:01:10", Exit: "17:30:00",
			Reason: models.ReasonExit, Plate: "GB-CS-12",
		},
		{
			ID: "b", Type: models.SubjectVisitor, Name: "Ana Ruiz - 12.345.678-9, - 987654321",
			Date: date, Entry: "09:15:00", Reason: models.ReasonEntry,
			Note: "Reunión con dirección", Institution: "DAEM", Role: "Coordinadora",
		},
	}
}

func TestRow(t *testing.T) {
	rows := sample()

	got := Row(rows[0])
	assert.Equal(t, []string{
		"13-03-2024", "Funcionario", "Carla Mansilla",
		"Salida del establecimiento", "GB-CS-12", "—", "—",
		"08:01:10", "17:30:00", "—",
	}, got)

	got = Row(rows[1])
	assert.Equal(t, "Visita", got[1])
	assert.Equal(t, "Reunión con dirección", got[3])
	assert.Equal(t, "DAEM", got[5])
	assert.Equal(t, "—", got[8])
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "sin_fecha", BaseName(logbook.Filter{}))

	ref := time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local)
	assert.Equal(t, "2024-03-15", BaseName(logbook.Filter{Date: &ref, Mode: logbook.ModeDay}))
	assert.Equal(t, "semana_2024-03-10_a_2024-03-16", BaseName(logbook.Filter{Date: &ref, Mode: logbook.ModeWeek}))

	assert.Equal(t, "registro_sin_fecha.xlsx", FileName(logbook.Filter{}))
}

func TestWriteEmptyRefused(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, nil)
	assert.ErrorIs(t, err, common.ErrEmptyExport)
	assert.Zero(t, buf.Len())
}

func TestWriteRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sample()))

	wb, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, header, rows[0])
	assert.Equal(t, "Carla Mansilla", rows[1][2])
	assert.Equal(t, "Visita", rows[2][1])
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	ref := time.Date(2024, 3, 13, 10, 0, 0, 0, time.Local)
	f := logbook.Filter{Date: &ref, Mode: logbook.ModeDay}

	path, err := WriteFile(dir, f, sample())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "registro_2024-03-13.xlsx"), path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	_, err = WriteFile(dir, f, nil)
	assert.ErrorIs(t, err, common.ErrEmptyExport)
}
