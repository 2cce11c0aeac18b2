package roster

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entrelagos/gatelog/internal/common"
	"github.com/entrelagos/gatelog/internal/models"
	"github.com/entrelagos/gatelog/internal/store"
)

var staffSeed = []models.Staff{
	{CodeID: "F001", Name: "Ana Soto", Document: "12.345.678-9", Plate: "AB-12-CD"},
	{CodeID: "F002", Name: "Pedro Rojas", Document: "9.876.543-2"},
}

func TestStaffRoster_SeedsOnce(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	r := NewStaffRoster(s, staffSeed)

	got, err := r.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, staffSeed, got)

	// A later edit must survive a reload; the seed is not re-applied.
	require.NoError(t, r.Add(ctx, models.Staff{Name: "Nueva Persona", Document: "7.000.111-2"}))
	got, err = r.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestStaffRoster_AddRejectsDuplicates(t *testing.T) {
	ctx := context.Background()
	r := NewStaffRoster(store.NewMemoryStore(), staffSeed)

	err := r.Add(ctx, models.Staff{Name: "ana soto", Document: "1-9"})
	require.ErrorIs(t, err, common.ErrDuplicatePerson)

	err = r.Add(ctx, models.Staff{Name: "Otra Persona", Document: "12.345.678-9"})
	require.ErrorIs(t, err, common.ErrDuplicatePerson)
}

func TestStaffRoster_AddNormalizesPlate(t *testing.T) {
	ctx := context.Background()
	r := NewStaffRoster(store.NewMemoryStore(), nil)

	require.NoError(t, r.Add(ctx, models.Staff{Name: "X Y", Document: "5.111.222-3", Plate: "a.b-12cd"}))
	got, err := r.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "AB-12-CD", got[0].Plate)
}

func TestStaffRoster_AddRequiresNameAndDocument(t *testing.T) {
	ctx := context.Background()
	r := NewStaffRoster(store.NewMemoryStore(), nil)

	require.Error(t, r.Add(ctx, models.Staff{Document: "1-9"}))
	require.Error(t, r.Add(ctx, models.Staff{Name: "Solo Nombre"}))
}

func TestStaffRoster_Delete(t *testing.T) {
	ctx := context.Background()
	r := NewStaffRoster(store.NewMemoryStore(), staffSeed)

	require.NoError(t, r.Delete(ctx, "Ana Soto"))
	got, err := r.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Pedro Rojas", got[0].Name)

	require.ErrorIs(t, r.Delete(ctx, "Ana Soto"), common.ErrNotFound)
}

func TestStaffRoster_UpdatePlate(t *testing.T) {
	ctx := context.Background()
	r := NewStaffRoster(store.NewMemoryStore(), staffSeed)

	updated, err := r.UpdatePlate(ctx, "Pedro Rojas", "zx98wv")
	require.NoError(t, err)
	assert.Equal(t, "ZX-98-WV", updated.Plate)

	got, err := r.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ZX-98-WV", got[1].Plate)

	_, err = r.UpdatePlate(ctx, "Nadie", "aa11bb")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestStudentRoster_AlwaysReloadsFromSeed(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	studentSeed := []models.Student{{Name: "Javiera Muñoz", Class: "1° Medio A"}}
	r := NewStudentRoster(s, studentSeed)

	got, err := r.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, studentSeed, got)

	// Clobber the stored collection; the next Load restores the seed.
	require.NoError(t, store.Save(ctx, s, store.KeyStudents, []models.Student{{Name: "Intruso"}}))
	got, err = r.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, studentSeed, got)
}

func TestGuardianRoster_FiltersJunkRows(t *testing.T) {
	ctx := context.Background()
	seed := []models.Guardian{
		{Name: "Rosa Cárdenas", Document: "10.111.222-3"},
		{Name: "nan", Document: "nan"},
		{Name: "Columna12", Document: "12.000.000-0"},
		{Name: "Sin Documento", Document: ""},
	}
	r := NewGuardianRoster(store.NewMemoryStore(), seed)

	got, err := r.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Rosa Cárdenas", got[0].Name)
}

func TestSupplierRoster_SeedThenAdd(t *testing.T) {
	ctx := context.Background()
	seed := []models.Supplier{{Company: "Lácteos del Sur", Name: "Raúl Mancilla"}}
	r := NewSupplierRoster(store.NewMemoryStore(), seed)

	got, err := r.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, seed, got)

	require.NoError(t, r.Add(ctx, models.Supplier{Company: "Gas Austral", Name: "Iván Soto"}))
	got, err = r.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	require.Error(t, r.Add(ctx, models.Supplier{Company: "", Name: "X"}))
}

func TestVisitorLog_Append(t *testing.T) {
	ctx := context.Background()
	l := NewVisitorLog(store.NewMemoryStore())

	require.NoError(t, l.Append(ctx, models.Visitor{ID: "v1", Name: "Visita Uno", Document: "1-9", Motive: "Reunión"}))
	require.NoError(t, l.Append(ctx, models.Visitor{ID: "v2", Name: "Visita Dos", Document: "2-7", Motive: "Entrega"}))

	got, err := l.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "v1", got[0].ID)
	assert.Equal(t, "v2", got[1].ID)
}
