// Package cli implements the interactive gatehouse console: a REPL that
// registers entries and exits, browses the daily log and produces exports.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/entrelagos/gatelog/internal/config"
	"github.com/entrelagos/gatelog/internal/logbook"
	"github.com/entrelagos/gatelog/internal/logging"
	"github.com/entrelagos/gatelog/internal/reconcile"
	"github.com/entrelagos/gatelog/internal/roster"
	"github.com/entrelagos/gatelog/internal/roster/seed"
	"github.com/entrelagos/gatelog/internal/store"
)

type App struct {
	config     *config.Config
	log        logging.Logger
	store      *store.SQLiteStore
	reconciler *reconcile.Reconciler
	book       *logbook.Book

	staff     *roster.StaffRoster
	students  *roster.StudentRoster
	guardians *roster.GuardianRoster
	suppliers *roster.SupplierRoster
	visitors  *roster.VisitorLog

	reader *bufio.Reader

	// lastFilter remembers the most recent log view so an export covers
	// the same listing the user just saw.
	lastFilter logbook.Filter
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := store.OpenSQLite(ctx, c.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	return &App{
		config:     c,
		log:        log,
		store:      db,
		reconciler: reconcile.New(db, log),
		book:       logbook.NewBook(db),
		staff:      roster.NewStaffRoster(db, seed.Staff()),
		students:   roster.NewStudentRoster(db, seed.Students()),
		guardians:  roster.NewGuardianRoster(db, seed.Guardians()),
		suppliers:  roster.NewSupplierRoster(db, seed.Suppliers()),
		visitors:   roster.NewVisitorLog(db),
		reader:     bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.store.Close()
	a.Main(ctx)
}
