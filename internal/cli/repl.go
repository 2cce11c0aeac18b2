package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	StaffAction(ctx context.Context) error
	StudentAction(ctx context.Context) error
	GuardianEntry(ctx context.Context) error
	SupplierEntry(ctx context.Context) error
	VisitorEntry(ctx context.Context) error
	Scan(ctx context.Context) error
	ShowLog(ctx context.Context) error
	MarkExitPrompt(ctx context.Context) error
	ReentryPrompt(ctx context.Context) error
	DeletePrompt(ctx context.Context) error
	Export(ctx context.Context) error
	StaffAdd(ctx context.Context) error
	StaffRemove(ctx context.Context) error
	StaffPlate(ctx context.Context) error
	SupplierAdd(ctx context.Context) error
}

// runREPL reads a line from the scanner, parses the first token as the
// command and dispatches to methods on a. The loop exits on scanner EOF or
// when the user types "exit" or "quit". Errors returned by handlers are
// reported and swallowed so the loop stays alive.
func runREPL(ctx context.Context, a execIface, scanner *bufio.Scanner) {
	for {
		printlnFn("gatelog > ")
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		var err error
		switch cmd := parts[0]; cmd {
		case "help":
			printlnFn("Registro:  funcionario, estudiante, apoderado, proveedor, visita, scan")
			printlnFn("Bitácora:  log, salida, reingreso, borrar, export")
			printlnFn("Nómina:    addstaff, delstaff, patente, addsupplier")
			printlnFn("Otros:     help, exit")

		case "funcionario", "staff":
			err = a.StaffAction(ctx)
		case "estudiante", "student":
			err = a.StudentAction(ctx)
		case "apoderado", "guardian":
			err = a.GuardianEntry(ctx)
		case "proveedor", "supplier":
			err = a.SupplierEntry(ctx)
		case "visita", "visitor":
			err = a.VisitorEntry(ctx)
		case "scan":
			err = a.Scan(ctx)

		case "log", "l":
			err = a.ShowLog(ctx)
		case "salida":
			err = a.MarkExitPrompt(ctx)
		case "reingreso":
			err = a.ReentryPrompt(ctx)
		case "borrar":
			err = a.DeletePrompt(ctx)
		case "export":
			err = a.Export(ctx)

		case "addstaff":
			err = a.StaffAdd(ctx)
		case "delstaff":
			err = a.StaffRemove(ctx)
		case "patente":
			err = a.StaffPlate(ctx)
		case "addsupplier":
			err = a.SupplierAdd(ctx)

		case "exit", "quit":
			printlnFn("Hasta luego!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
		if err != nil {
			printlnFn("Error:", err.Error())
		}
	}
}

func (a *App) Main(ctx context.Context) {
	printlnFn("Gatelog (type 'help' for commands)")
	runREPL(ctx, a, bufio.NewScanner(os.Stdin))
}
