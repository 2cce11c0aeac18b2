package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	calls []string
}

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return nil
}

func (f *fakeExec) StaffAction(ctx context.Context) error    { return f.record("staff") }
func (f *fakeExec) StudentAction(ctx context.Context) error  { return f.record("student") }
func (f *fakeExec) GuardianEntry(ctx context.Context) error  { return f.record("guardian") }
func (f *fakeExec) SupplierEntry(ctx context.Context) error  { return f.record("supplier") }
func (f *fakeExec) VisitorEntry(ctx context.Context) error   { return f.record("visitor") }
func (f *fakeExec) Scan(ctx context.Context) error           { return f.record("scan") }
func (f *fakeExec) ShowLog(ctx context.Context) error        { return f.record("log") }
func (f *fakeExec) MarkExitPrompt(ctx context.Context) error { return f.record("salida") }
func (f *fakeExec) ReentryPrompt(ctx context.Context) error  { return f.record("reingreso") }
func (f *fakeExec) DeletePrompt(ctx context.Context) error   { return f.record("borrar") }
func (f *fakeExec) Export(ctx context.Context) error         { return f.record("export") }
func (f *fakeExec) StaffAdd(ctx context.Context) error       { return f.record("addstaff") }
func (f *fakeExec) StaffRemove(ctx context.Context) error    { return f.record("delstaff") }
func (f *fakeExec) StaffPlate(ctx context.Context) error     { return f.record("patente") }
func (f *fakeExec) SupplierAdd(ctx context.Context) error    { return f.record("addsupplier") }

func silencePrintln(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

func TestRunREPL_DispatchAndExit(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"funcionario",
		"student",
		"apoderado",
		"scan",
		"log extra tokens ignored",
		"export",
		"patente",
		"foobar",
		"",
		"exit",
		"visita", // never reached
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, bufio.NewScanner(input))

	assert.Equal(t, []string{"staff", "student", "guardian", "scan", "log", "export", "patente"}, exec.calls)
}

func TestRunREPL_EOFStopsLoop(t *testing.T) {
	silencePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, bufio.NewScanner(strings.NewReader("salida\n")))
	assert.Equal(t, []string{"salida"}, exec.calls)
}
