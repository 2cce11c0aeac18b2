package logging

import "context"

// NopLogger discards everything. Handy default for tests and for callers
// that have not wired a real logger yet.
type NopLogger struct{}

func (NopLogger) Info(ctx context.Context, msg string, args ...any)  {}
func (NopLogger) Warn(ctx context.Context, msg string, args ...any)  {}
func (NopLogger) Error(ctx context.Context, msg string, args ...any) {}
func (NopLogger) With(args ...any) Logger                            { return NopLogger{} }
