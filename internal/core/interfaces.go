package core

import "log"

// Logger is the minimal logging surface the renderer depends on. Concrete
// binaries (cmd/render) supply a *log.Logger-backed implementation; the core
// never imports a logging framework itself.
type Logger interface {
	Printf(format string, args ...interface{})
}

// NopLogger discards everything. It is the default when no Logger is supplied.
type NopLogger struct{}

// Printf implements Logger.
func (NopLogger) Printf(string, ...interface{}) {}

// StdLogger adapts the standard library's *log.Logger to Logger.
type StdLogger struct {
	*log.Logger
}

// NewStdLogger wraps l, or the standard logger's default instance if l is nil.
func NewStdLogger(l *log.Logger) StdLogger {
	if l == nil {
		l = log.Default()
	}
	return StdLogger{Logger: l}
}
