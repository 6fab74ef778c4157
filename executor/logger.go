package executor

import "log"

// Logger is the minimal diagnostic sink the core consumes: two
// severities, used only for task-execution diagnostics and
// shutdown/lifecycle tracing, never for control flow. A no-op
// implementation is a valid collaborator.
type Logger interface {
	Info(msg string)
	Error(msg string)
}

// NoopLogger discards every message. It is the default used when
// Config.Logger is nil.
type NoopLogger struct{}

// Info discards msg.
func (NoopLogger) Info(msg string) {}

// Error discards msg.
func (NoopLogger) Error(msg string) {}

// StdLogger adapts the standard library's *log.Logger to the Logger
// contract. No repository in the retrieval pack pulls in a third-party
// logging library, so the core's shipped adapter wraps the plain "log"
// package instead.
type StdLogger struct {
	L *log.Logger
}

// Info logs msg at info severity.
func (s StdLogger) Info(msg string) { s.L.Print("INFO  " + msg) }

// Error logs msg at error severity.
func (s StdLogger) Error(msg string) { s.L.Print("ERROR " + msg) }
