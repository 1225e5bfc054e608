// Package log provides the advisory logging hook threaded through the
// navmesh build pipeline, mirroring the Contexter interface the teacher
// passes through its recast build functions: logging is opt-in and never
// changes control flow.
package log

import (
	"fmt"
	stdlog "log"
	"os"
)

// Logger receives advisory progress and warning messages during a navmesh
// build. Implementations must not block the caller for long; the build
// pipeline does not retry or back off on a slow logger.
type Logger interface {
	Progress(format string, args ...interface{})
	Warning(format string, args ...interface{})
}

// noop discards every message. It is the default Logger when none is
// supplied, matching the source's "tracing is advisory only" stance.
type noop struct{}

func (noop) Progress(string, ...interface{}) {}
func (noop) Warning(string, ...interface{})  {}

// Noop is the Logger that discards everything.
var Noop Logger = noop{}

// StdLogger writes progress and warning messages through the standard
// library logger.
type StdLogger struct {
	l *stdlog.Logger
}

// NewStdLogger returns a StdLogger writing to os.Stderr with the given
// prefix.
func NewStdLogger(prefix string) *StdLogger {
	return &StdLogger{l: stdlog.New(os.Stderr, prefix, stdlog.LstdFlags)}
}

// Progress logs a progress message.
func (s *StdLogger) Progress(format string, args ...interface{}) {
	s.l.Print(fmt.Sprintf("progress: "+format, args...))
}

// Warning logs a warning message.
func (s *StdLogger) Warning(format string, args ...interface{}) {
	s.l.Print(fmt.Sprintf("warning: "+format, args...))
}
