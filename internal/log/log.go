// Package log provides context-aware logging for grm.
//
// Human diagnostics (Printf, Println) go to the writer as-is. Structured
// debug lines (Debug) are emitted through logrus as key=value pairs and only
// appear in verbose mode. Quiet mode silences everything.
package log

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

type ctxKey struct{}

// Logger writes diagnostics to stderr.
type Logger struct {
	out     io.Writer
	verbose bool
	quiet   bool
	entry   *logrus.Logger
}

// New creates a new logger. quiet overrides verbose.
func New(out io.Writer, verbose, quiet bool) *Logger {
	entry := logrus.New()
	entry.SetOutput(out)
	entry.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})
	entry.SetLevel(logrus.InfoLevel)
	if verbose && !quiet {
		entry.SetLevel(logrus.DebugLevel)
	}
	return &Logger{out: out, verbose: verbose, quiet: quiet, entry: entry}
}

// WithLogger attaches a logger to the context.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves the logger from context.
// Returns a logger writing to io.Discard if none is attached.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return New(io.Discard, false, false)
}

// Printf writes formatted output.
func (l *Logger) Printf(format string, args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintf(l.out, format, args...)
}

// Println writes a line of output.
func (l *Logger) Println(args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintln(l.out, args...)
}

// Debug logs msg with key/value pairs in verbose mode.
// A trailing key without a value is dropped.
func (l *Logger) Debug(msg string, keyvals ...any) {
	if !l.IsVerbose() {
		return
	}
	fields := make(logrus.Fields, len(keyvals)/2)
	for i := 0; i+1 < len(keyvals); i += 2 {
		fields[fmt.Sprint(keyvals[i])] = keyvals[i+1]
	}
	l.entry.WithFields(fields).Debug(msg)
}

// Command logs an external command before it runs and returns a func that
// logs its duration once it finishes. Both are no-ops unless verbose.
func (l *Logger) Command(dir, name string, args ...string) func(time.Duration) {
	if !l.IsVerbose() {
		return func(time.Duration) {}
	}
	line := "$ " + strings.TrimSpace(name+" "+strings.Join(args, " "))
	if dir != "" {
		line = "[" + dir + "] " + line
	}
	return func(d time.Duration) {
		fmt.Fprintf(l.out, "%s (%s)\n", line, d.Round(time.Millisecond))
	}
}

// IsVerbose reports whether verbose output is enabled.
func (l *Logger) IsVerbose() bool {
	return l.verbose && !l.quiet
}

// Progress returns where output of long-running external commands should
// go: the underlying writer, or io.Discard in quiet mode.
func (l *Logger) Progress() io.Writer {
	if l.quiet {
		return io.Discard
	}
	return l.out
}
