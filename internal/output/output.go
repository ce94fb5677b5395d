// Package output provides context-aware output for grm.
// Stdout is used for primary data output (paths, origins).
// Stderr (via log package) is used for diagnostics.
package output

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/colorprofile"
)

type ctxKey struct{}

// Printer writes primary output to stdout. Styled text is downsampled to
// what the destination supports, so piping grm strips escape sequences.
type Printer struct {
	w io.Writer
}

// New creates a Printer writing to w, with color handling detected from the
// process environment.
func New(w io.Writer) *Printer {
	return &Printer{w: colorprofile.NewWriter(w, os.Environ())}
}

// WithPrinter attaches a Printer for w to the context.
func WithPrinter(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, ctxKey{}, New(w))
}

// FromContext retrieves the Printer from context.
// Returns a Printer writing to os.Stdout if none is attached.
func FromContext(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stdout)
}

// Printf writes formatted output.
func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.w, format, a...)
}

// Path writes a filesystem path on its own line, always with forward slashes.
func (p *Printer) Path(path string) {
	fmt.Fprintln(p.w, DisplayPath(path))
}

// Field writes a "label: value" line. label may be pre-styled.
func (p *Printer) Field(label, value string) {
	fmt.Fprintf(p.w, "%s %s\n", label, value)
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.w
}

// DisplayPath renders path with forward slashes regardless of platform.
func DisplayPath(path string) string {
	return strings.ReplaceAll(path, `\`, "/")
}
