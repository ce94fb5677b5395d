package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/futsuuu/grm/internal/log"
)

// Error describes a failed external command. The message names the command
// line and, when available, what it wrote to stderr.
type Error struct {
	Command string
	Stderr  string
	Err     error
}

func (e *Error) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s: %s", e.Command, e.Stderr)
	}
	return fmt.Sprintf("%s: %v", e.Command, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func commandLine(name string, args []string) string {
	return strings.TrimSpace(name + " " + strings.Join(args, " "))
}

// RunContext executes a command in dir, capturing stderr into the returned error.
// A cancelled context is reported as ctx.Err().
func RunContext(ctx context.Context, dir, name string, args ...string) error {
	_, err := OutputContext(ctx, dir, name, args...)
	return err
}

// OutputContext executes a command in dir and returns its stdout.
func OutputContext(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	var stdout, stderr bytes.Buffer
	if err := run(ctx, dir, name, args, &stdout, &stderr); err != nil {
		return nil, withStderr(err, stderr.String())
	}
	return stdout.Bytes(), nil
}

// StreamContext executes a command with stdout and stderr attached to the
// given writers, for long-running commands whose progress the user watches.
func StreamContext(ctx context.Context, dir string, stdout, stderr io.Writer, name string, args ...string) error {
	return run(ctx, dir, name, args, stdout, stderr)
}

func run(ctx context.Context, dir, name string, args []string, stdout, stderr io.Writer) error {
	done := log.FromContext(ctx).Command(dir, name, args...)
	start := time.Now()
	defer func() { done(time.Since(start)) }()

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir
	c.Stdout = stdout
	c.Stderr = stderr
	if err := c.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return &Error{Command: commandLine(name, args), Err: err}
	}
	return nil
}

func withStderr(err error, stderr string) error {
	if e, ok := err.(*Error); ok {
		e.Stderr = strings.TrimSpace(stderr)
	}
	return err
}
