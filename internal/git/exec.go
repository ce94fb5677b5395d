package git

import (
	"context"
	"io"

	"github.com/futsuuu/grm/internal/cmd"
)

// gitArgs prepends -C <dir> to args if dir is non-empty.
func gitArgs(dir string, args []string) []string {
	if dir == "" {
		return args
	}
	return append([]string{"-C", dir}, args...)
}

// runGit executes a git command with context support and verbose logging.
func runGit(ctx context.Context, dir string, args ...string) error {
	return cmd.RunContext(ctx, "", "git", gitArgs(dir, args)...)
}

// streamGit executes a git command whose output (progress, prompts) goes
// straight to the given writers.
func streamGit(ctx context.Context, dir string, stdout, stderr io.Writer, args ...string) error {
	return cmd.StreamContext(ctx, "", stdout, stderr, "git", gitArgs(dir, args)...)
}
