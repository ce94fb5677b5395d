package git

import (
	"context"
	"io"
	"strconv"
)

// CloneOptions configures Clone.
type CloneOptions struct {
	// Depth limits fetched history. Zero fetches everything.
	Depth uint
	// Progress receives git's own output. Nil discards it.
	Progress io.Writer
}

// Clone clones url into dest with the git CLI.
func Clone(ctx context.Context, url, dest string, opts CloneOptions) error {
	args := []string{"clone"}
	if opts.Depth > 0 {
		args = append(args, "--depth", strconv.FormatUint(uint64(opts.Depth), 10))
	}
	args = append(args, url, dest)

	progress := opts.Progress
	if progress == nil {
		progress = io.Discard
	}
	return streamGit(ctx, "", progress, progress, args...)
}
