package git

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// AddWorktree checks out the existing local branch into a new linked
// worktree at path. git names a worktree after the last element of the
// directory it is created in, so when that differs from name the worktree
// is created next to path as name and then moved into place.
func (r *Repo) AddWorktree(ctx context.Context, name, path, branch string) error {
	stage := path
	if filepath.Base(path) != name {
		stage = filepath.Join(filepath.Dir(path), name)
		if _, err := os.Lstat(stage); !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("cannot stage worktree %q: %s already exists", name, stage)
		}
	}

	if err := runGit(ctx, r.dir, "worktree", "add", stage, branch); err != nil {
		return fmt.Errorf("add worktree: %w", err)
	}
	if stage == path {
		return nil
	}
	if err := runGit(ctx, r.dir, "worktree", "move", stage, path); err != nil {
		return fmt.Errorf("move worktree into place: %w", err)
	}
	return nil
}
