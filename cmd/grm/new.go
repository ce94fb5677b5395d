package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/futsuuu/grm/internal/app"
	"github.com/futsuuu/grm/internal/git"
	"github.com/futsuuu/grm/internal/layout"
	"github.com/futsuuu/grm/internal/log"
	"github.com/futsuuu/grm/internal/output"
	"github.com/futsuuu/grm/internal/repoid"
	"github.com/futsuuu/grm/internal/ui/styles"
)

// runNew initializes an empty managed repository for name with its origin
// and upstream branch recorded.
func runNew(ctx context.Context, a *app.App, name string, scheme repoid.Scheme) error {
	out := output.FromContext(ctx)
	l := log.FromContext(ctx)

	origin, err := a.OriginURL(name, scheme)
	if err != nil {
		return err
	}
	out.Field(styles.RenderLabel("origin"), origin.String())

	path, err := a.RepoPath(origin)
	if err != nil {
		return err
	}
	out.Field(styles.RenderLabel("path"), styles.Dim.Render(output.DisplayPath(path)))

	// The new repository has no local config yet, so the current
	// repository's init.defaultBranch must not apply.
	gitCfg, err := git.GlobalConfig()
	if err != nil {
		return err
	}

	lock, err := a.LockRoot(ctx)
	if err != nil {
		return err
	}
	defer lock.Unlock()

	branch := gitCfg.DefaultBranch()
	l.Debug("initializing repository", "path", path, "branch", branch)

	_, err = git.Init(path, origin.String(), branch)
	return err
}

// runNewWorktree adds a linked worktree of the current repository for the
// branch name selects.
func runNewWorktree(ctx context.Context, a *app.App, name string, raw bool) error {
	out := output.FromContext(ctx)
	l := log.FromContext(ctx)

	if err := git.CheckGit(); err != nil {
		return err
	}

	repo, err := a.CurrentRepo()
	if err != nil {
		return err
	}
	branches, err := repo.Branches()
	if err != nil {
		return err
	}

	match := git.MatchBranch
	if raw {
		match = git.ExactBranch
	}
	branch, err := match(branches, name)
	if err != nil {
		return err
	}
	out.Field(styles.RenderLabel("branch"), styles.Highlight.Render(branch))

	path, err := a.WorktreePath(branch)
	if err != nil {
		return err
	}
	out.Field(styles.RenderLabel("worktree"), styles.Dim.Render(output.DisplayPath(path)))

	lock, err := a.LockRoot(ctx)
	if err != nil {
		return err
	}
	defer lock.Unlock()

	if err := prepareWorktreeDir(l, path); err != nil {
		return err
	}

	wtName := layout.WorktreeName(branch)
	l.Debug("adding worktree", "name", wtName, "path", path, "branch", branch)

	return repo.AddWorktree(ctx, wtName, path, branch)
}

// prepareWorktreeDir clears the way for a worktree at path: an empty
// directory there is removed, anything else is an error. Parent directories
// are created.
func prepareWorktreeDir(l *log.Logger, path string) error {
	if info, err := os.Lstat(path); err == nil && info.IsDir() {
		// fails unless empty
		if os.Remove(path) == nil {
			l.Printf("removed empty directory %s\n", output.DisplayPath(path))
		}
	}
	if _, err := os.Lstat(path); err == nil {
		return fmt.Errorf("%s: already exists", output.DisplayPath(path))
	}
	return os.MkdirAll(filepath.Dir(path), 0755)
}
