// Package app holds the state resolved once per grm invocation: the tool
// configuration, the git configuration, the repository containing the
// working directory (if any), and the memoized root directory and user name.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/user"
	"path/filepath"

	"github.com/futsuuu/grm/internal/config"
	"github.com/futsuuu/grm/internal/git"
	"github.com/futsuuu/grm/internal/layout"
	"github.com/futsuuu/grm/internal/log"
	"github.com/futsuuu/grm/internal/repoid"
	"github.com/futsuuu/grm/internal/storage"
)

// EnvRoot overrides every other source of the root directory.
const EnvRoot = "GRM_ROOT"

// lockFile is the name of the lock held below the root while a command
// writes into it.
const lockFile = ".grm.lock"

// ErrConfigResolution is returned when the root directory or the user name
// cannot be determined by any fallback.
var ErrConfigResolution = errors.New("failed to resolve configuration")

// App is the invocation context. It is not safe for concurrent use.
type App struct {
	cfg     config.Config
	git     *git.Config
	current *git.Repo

	root     string
	userName string
}

// New returns an App over the given configuration. current may be nil.
func New(cfg config.Config, gitCfg *git.Config, current *git.Repo) *App {
	return &App{cfg: cfg, git: gitCfg, current: current}
}

// Config returns the tool configuration.
func (a *App) Config() config.Config {
	return a.cfg
}

// CurrentRepo returns the repository containing the working directory.
func (a *App) CurrentRepo() (*git.Repo, error) {
	if a.current == nil {
		return nil, git.ErrNoCurrentRepository
	}
	return a.current, nil
}

// RootDir returns the directory managed repositories live under. Sources in
// order: $GRM_ROOT, git config grm.root, the config file, ~/grm.
func (a *App) RootDir() (string, error) {
	if a.root != "" {
		return a.root, nil
	}

	root, err := a.resolveRoot()
	if err != nil {
		return "", err
	}
	a.root = filepath.Clean(root)
	return a.root, nil
}

func (a *App) resolveRoot() (string, error) {
	if v := os.Getenv(EnvRoot); v != "" {
		return checkedRoot(v, EnvRoot)
	}
	if v, ok := a.git.Get("grm", "root"); ok {
		return checkedRoot(v, "grm.root")
	}
	if a.cfg.Root != "" {
		return checkedRoot(a.cfg.Root, "root")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: root directory: %w", ErrConfigResolution, err)
	}
	return filepath.Join(home, "grm"), nil
}

func checkedRoot(path, source string) (string, error) {
	if err := config.ValidatePath(path, source); err != nil {
		return "", fmt.Errorf("%w: %w", ErrConfigResolution, err)
	}
	expanded, err := config.ExpandPath(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrConfigResolution, err)
	}
	return expanded, nil
}

// UserName returns git's user.name, falling back to the OS login name.
func (a *App) UserName() (string, error) {
	if a.userName != "" {
		return a.userName, nil
	}

	if name, ok := a.git.UserName(); ok {
		a.userName = name
		return name, nil
	}
	u, err := user.Current()
	if err != nil || u.Username == "" {
		return "", fmt.Errorf("%w: user name: set git config user.name", ErrConfigResolution)
	}
	a.userName = u.Username
	return a.userName, nil
}

// Layout returns the path mapper rooted at RootDir.
func (a *App) Layout() (layout.Layout, error) {
	root, err := a.RootDir()
	if err != nil {
		return layout.Layout{}, err
	}
	return layout.New(root), nil
}

// Normalizer returns the reference normalizer for the configured host.
func (a *App) Normalizer() repoid.Normalizer {
	return repoid.Normalizer{Host: a.cfg.DefaultHost}
}

// OriginURL qualifies ref into a remote URL, using UserName for bare names.
func (a *App) OriginURL(ref string, scheme repoid.Scheme) (*url.URL, error) {
	name, err := a.UserName()
	if err != nil {
		return nil, err
	}
	return a.Normalizer().Normalize(ref, name, scheme)
}

// RepoPath returns the managed location of the repository at origin.
func (a *App) RepoPath(origin *url.URL) (string, error) {
	l, err := a.Layout()
	if err != nil {
		return "", err
	}
	return l.RepoPath(origin)
}

// WorktreePath returns where the current repository's worktree for branch
// belongs.
func (a *App) WorktreePath(branch string) (string, error) {
	repo, err := a.CurrentRepo()
	if err != nil {
		return "", err
	}
	mainDir, err := repo.MainWorkDir()
	if err != nil {
		return "", err
	}
	l, err := a.Layout()
	if err != nil {
		return "", err
	}
	return l.WorktreePath(mainDir, branch)
}

// LockRoot blocks until no other grm process is writing below the root and
// returns the held lock. Waiting is reported through the logger in ctx.
func (a *App) LockRoot(ctx context.Context) (*storage.FileLock, error) {
	root, err := a.RootDir()
	if err != nil {
		return nil, err
	}
	lock := storage.NewFileLock(filepath.Join(root, lockFile))

	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", root, err)
	}
	if ok {
		return lock, nil
	}

	log.FromContext(ctx).Println("waiting for another grm process writing to", root)
	if err := lock.Lock(); err != nil {
		return nil, fmt.Errorf("lock %s: %w", root, err)
	}
	return lock, nil
}
