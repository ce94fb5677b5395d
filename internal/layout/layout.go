// Package layout maps remote URLs and branches onto grm's directory tree.
//
// Every managed repository lives at <root>/<host>/<path>, and linked
// worktrees of a managed repository live under <root>/worktrees, mirroring
// the repository's own location:
//
//	~/grm/github.com/foo/bar
//	~/grm/worktrees/github.com/foo/bar/feature/login
//
// All functions here are pure; nothing touches the filesystem except Walk.
package layout

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

// WorktreesDir is the directory under the root that holds linked worktrees.
const WorktreesDir = "worktrees"

var (
	// ErrMissingDomain is returned for URLs without a host name. IP
	// addresses are not host names.
	ErrMissingDomain = errors.New("URL does not have a domain name")

	// ErrUnmanagedRepository is returned when a worktree is requested for a
	// repository that does not live under the root.
	ErrUnmanagedRepository = errors.New("cannot create a worktree of an unmanaged repository")
)

// Layout resolves paths below a root directory.
type Layout struct {
	Root string
}

// New returns a Layout for root.
func New(root string) Layout {
	return Layout{Root: filepath.Clean(root)}
}

// RepoPath returns the local path for the repository at u.
// The URL path is resolved against "/" first, so ".." cannot climb out of
// the host directory.
func (l Layout) RepoPath(u *url.URL) (string, error) {
	host := u.Hostname()
	if host == "" || net.ParseIP(host) != nil {
		return "", fmt.Errorf("`%s`: %w", u, ErrMissingDomain)
	}
	rel := strings.TrimPrefix(path.Clean("/"+u.Path), "/")
	return filepath.Join(l.Root, host, filepath.FromSlash(rel)), nil
}

// WorktreeRoot returns <root>/worktrees.
func (l Layout) WorktreeRoot() string {
	return filepath.Join(l.Root, WorktreesDir)
}

// WorktreePath returns where a linked worktree of the repository checked
// out at mainWorkDir should live for branch. mainWorkDir must be the main
// working copy, not another linked worktree.
func (l Layout) WorktreePath(mainWorkDir, branch string) (string, error) {
	rel, err := l.Rel(mainWorkDir)
	if err != nil {
		return "", err
	}
	return filepath.Join(l.WorktreeRoot(), rel, filepath.FromSlash(branch)), nil
}

// Rel returns dir relative to the root, or ErrUnmanagedRepository when dir
// is not strictly below it.
func (l Layout) Rel(dir string) (string, error) {
	rel, err := filepath.Rel(l.Root, filepath.Clean(dir))
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s: %w", dir, ErrUnmanagedRepository)
	}
	return rel, nil
}

// WorktreeName returns the name git records for the worktree of branch.
// Slashes are replaced so the name stays a single path segment.
func WorktreeName(branch string) string {
	return strings.ReplaceAll(branch, "/", "__")
}
