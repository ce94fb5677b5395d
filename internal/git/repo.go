package git

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	gogit "github.com/go-git/go-git/v5"
)

// ErrNoCurrentRepository is returned by Discover when no repository contains
// the directory.
var ErrNoCurrentRepository = errors.New("current directory is not a git repository")

// Repo is an opened repository.
type Repo struct {
	repo *gogit.Repository
	dir  string // working directory, or the repository itself when bare
}

func openOptions(detect bool) *gogit.PlainOpenOptions {
	return &gogit.PlainOpenOptions{DetectDotGit: detect, EnableDotGitCommonDir: true}
}

// Open opens the repository at path without searching parent directories.
func Open(path string) (*Repo, error) {
	r, err := gogit.PlainOpenWithOptions(path, openOptions(false))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return newRepo(r, path)
}

// IsRepo reports whether path itself is a repository (regular, bare, or a
// linked worktree).
func IsRepo(path string) bool {
	_, err := gogit.PlainOpenWithOptions(path, openOptions(false))
	return err == nil
}

// Discover opens the repository containing dir, searching parent
// directories. It returns ErrNoCurrentRepository when there is none.
func Discover(dir string) (*Repo, error) {
	r, err := gogit.PlainOpenWithOptions(dir, openOptions(true))
	if errors.Is(err, gogit.ErrRepositoryNotExists) {
		return nil, ErrNoCurrentRepository
	}
	if err != nil {
		return nil, fmt.Errorf("open repository at %s: %w", dir, err)
	}
	return newRepo(r, dir)
}

func newRepo(r *gogit.Repository, fallback string) (*Repo, error) {
	dir := fallback
	wt, err := r.Worktree()
	switch {
	case err == nil:
		dir = wt.Filesystem.Root()
	case errors.Is(err, gogit.ErrIsBareRepository):
	default:
		return nil, err
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	return &Repo{repo: r, dir: abs}, nil
}

// Dir returns the repository's working directory, or its own directory for
// bare repositories.
func (r *Repo) Dir() string {
	return r.dir
}

// IsWorktree reports whether the repository is a linked worktree. A
// submodule checkout also has a .git file, but its admin directory has no
// commondir, so it is not one.
func (r *Repo) IsWorktree() bool {
	common, err := commonDir(r.dir)
	return err == nil && common != ""
}

// MainWorkDir returns the main working copy. For a linked worktree that is
// the checkout owning the shared repository metadata, not the worktree.
func (r *Repo) MainWorkDir() (string, error) {
	return mainWorkDirOf(r.dir)
}

// mainWorkDirOf resolves the main working copy of the checkout at dir.
// Anything but a linked worktree is its own main working copy.
func mainWorkDirOf(dir string) (string, error) {
	common, err := commonDir(dir)
	if err != nil {
		return "", err
	}
	if common == "" {
		return dir, nil
	}

	// A bare main repository has no working copy; the repository itself
	// stands in for it.
	if filepath.Base(common) != ".git" {
		return common, nil
	}
	return filepath.Dir(common), nil
}

// commonDir returns the shared repository directory of the linked worktree
// at dir, read from the commondir file of the admin directory its .git file
// points to. It returns "" when dir is not a linked worktree.
func commonDir(dir string) (string, error) {
	info, err := os.Lstat(filepath.Join(dir, ".git"))
	if err != nil || !info.Mode().IsRegular() {
		return "", nil
	}

	gitdir, err := readGitdir(dir)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(filepath.Join(gitdir, "commondir"))
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read commondir: %w", err)
	}
	common := strings.TrimSpace(string(data))
	if common == "" {
		return "", fmt.Errorf("empty commondir in %s", gitdir)
	}
	if !filepath.IsAbs(common) {
		common = filepath.Join(gitdir, common)
	}
	return filepath.Clean(common), nil
}

// readGitdir parses the "gitdir: <path>" line of a worktree's .git file.
func readGitdir(worktreePath string) (string, error) {
	content, err := os.ReadFile(filepath.Join(worktreePath, ".git"))
	if err != nil {
		return "", fmt.Errorf("failed to read .git file: %w", err)
	}

	// Only the first line matters; any additional lines are ignored
	line, _, _ := strings.Cut(string(content), "\n")
	line = strings.TrimSpace(line)
	gitdir, ok := strings.CutPrefix(line, "gitdir: ")
	if !ok || gitdir == "" {
		return "", fmt.Errorf("invalid .git file format in %s: expected 'gitdir: <path>'", worktreePath)
	}
	if !filepath.IsAbs(gitdir) {
		gitdir = filepath.Join(worktreePath, gitdir)
	}
	return filepath.Clean(gitdir), nil
}
