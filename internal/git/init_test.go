package git

import (
	"path/filepath"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInit verifies a new repository records its origin without fetching.
//
// Scenario: init a repository under a not yet existing directory
// Expected: origin remote set, HEAD on the branch, branch tracks origin
func TestInit(t *testing.T) {
	t.Parallel()

	path := filepath.Join(resolveTempDir(t), "github.com", "foo", "bar")
	r, err := Init(path, "https://github.com/foo/bar", "main")
	require.NoError(t, err)
	assert.Equal(t, path, r.Dir())
	assert.True(t, IsRepo(path))

	cfg, err := r.repo.Config()
	require.NoError(t, err)
	require.Contains(t, cfg.Remotes, "origin")
	assert.Equal(t, []string{"https://github.com/foo/bar"}, cfg.Remotes["origin"].URLs)
	require.Contains(t, cfg.Branches, "main")
	assert.Equal(t, "origin", cfg.Branches["main"].Remote)
	assert.Equal(t, plumbing.ReferenceName("refs/heads/main"), cfg.Branches["main"].Merge)

	head, err := r.repo.Storer.Reference(plumbing.HEAD)
	require.NoError(t, err)
	assert.Equal(t, plumbing.ReferenceName("refs/heads/main"), head.Target())
}

func TestInit_RefusesExisting(t *testing.T) {
	t.Parallel()

	path := filepath.Join(resolveTempDir(t), "repo")
	_, err := Init(path, "https://github.com/foo/bar", "master")
	require.NoError(t, err)

	_, err = Init(path, "https://github.com/foo/bar", "master")
	assert.ErrorIs(t, err, gogit.ErrRepositoryAlreadyExists)
}
