package layout

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// markerRepo treats any directory holding a .git entry as a repository and
// records every directory it is asked about.
type markerRepo struct {
	visited []string
}

func (m *markerRepo) isRepo(p string) bool {
	m.visited = append(m.visited, p)
	_, err := os.Stat(filepath.Join(p, ".git"))
	return err == nil
}

func mkdirs(t *testing.T, root string, dirs ...string) {
	t.Helper()
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(root, filepath.FromSlash(d)), 0o755))
	}
}

func collect(t *testing.T, root string, absolute bool, isRepo func(string) bool) []string {
	t.Helper()
	var got []string
	for p, err := range Walk(root, absolute, isRepo) {
		require.NoError(t, err)
		got = append(got, p)
	}
	return got
}

// TestWalk_Prunes verifies repositories are yielded once and never entered.
//
// Scenario: root/a is a repository containing something that looks like
// another repository; root/b/c is a repository two levels down
// Expected: a and b/c are yielded; nothing below a is ever inspected
func TestWalk_Prunes(t *testing.T) {
	t.Parallel()

	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	mkdirs(t, root,
		"a/.git",
		"a/nested/.git",
		"b/c/.git/objects",
		"d/e",
	)
	require.NoError(t, os.WriteFile(filepath.Join(root, "README"), nil, 0o644))

	m := &markerRepo{}
	got := collect(t, root, false, m.isRepo)
	assert.Equal(t, []string{"a", filepath.Join("b", "c")}, got)

	for _, v := range m.visited {
		assert.NotContains(t, v, filepath.Join(root, "a")+string(filepath.Separator), "descended into a")
		assert.NotContains(t, v, ".git", "descended into repository metadata")
	}
	assert.False(t, slices.Contains(m.visited, root), "root itself must not be checked")
}

func TestWalk_Absolute(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	mkdirs(t, root, "github.com/foo/bar/.git")

	got := collect(t, root, true, (&markerRepo{}).isRepo)
	assert.Equal(t, []string{filepath.Join(root, "github.com", "foo", "bar")}, got)
}

func TestWalk_Restartable(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	mkdirs(t, root, "x/.git")
	seq := Walk(root, false, (&markerRepo{}).isRepo)

	for range 2 {
		var got []string
		for p, err := range seq {
			require.NoError(t, err)
			got = append(got, p)
		}
		assert.Equal(t, []string{"x"}, got)
	}
}

func TestWalk_MissingRoot(t *testing.T) {
	t.Parallel()

	got := collect(t, filepath.Join(t.TempDir(), "nope"), false, (&markerRepo{}).isRepo)
	assert.Empty(t, got)
}

func TestWalk_StopsEarly(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	mkdirs(t, root, "a/.git", "b/.git", "c/.git")

	var got []string
	for p, err := range Walk(root, false, (&markerRepo{}).isRepo) {
		require.NoError(t, err)
		got = append(got, p)
		break
	}
	assert.Equal(t, []string{"a"}, got)
}

func TestWalk_SymlinkedRoot(t *testing.T) {
	t.Parallel()

	target := t.TempDir()
	mkdirs(t, target, "github.com/foo/bar/.git")
	link := filepath.Join(t.TempDir(), "grm")
	require.NoError(t, os.Symlink(target, link))

	assert.Equal(t, []string{filepath.Join("github.com", "foo", "bar")},
		collect(t, link, false, (&markerRepo{}).isRepo))
	assert.Equal(t, []string{filepath.Join(link, "github.com", "foo", "bar")},
		collect(t, link, true, (&markerRepo{}).isRepo))
}
