//go:build integration

package main

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/futsuuu/grm/internal/config"
)

func sortedLines(s string) []string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	sort.Strings(lines)
	return lines
}

// TestListCmd tests listing managed repositories.
//
// Scenario: two repos and a plain directory under the root, one repo with a
// nested repo inside it
// Expected: only the two top-level repos are listed, relative to root
func TestListCmd(t *testing.T) {
	root := setupRoot(t)
	setupTestRepo(t, filepath.Join(root, "github.com", "foo", "bar"))
	setupTestRepo(t, filepath.Join(root, "gitlab.com", "baz", "qux"))
	setupTestRepo(t, filepath.Join(root, "github.com", "foo", "bar", "vendor", "nested"))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "github.com", "empty"), 0755))

	ctx, out := testContext(t, config.Default(), t.TempDir())
	require.NoError(t, runGrm(ctx, "list"))

	assert.Equal(t, []string{"github.com/foo/bar", "gitlab.com/baz/qux"}, sortedLines(out.String()))
}

// TestListCmd_Absolute tests listing with absolute paths.
//
// Scenario: User runs `grm ls -l`
// Expected: paths are prefixed with the root
func TestListCmd_Absolute(t *testing.T) {
	root := setupRoot(t)
	setupTestRepo(t, filepath.Join(root, "github.com", "foo", "bar"))

	ctx, out := testContext(t, config.Default(), t.TempDir())
	require.NoError(t, runGrm(ctx, "ls", "-l"))

	assert.Equal(t, filepath.ToSlash(filepath.Join(root, "github.com", "foo", "bar"))+"\n", out.String())
}

// TestListCmd_MissingRoot tests listing before anything was cloned.
//
// Scenario: GRM_ROOT points at a directory that does not exist
// Expected: no output, no error
func TestListCmd_MissingRoot(t *testing.T) {
	root := setupRoot(t)
	t.Setenv("GRM_ROOT", filepath.Join(root, "missing"))

	ctx, out := testContext(t, config.Default(), t.TempDir())
	require.NoError(t, runGrm(ctx, "list"))
	assert.Empty(t, out.String())
}
