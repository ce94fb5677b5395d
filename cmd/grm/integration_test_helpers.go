//go:build integration

package main

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/futsuuu/grm/internal/app"
	"github.com/futsuuu/grm/internal/config"
	"github.com/futsuuu/grm/internal/output"
)

// resolvePath resolves symlinks in a path.
// This is needed on macOS where /var is a symlink to /private/var.
func resolvePath(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("failed to resolve path %s: %v", path, err)
	}
	return resolved
}

// setupRoot points GRM_ROOT at a fresh directory and returns it.
// Tests using it cannot run in parallel.
func setupRoot(t *testing.T) string {
	t.Helper()
	root := resolvePath(t, t.TempDir())
	t.Setenv(app.EnvRoot, root)
	return root
}

// runGitCommand runs git in dir and returns its combined output.
func runGitCommand(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %v failed: %v\n%s", args, err, out)
	}
	return string(out)
}

// setupTestRepo creates a git repo with an initial commit on main at path.
func setupTestRepo(t *testing.T, path string) string {
	t.Helper()

	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatalf("failed to create repo dir: %v", err)
	}
	runGitCommand(t, path, "init", "-b", "main")
	runGitCommand(t, path, "config", "user.email", "test@test.com")
	runGitCommand(t, path, "config", "user.name", "Test User")
	runGitCommand(t, path, "config", "commit.gpgsign", "false")

	if err := os.WriteFile(filepath.Join(path, "README.md"), []byte("# test\n"), 0644); err != nil {
		t.Fatalf("failed to write README: %v", err)
	}
	runGitCommand(t, path, "add", "README.md")
	runGitCommand(t, path, "commit", "-m", "Initial commit")

	return path
}

// testContext returns a context running commands from workDir with cfg,
// and the buffer primary output is captured in.
func testContext(t *testing.T, cfg config.Config, workDir string) (context.Context, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer
	ctx := context.Background()
	ctx = config.WithConfig(ctx, cfg)
	ctx = config.WithWorkDir(ctx, workDir)
	ctx = output.WithPrinter(ctx, &out)
	return ctx, &out
}

// runGrm executes grm with args in ctx.
func runGrm(ctx context.Context, args ...string) error {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	return cmd.ExecuteContext(ctx)
}
