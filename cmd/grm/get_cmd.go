package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/futsuuu/grm/internal/app"
	"github.com/futsuuu/grm/internal/config"
	"github.com/futsuuu/grm/internal/git"
	"github.com/futsuuu/grm/internal/log"
	"github.com/futsuuu/grm/internal/output"
	"github.com/futsuuu/grm/internal/repoid"
	"github.com/futsuuu/grm/internal/ui/styles"
)

func newGetCmd() *cobra.Command {
	var (
		ssh   bool
		depth uint
	)

	cmd := &cobra.Command{
		Use:     "get <repo>",
		Short:   "Clone a remote repository",
		Aliases: []string{"g", "clone"},
		GroupID: GroupCore,
		Args:    cobra.ExactArgs(1),
		Long: `Clone a remote repository into <root>/<host>/<owner>/<name>.

The reference may be a name (owner defaults to your git user.name), an
owner/name pair, host/owner/name, or a full URL.`,
		Example: `  grm get bar                          # https://github.com/<you>/bar
  grm get foo/bar                      # https://github.com/foo/bar
  grm get --ssh gitlab.com/foo/bar     # ssh://git@gitlab.com/foo/bar
  grm get --depth 1 https://git.example.com/foo/bar.git`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)

			if !cmd.Flags().Changed("depth") {
				depth = cfg.Clone.Depth
			}

			a, err := injectApp(ctx, true)
			if err != nil {
				return err
			}
			return runGet(ctx, a, args[0], repoid.SchemeFor(ssh || cfg.SSH), depth)
		},
	}

	cmd.Flags().BoolVar(&ssh, "ssh", false, "Clone with SSH instead of HTTPS")
	cmd.Flags().UintVar(&depth, "depth", 0, "Set fetch depth, 0 means to pull everything")

	return cmd
}

// runGet prints where ref resolves to and clones it there.
func runGet(ctx context.Context, a *app.App, ref string, scheme repoid.Scheme, depth uint) error {
	out := output.FromContext(ctx)
	l := log.FromContext(ctx)

	origin, err := a.OriginURL(ref, scheme)
	if err != nil {
		return err
	}
	out.Field(styles.RenderLabel("origin"), origin.String())

	path, err := a.RepoPath(origin)
	if err != nil {
		return err
	}
	out.Field(styles.RenderLabel("path"), styles.Dim.Render(output.DisplayPath(path)))

	if err := git.CheckGit(); err != nil {
		return err
	}
	lock, err := a.LockRoot(ctx)
	if err != nil {
		return err
	}
	defer lock.Unlock()

	l.Debug("cloning repository", "origin", origin, "path", path, "depth", depth)

	return git.Clone(ctx, origin.String(), path, git.CloneOptions{
		Depth:    depth,
		Progress: l.Progress(),
	})
}
