package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/futsuuu/grm/internal/config"
	"github.com/futsuuu/grm/internal/repoid"
)

func newNewCmd() *cobra.Command {
	var (
		worktree bool
		ssh      bool
		raw      bool
	)

	cmd := &cobra.Command{
		Use:     "new <name>",
		Short:   "Create a new local repository",
		Aliases: []string{"n"},
		GroupID: GroupCore,
		Args:    cobra.ExactArgs(1),
		Long: `Create a new local repository whose origin is inferred from <name>,
without fetching anything.

With --worktree, create a linked worktree of the current repository instead.
<name> then selects a local branch: among the branches containing it, the
one with the most path segments, then the longest name, is used. With --raw
<name> must be the exact branch name.`,
		Example: `  grm new bar                 # init <root>/github.com/<you>/bar
  grm new foo/bar --ssh       # origin ssh://git@github.com/foo/bar
  grm new -w login            # worktree for e.g. feature/login
  grm new -w -r feature/login`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)

			if raw && !worktree {
				return errors.New("--raw requires --worktree")
			}

			a, err := injectApp(ctx, true)
			if err != nil {
				return err
			}

			if worktree {
				return runNewWorktree(ctx, a, args[0], raw)
			}
			return runNew(ctx, a, args[0], repoid.SchemeFor(ssh || cfg.SSH))
		},
	}

	cmd.Flags().BoolVarP(&worktree, "worktree", "w", false, "Create a new linked worktree of the current repository")
	cmd.Flags().BoolVar(&ssh, "ssh", false, "Use SSH scheme for the origin URL instead of HTTPS scheme")
	cmd.Flags().BoolVarP(&raw, "raw", "r", false, "Use <name> as the exact branch name (with --worktree)")
	cmd.MarkFlagsMutuallyExclusive("worktree", "ssh")

	cmd.ValidArgsFunction = completeBranches

	return cmd
}
