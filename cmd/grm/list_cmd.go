package main

import (
	"github.com/spf13/cobra"

	"github.com/futsuuu/grm/internal/git"
	"github.com/futsuuu/grm/internal/layout"
	"github.com/futsuuu/grm/internal/log"
	"github.com/futsuuu/grm/internal/output"
)

func newListCmd() *cobra.Command {
	var absolute bool

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List managed local repositories",
		Aliases: []string{"ls"},
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `List the repositories under the root directory, one per line.

Paths are relative to the root unless --absolute is given. Directories
inside a repository are not searched.`,
		Example: `  grm list
  grm ls -l | fzf`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			a, err := injectApp(ctx, false)
			if err != nil {
				return err
			}
			root, err := a.RootDir()
			if err != nil {
				return err
			}

			log.FromContext(ctx).Debug("listing repositories", "root", root, "absolute", absolute)

			for path, err := range layout.Walk(root, absolute, git.IsRepo) {
				if err != nil {
					return err
				}
				out.Path(path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&absolute, "absolute", "l", false, "Print absolute paths")

	return cmd
}
