package main

import (
	"github.com/spf13/cobra"

	"github.com/futsuuu/grm/internal/output"
)

func newRootDirCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "root",
		Short:   "Print repositories' root directory",
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `Print the directory managed repositories live under.

Resolved from, in order: $GRM_ROOT, git config grm.root, the root key of
the config file, and ~/grm.`,
		Example: `  grm root
  cd "$(grm root)"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := injectApp(ctx, false)
			if err != nil {
				return err
			}
			root, err := a.RootDir()
			if err != nil {
				return err
			}

			output.FromContext(ctx).Path(root)
			return nil
		},
	}
}
