package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/futsuuu/grm/internal/config"
	"github.com/futsuuu/grm/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage grm configuration.

Config file: $XDG_CONFIG_HOME/grm/config.toml (default ~/.config/grm/config.toml)`,
		Example: `  grm config init     # Create default config
  grm config show     # Show effective config
  grm config path     # Print config file location`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigPathCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Example: `  grm config init      # Create config
  grm config init -f   # Overwrite existing config`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Init(force)
			if err != nil {
				return fmt.Errorf("%w (use -f to overwrite)", err)
			}
			output.FromContext(cmd.Context()).Printf("Created config file: %s\n", output.DisplayPath(path))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		Long: `Show the configuration in effect, as TOML.

The root shown is the one commands use, after $GRM_ROOT and git config
grm.root are applied.`,
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

			effective := a.Config()
			effective.Root = root
			return toml.NewEncoder(output.FromContext(ctx).Writer()).Encode(effective)
		},
	}
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Path()
			if err != nil {
				return err
			}
			output.FromContext(cmd.Context()).Path(path)
			return nil
		},
	}
}
