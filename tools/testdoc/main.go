// Package main generates markdown documentation for grm's test suite from
// Go test functions and their doc comments.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		rootDir         string
		outputFile      string
		integrationOnly bool
	)

	cmd := &cobra.Command{
		Use:           "testdoc",
		Short:         "Generate markdown documentation from test doc comments",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			absRoot, err := filepath.Abs(rootDir)
			if err != nil {
				return fmt.Errorf("resolve root directory: %w", err)
			}

			packages, err := ParseTestFiles(absRoot, integrationOnly)
			if err != nil {
				return fmt.Errorf("parse test files: %w", err)
			}

			if err := os.MkdirAll(filepath.Dir(outputFile), 0755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}

			f, err := os.Create(outputFile)
			if err != nil {
				return fmt.Errorf("create output file: %w", err)
			}
			defer f.Close()

			if err := RenderMarkdown(f, packages); err != nil {
				return fmt.Errorf("render markdown: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Generated %s with %d packages\n", outputFile, len(packages))
			return nil
		},
	}

	cmd.Flags().StringVar(&rootDir, "root", ".", "Root directory to scan for test files")
	cmd.Flags().StringVar(&outputFile, "out", "docs/TESTS.md", "Output markdown file")
	cmd.Flags().BoolVar(&integrationOnly, "integration", false, "Only include integration tests (*_integration_test.go)")

	return cmd
}
