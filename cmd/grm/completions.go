package main

import (
	"strings"

	"github.com/spf13/cobra"
)

// completeBranches completes local branches of the current repository for
// "new --worktree".
func completeBranches(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	if w, _ := cmd.Flags().GetBool("worktree"); !w {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	a, err := injectApp(cmd.Context(), true)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	repo, err := a.CurrentRepo()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	branches, err := repo.Branches()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var matches []string
	for _, b := range branches {
		if strings.Contains(b, toComplete) {
			matches = append(matches, b)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}
