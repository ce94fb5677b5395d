package main

import (
	"cmp"
	"fmt"
	"io"
	"maps"
	"regexp"
	"slices"
	"strings"
	"time"
)

// commandPrefixes maps test name prefixes to the grm command they exercise.
var commandPrefixes = map[string]string{
	"RootCmd":       "grm root",
	"RootDir":       "grm root",
	"ListCmd":       "grm list",
	"Walk":          "grm list",
	"GetCmd":        "grm get",
	"Clone":         "grm get",
	"OriginURL":     "grm get",
	"Normalize":     "grm get",
	"Normalizer":    "grm get",
	"NewCmd":        "grm new",
	"Init":          "grm new",
	"AddWorktree":   "grm new",
	"MatchBranch":   "grm new",
	"ExactBranch":   "grm new",
	"WorktreePath":  "grm new",
	"WorktreeName":  "grm new",
	"Config":        "grm config",
	"ConfigCmd":     "grm config",
	"ConfigInit":    "grm config",
	"ConfigShow":    "grm config",
	"Completion":    "grm completion",
	"CompletionCmd": "grm completion",
}

var anchorStrip = regexp.MustCompile(`[^a-zA-Z0-9-]`)

// RenderMarkdown writes the test documentation as markdown.
func RenderMarkdown(w io.Writer, packages []TestPackage) error {
	fmt.Fprintf(w, "# Test Documentation\n\n")
	fmt.Fprintf(w, "Generated: %s\n\n", time.Now().Format("2006-01-02"))

	commandMap := make(map[string][]TestFunc)
	for _, pkg := range packages {
		for _, test := range pkg.Tests {
			cmd := extractCommand(test.Name, pkg.Name)
			commandMap[cmd] = append(commandMap[cmd], test)
		}
	}
	commands := slices.Sorted(maps.Keys(commandMap))

	fmt.Fprintf(w, "## Summary\n\n")
	fmt.Fprintf(w, "| Area | Tests |\n")
	fmt.Fprintf(w, "|------|-------|\n")

	totalTests := 0
	for _, cmd := range commands {
		tests := commandMap[cmd]
		fmt.Fprintf(w, "| [%s](#%s) | %d |\n", cmd, toAnchor(cmd), len(tests))
		totalTests += len(tests)
	}
	fmt.Fprintf(w, "| **Total** | **%d** |\n\n", totalTests)

	for _, cmd := range commands {
		renderCommandSection(w, cmd, commandMap[cmd])
	}
	return nil
}

func renderCommandSection(w io.Writer, cmd string, tests []TestFunc) {
	fmt.Fprintf(w, "## %s\n\n", cmd)
	fmt.Fprintf(w, "| Test | Scenario | Expected |\n")
	fmt.Fprintf(w, "|------|----------|----------|\n")

	for _, test := range tests {
		scenario := cmp.Or(test.Scenario, test.Summary, "_No documentation_")
		expected := cmp.Or(test.Expected, "-")
		fmt.Fprintf(w, "| `%s` | %s | %s |\n", test.Name, escapeCell(scenario), escapeCell(expected))
	}
	fmt.Fprintf(w, "\n")
}

// extractCommand maps a test function to the grm command it covers.
// Tests that don't belong to a command are grouped by package.
// Examples:
//   - TestNewCmd_Worktree -> grm new
//   - TestMatchBranch_Ranking -> grm new
//   - TestWriteFile_Overwrites (internal/storage) -> internal/storage
func extractCommand(testName, pkg string) string {
	name := strings.TrimPrefix(testName, "Test")
	prefix, _, _ := strings.Cut(name, "_")

	if mapped, ok := commandPrefixes[prefix]; ok {
		return mapped
	}
	if pkg == "" || pkg == "." {
		return strings.ToLower(prefix)
	}
	return pkg
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}

// toAnchor converts a command name to a markdown anchor.
func toAnchor(cmd string) string {
	anchor := strings.ReplaceAll(cmd, " ", "-")
	anchor = strings.ReplaceAll(anchor, "/", "")
	anchor = anchorStrip.ReplaceAllString(anchor, "")
	return strings.ToLower(anchor)
}
