package main

import (
	"fmt"
	"runtime"
)

//go:generate go run ../../tools/testdoc --root ../.. --out ../../docs/TESTS.md

// Version information - set by goreleaser
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	Execute()
}

// versionString returns the version string.
func versionString() string {
	return fmt.Sprintf("grm %s (%s, %s, %s)", version, commit[:min(7, len(commit))], date, runtime.Version())
}
