// Package config handles loading and validation of grm configuration.
//
// Configuration is read from $XDG_CONFIG_HOME/grm/config.toml, falling back
// to ~/.config/grm/config.toml. A missing file is not an error.
//
// # Key Settings
//
//   - root: Directory repositories are stored under (must be absolute or ~/...)
//   - default_host: Host for owner/name references (default: "github.com")
//   - ssh: Infer ssh:// URLs by default
//   - clone.depth: Shallow clone depth for "grm get" (default: 0, full history)
//
// The root directory is resolved by the caller; GRM_ROOT and the grm.root git
// config take precedence over the file.
//
// # Path Validation
//
// Directory paths must be absolute or start with ~ (no relative paths like "."
// or "..") to avoid confusion about the working directory.
package config
