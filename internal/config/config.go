package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/futsuuu/grm/internal/storage"
)

// EnvConfigHome overrides the base directory of the config file.
const EnvConfigHome = "XDG_CONFIG_HOME"

// CloneConfig holds clone-related configuration
type CloneConfig struct {
	Depth uint `toml:"depth"` // 0 fetches the full history
}

// Config holds the grm configuration
type Config struct {
	Root        string      `toml:"root"`         // optional: overrides ~/grm
	DefaultHost string      `toml:"default_host"` // host for owner/name references
	SSH         bool        `toml:"ssh"`          // infer ssh:// URLs by default
	Clone       CloneConfig `toml:"clone"`
}

// DefaultHost is the host used when none is configured
const DefaultHost = "github.com"

// Default returns the default configuration
func Default() Config {
	return Config{
		DefaultHost: DefaultHost,
	}
}

// ValidatePath checks that the path is absolute or starts with ~
// Returns error if path is relative (like "." or "..")
func ValidatePath(path, fieldName string) error {
	if path == "" {
		return nil // Empty is allowed (means not configured)
	}
	if path[0] == '~' {
		return nil
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s must be absolute or start with ~, got: %q", fieldName, path)
	}
	return nil
}

// ExpandPath expands a leading ~ to the user's home directory
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}

// Path returns the location of the config file:
// $XDG_CONFIG_HOME/grm/config.toml, or ~/.config/grm/config.toml.
func Path() (string, error) {
	if dir := os.Getenv(EnvConfigHome); dir != "" && filepath.IsAbs(dir) {
		return filepath.Join(dir, "grm", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "grm", "config.toml"), nil
}

// Load reads the config file at Path.
// Returns Default() if file doesn't exist (no error)
// Returns error only if file exists but is invalid
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads config from path. A missing file yields Default().
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := ValidatePath(cfg.Root, "root"); err != nil {
		return Default(), err
	}
	if err := validateHost(cfg.DefaultHost); err != nil {
		return Default(), err
	}

	// Shells don't expand ~ inside config files
	root, err := ExpandPath(cfg.Root)
	if err != nil {
		return Default(), fmt.Errorf("expand root: %w", err)
	}
	cfg.Root = root

	if cfg.DefaultHost == "" {
		cfg.DefaultHost = DefaultHost
	}
	return cfg, nil
}

const defaultConfig = `# grm configuration

# Directory all repositories are stored under, as <root>/<host>/<owner>/<name>.
# Must be an absolute path or start with ~ (no relative paths like "." or "..")
# The GRM_ROOT environment variable and the grm.root git config take precedence.
# Default: ~/grm
# root = "~/src"

# Host prepended to references of the form owner/name
default_host = "github.com"

# Infer ssh:// URLs instead of https:// ones (same as passing --ssh)
ssh = false

# Clone settings for "grm get"
# [clone]
# depth = 1  # shallow clone; 0 fetches the full history
`

// Init creates a default config file at Path.
// If force is true, overwrites existing file
// Returns the path to the created file
func Init(force bool) (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", errors.New("config file already exists: " + path)
		}
	}

	if err := storage.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
		return "", err
	}
	return path, nil
}
