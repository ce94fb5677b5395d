package git

import (
	"fmt"

	"github.com/go-git/go-git/v5/config"
)

// DefaultBranchFallback is used when init.defaultBranch is not configured.
const DefaultBranchFallback = "master"

// Config is a read-only view over git configuration scopes, consulted from
// the most specific (repository) to the least specific (system).
type Config struct {
	scopes []*config.Config
}

// NewConfig returns a view over scopes, most specific first.
func NewConfig(scopes ...*config.Config) *Config {
	return &Config{scopes: scopes}
}

// GlobalConfig loads the user's global and the system configuration.
func GlobalConfig() (*Config, error) {
	c := &Config{}
	for _, scope := range []config.Scope{config.GlobalScope, config.SystemScope} {
		cfg, err := config.LoadConfig(scope)
		if err != nil {
			return nil, fmt.Errorf("load git config: %w", err)
		}
		c.scopes = append(c.scopes, cfg)
	}
	return c, nil
}

// Config loads the repository's configuration layered over the global and
// system configuration.
func (r *Repo) Config() (*Config, error) {
	local, err := r.repo.Config()
	if err != nil {
		return nil, fmt.Errorf("load repository config: %w", err)
	}
	global, err := GlobalConfig()
	if err != nil {
		return nil, err
	}
	return &Config{scopes: append([]*config.Config{local}, global.scopes...)}, nil
}

// Get returns section.key from the first scope that sets it.
func (c *Config) Get(section, key string) (string, bool) {
	if c == nil {
		return "", false
	}
	for _, cfg := range c.scopes {
		if cfg == nil || cfg.Raw == nil || !cfg.Raw.HasSection(section) {
			continue
		}
		if v := cfg.Raw.Section(section).Option(key); v != "" {
			return v, true
		}
	}
	return "", false
}

// UserName returns user.name.
func (c *Config) UserName() (string, bool) {
	return c.Get("user", "name")
}

// DefaultBranch returns init.defaultBranch, or "master" when unset.
func (c *Config) DefaultBranch() string {
	if b, ok := c.Get("init", "defaultBranch"); ok {
		return b
	}
	return DefaultBranchFallback
}
