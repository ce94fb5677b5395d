package config

import (
	"context"
	"os"
)

type (
	configKey  struct{}
	workDirKey struct{}
)

// WithConfig attaches cfg to the context.
func WithConfig(ctx context.Context, cfg Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// FromContext returns the attached config, or Default() if none.
func FromContext(ctx context.Context) Config {
	if cfg, ok := ctx.Value(configKey{}).(Config); ok {
		return cfg
	}
	return Default()
}

// WithWorkDir attaches the directory commands run relative to.
func WithWorkDir(ctx context.Context, dir string) context.Context {
	return context.WithValue(ctx, workDirKey{}, dir)
}

// WorkDirFromContext returns the attached working directory, falling back
// to the process working directory.
func WorkDirFromContext(ctx context.Context) string {
	if dir, ok := ctx.Value(workDirKey{}).(string); ok && dir != "" {
		return dir
	}
	dir, _ := os.Getwd()
	return dir
}
