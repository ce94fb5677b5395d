package main

import (
	"context"
	"errors"

	"go.uber.org/dig"

	"github.com/futsuuu/grm/internal/app"
	"github.com/futsuuu/grm/internal/config"
	"github.com/futsuuu/grm/internal/git"
)

type appParams struct {
	dig.In

	Config  config.Config
	Git     *git.Config
	Current *git.Repo `optional:"true"`
}

func newApp(p appParams) *app.App {
	return app.New(p.Config, p.Git, p.Current)
}

// registerProviders registers the invocation context with the container.
// With discover set, the repository containing workDir (if any) becomes the
// current repository and its local git config takes precedence.
func registerProviders(container *dig.Container, cfg config.Config, workDir string, discover bool) error {
	if err := container.Provide(func() config.Config { return cfg }); err != nil {
		return err
	}

	var current *git.Repo
	if discover {
		repo, err := git.Discover(workDir)
		switch {
		case err == nil:
			current = repo
		case !errors.Is(err, git.ErrNoCurrentRepository):
			return err
		}
	}

	if current != nil {
		if err := container.Provide(func() *git.Repo { return current }); err != nil {
			return err
		}
		if err := container.Provide((*git.Repo).Config); err != nil {
			return err
		}
	} else if err := container.Provide(git.GlobalConfig); err != nil {
		return err
	}

	return container.Provide(newApp)
}

// injectApp builds the App for the command running with ctx.
func injectApp(ctx context.Context, discover bool) (*app.App, error) {
	container := dig.New()

	if err := registerProviders(container, config.FromContext(ctx), config.WorkDirFromContext(ctx), discover); err != nil {
		return nil, err
	}

	var a *app.App
	if err := container.Invoke(func(x *app.App) {
		a = x
	}); err != nil {
		return nil, dig.RootCause(err)
	}
	return a, nil
}
