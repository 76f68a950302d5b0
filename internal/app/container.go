// Package app provides the dependency injection container for the application.
package app

import (
	"log/slog"
	"os"

	"github.com/worktree-io/worktree/internal/domain"
	"github.com/worktree-io/worktree/internal/infra/config"
	"github.com/worktree-io/worktree/internal/infra/git"
	"github.com/worktree-io/worktree/internal/infra/hooks"
	"github.com/worktree-io/worktree/internal/infra/opener"
	"github.com/worktree-io/worktree/internal/infra/scheme"
	"github.com/worktree-io/worktree/internal/usecase"
)

// Container holds the port implementations and provides factory methods for
// use cases.
type Container struct {
	Git    domain.RemoteGit
	Config domain.ConfigStore
	Opener domain.Opener
	Hooks  domain.HookRunner
	Scheme domain.SchemeRegistrar

	Logger *slog.Logger

	// Root is the directory holding all bare mirrors and worktrees.
	Root string
}

// New creates a Container with the production adapters.
func New() (*Container, error) {
	root, err := domain.DefaultRoot()
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	return &Container{
		Git:    git.NewClient(),
		Config: config.NewStore(),
		Opener: opener.NewClient(),
		Hooks:  hooks.NewRunner(logger),
		Scheme: scheme.NewRegistrar(),
		Logger: logger,
		Root:   root,
	}, nil
}

// OpenWorkspaceUseCase returns a new OpenWorkspace use case.
func (c *Container) OpenWorkspaceUseCase() *usecase.OpenWorkspace {
	return usecase.NewOpenWorkspace(c.Git, git.MirrorOriginURL, c.Logger, c.Root)
}

// SetupUseCase returns a new Setup use case.
func (c *Container) SetupUseCase() *usecase.Setup {
	return usecase.NewSetup(c.Config, c.Scheme, c.Logger)
}
