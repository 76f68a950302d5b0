package usecase

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/worktree-io/worktree/internal/domain"
)

// Default hook scripts seeded on first setup so users can see the template
// variables in action.
const (
	defaultPreOpenHook  = "#!/usr/bin/env bash\necho \"pre:open: {{owner}}/{{repo}}#{{issue}} ({{branch}}) at {{worktree_path}}\"\n"
	defaultPostOpenHook = "#!/usr/bin/env bash\necho \"post:open: {{owner}}/{{repo}}#{{issue}} ({{branch}}) at {{worktree_path}}\"\n"
)

// Setup runs first-time configuration: record the editor choice, seed hook
// templates, save the config, and register the URL scheme handler.
type Setup struct {
	config domain.ConfigStore
	scheme domain.SchemeRegistrar
	logger *slog.Logger
}

// NewSetup creates the use case.
func NewSetup(config domain.ConfigStore, scheme domain.SchemeRegistrar, logger *slog.Logger) *Setup {
	return &Setup{config: config, scheme: scheme, logger: logger}
}

// SetupResult reports what Execute did.
type SetupResult struct {
	ConfigPath    string
	ConfigCreated bool
	SchemeErr     error
}

// Execute applies the setup. editorCommand is the chosen editor command
// template; empty leaves the current editor configuration untouched. Scheme
// registration failure is reported in the result, not as an error.
func (u *Setup) Execute(editorCommand string) (*SetupResult, error) {
	_, statErr := os.Stat(u.config.Path())
	existed := statErr == nil

	cfg, err := u.config.Load()
	if err != nil {
		return nil, err
	}

	if editorCommand != "" {
		cfg.Editor.Command = editorCommand
	}
	if cfg.Hooks.PreOpen == "" {
		cfg.Hooks.PreOpen = defaultPreOpenHook
	}
	if cfg.Hooks.PostOpen == "" {
		cfg.Hooks.PostOpen = defaultPostOpenHook
	}

	if err := u.config.Save(cfg); err != nil {
		return nil, fmt.Errorf("save config: %w", err)
	}

	result := &SetupResult{
		ConfigPath:    u.config.Path(),
		ConfigCreated: !existed,
	}
	if err := u.scheme.Install(); err != nil {
		u.logger.Warn("could not register URL scheme handler", "error", err)
		result.SchemeErr = err
	}
	return result, nil
}
