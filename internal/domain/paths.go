package domain

import (
	"fmt"
	"os"
	"path/filepath"
)

// RootEnv overrides the workspace root directory when set.
const RootEnv = "WORKTREE_ROOT"

// DefaultRoot returns the root directory under which all bare mirrors and
// worktrees live. WORKTREE_ROOT wins when set; otherwise ~/worktrees.
func DefaultRoot() (string, error) {
	if root := os.Getenv(RootEnv); root != "" {
		return root, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, "worktrees"), nil
}

// GlobalConfigDir returns the directory holding the user config file,
// ${XDG_CONFIG_HOME:-~/.config}/worktree. Empty when no home is resolvable.
func GlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "worktree")
}

// ConfigFileName is the name of the user config file.
const ConfigFileName = "config.toml"
