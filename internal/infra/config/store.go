// Package config persists the user configuration as TOML.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/worktree-io/worktree/internal/domain"
)

// Store reads and writes the config file at
// ${XDG_CONFIG_HOME:-~/.config}/worktree/config.toml.
type Store struct {
	path string
}

// NewStore creates a store using the default config location.
func NewStore() *Store {
	dir := domain.GlobalConfigDir()
	if dir == "" {
		return &Store{}
	}
	return &Store{path: filepath.Join(dir, domain.ConfigFileName)}
}

// NewStoreWithPath creates a store for a specific file. Useful for testing.
func NewStoreWithPath(path string) *Store {
	return &Store{path: path}
}

// Ensure Store implements domain.ConfigStore.
var _ domain.ConfigStore = (*Store)(nil)

// Path returns the config file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the config file. A missing file yields the default config.
func (s *Store) Load() (*domain.Config, error) {
	if s.path == "" {
		return nil, errors.New("config directory not resolvable")
	}
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.NewDefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", s.path, err)
	}

	cfg := domain.NewDefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", s.path, err)
	}
	return cfg, nil
}

// Save writes the config file, creating parent directories as needed.
func (s *Store) Save(cfg *domain.Config) error {
	if s.path == "" {
		return errors.New("config directory not resolvable")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("serialize config: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write config %s: %w", s.path, err)
	}
	return nil
}
