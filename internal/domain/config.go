package domain

import (
	"fmt"
	"strconv"
)

// Config is the user configuration stored at
// ${XDG_CONFIG_HOME:-~/.config}/worktree/config.toml.
type Config struct {
	Editor EditorConfig `toml:"editor"`
	Open   OpenConfig   `toml:"open"`
	Hooks  HooksConfig  `toml:"hooks"`
}

// EditorConfig holds the [editor] section.
type EditorConfig struct {
	// Command launches the editor, e.g. "code ." or "nvim .". The `.`
	// placeholder is replaced with the workspace path when opening.
	Command string `toml:"command,omitempty"`
}

// OpenConfig holds the [open] section.
type OpenConfig struct {
	// Editor controls whether `worktree open` launches the editor by default.
	Editor bool `toml:"editor"`
}

// HooksConfig holds the [hooks] section. Scripts are rendered with the
// HookContext template variables before execution.
type HooksConfig struct {
	PreOpen  string `toml:"pre:open,omitempty"`
	PostOpen string `toml:"post:open,omitempty"`
}

// NewDefaultConfig returns the configuration used when no config file exists.
func NewDefaultConfig() *Config {
	return &Config{
		Open: OpenConfig{Editor: true},
	}
}

// Value returns a config value by dot-separated key path.
func (c *Config) Value(key string) (string, error) {
	switch key {
	case "editor.command":
		return c.Editor.Command, nil
	case "open.editor":
		return strconv.FormatBool(c.Open.Editor), nil
	case "hooks.pre:open":
		return c.Hooks.PreOpen, nil
	case "hooks.post:open":
		return c.Hooks.PostOpen, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownConfigKey, key)
	}
}

// SetValue sets a config value by dot-separated key path.
func (c *Config) SetValue(key, value string) error {
	switch key {
	case "editor.command":
		c.Editor.Command = value
	case "open.editor":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean value %q for %s", value, key)
		}
		c.Open.Editor = b
	case "hooks.pre:open":
		c.Hooks.PreOpen = value
	case "hooks.post:open":
		c.Hooks.PostOpen = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownConfigKey, key)
	}
	return nil
}
