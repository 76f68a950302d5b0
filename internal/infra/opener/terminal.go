package opener

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// tryTerminalWithInit writes a bootstrap script (initScript followed by an
// interactive shell) to a temp file and spawns command's terminal emulator
// running it. Returns true when the command was recognized as a terminal,
// false for IDE or unknown commands.
func tryTerminalWithInit(path, command, initScript string) (bool, error) {
	escaped := strings.ReplaceAll(path, "'", `'\''`)
	bootstrap := fmt.Sprintf("#!/bin/sh\ncd '%s'\n%s\nexec \"${SHELL:-sh}\"\n", escaped, initScript)

	tmpPath := filepath.Join(os.TempDir(), fmt.Sprintf("worktree-hook-open-%d.sh", os.Getpid()))
	if err := os.WriteFile(tmpPath, []byte(bootstrap), 0o755); err != nil { //nolint:gosec // script must be executable
		return false, fmt.Errorf("write bootstrap script: %w", err)
	}

	lower := strings.ToLower(command)
	switch {
	case strings.Contains(lower, "iterm"):
		script := fmt.Sprintf(`tell application "iTerm2" to create window with default profile command "sh %s"`, tmpPath)
		return true, spawnDetached("osascript", "-e", script)
	case strings.Contains(lower, "open -a terminal"):
		return true, spawnDetached("open", "-a", "Terminal", tmpPath)
	case strings.HasPrefix(lower, "alacritty"):
		return true, spawnDetached("alacritty", "--working-directory", path, "-e", "sh", tmpPath)
	case strings.HasPrefix(lower, "kitty"):
		return true, spawnDetached("kitty", "--directory", path, "sh", tmpPath)
	case strings.HasPrefix(lower, "wezterm"):
		return true, spawnDetached("wezterm", "start", "--cwd", path, "--", "sh", tmpPath)
	default:
		return false, nil
	}
}

// openHookInAutoTerminal probes for an installed terminal application and
// runs initScript inside it. Only effective on macOS; elsewhere there is no
// reliable application probe and the caller falls back to running the hook
// directly.
func openHookInAutoTerminal(path, initScript string) (bool, error) {
	if runtime.GOOS != "darwin" {
		return false, nil
	}
	candidates := []struct {
		app     string
		command string
	}{
		{"iTerm", "open -a iTerm ."},
		{"Warp", "open -a Warp ."},
		{"Ghostty", "open -a Ghostty ."},
		{"Terminal", "open -a Terminal ."},
	}
	for _, c := range candidates {
		if !macAppExists(c.app) {
			continue
		}
		ran, err := tryTerminalWithInit(path, c.command, initScript)
		if err != nil {
			return false, err
		}
		if ran {
			return true, nil
		}
	}
	return false, nil
}

// macAppExists reports whether a macOS application bundle is installed.
func macAppExists(name string) bool {
	if _, err := os.Stat("/Applications/" + name + ".app"); err == nil {
		return true
	}
	if _, err := os.Stat("/System/Applications/" + name + ".app"); err == nil {
		return true
	}
	if home, err := os.UserHomeDir(); err == nil {
		if _, err := os.Stat(filepath.Join(home, "Applications", name+".app")); err == nil {
			return true
		}
	}
	return false
}

func spawnDetached(program string, args ...string) error {
	//nolint:gosec // program names are fixed terminal emulators
	cmd := exec.Command(program, args...)
	cmd.Env = append(os.Environ(), "PATH="+AugmentedPath())
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("spawn %s: %w", program, err)
	}
	return nil
}
