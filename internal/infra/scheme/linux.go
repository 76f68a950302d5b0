package scheme

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/worktree-io/worktree/internal/domain"
)

const desktopFileName = "worktree-runner.desktop"

// desktopFilePath returns ~/.local/share/applications/worktree-runner.desktop,
// honoring XDG_DATA_HOME.
func desktopFilePath() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "applications", desktopFileName), nil
}

func installLinux() error {
	exe, err := executablePath()
	if err != nil {
		return err
	}
	path, err := desktopFilePath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create applications directory: %w", err)
	}

	entry := fmt.Sprintf(`[Desktop Entry]
Name=Worktree Runner
Exec=%s open %%u
Type=Application
NoDisplay=true
MimeType=x-scheme-handler/%s;
`, exe, domain.Scheme)
	if err := os.WriteFile(path, []byte(entry), 0o644); err != nil { //nolint:gosec // desktop entries are world-readable
		return fmt.Errorf("write desktop entry %s: %w", path, err)
	}

	cmd := exec.Command("xdg-mime", "default", desktopFileName, "x-scheme-handler/"+domain.Scheme)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("xdg-mime default: %w: %s", err, string(out))
	}
	return nil
}

func uninstallLinux() error {
	path, err := desktopFilePath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove desktop entry %s: %w", path, err)
	}
	return nil
}

func statusLinux() (domain.SchemeStatus, error) {
	path, err := desktopFilePath()
	if err != nil {
		return domain.SchemeStatus{}, err
	}
	if _, err := os.Stat(path); err != nil {
		return domain.SchemeStatus{}, nil
	}
	return domain.SchemeStatus{Installed: true, Path: path}, nil
}
