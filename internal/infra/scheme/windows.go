package scheme

import (
	"fmt"
	"os/exec"

	"github.com/worktree-io/worktree/internal/domain"
)

const registryKey = `HKCU\Software\Classes\` + domain.Scheme

func installWindows() error {
	exe, err := executablePath()
	if err != nil {
		return err
	}

	steps := [][]string{
		{"add", registryKey, "/d", "URL:Worktree Protocol", "/f"},
		{"add", registryKey, "/v", "URL Protocol", "/d", "", "/f"},
		{"add", registryKey + `\shell\open\command`, "/d", fmt.Sprintf(`"%s" open "%%1"`, exe), "/f"},
	}
	for _, args := range steps {
		cmd := exec.Command("reg", args...)
		if out, err := cmd.CombinedOutput(); err != nil {
			return fmt.Errorf("reg %s: %w: %s", args[0], err, string(out))
		}
	}
	return nil
}

func uninstallWindows() error {
	cmd := exec.Command("reg", "delete", registryKey, "/f")
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("reg delete: %w: %s", err, string(out))
	}
	return nil
}

func statusWindows() (domain.SchemeStatus, error) {
	if err := exec.Command("reg", "query", registryKey).Run(); err != nil {
		return domain.SchemeStatus{}, nil
	}
	return domain.SchemeStatus{Installed: true, Path: registryKey}, nil
}
