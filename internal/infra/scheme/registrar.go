// Package scheme registers the worktree:// URL handler with the OS.
package scheme

import (
	"fmt"
	"os"
	"runtime"

	"github.com/worktree-io/worktree/internal/domain"
)

// Registrar implements domain.SchemeRegistrar with per-platform mechanisms:
// a desktop entry on Linux, an application bundle on macOS, registry keys on
// Windows.
type Registrar struct{}

// NewRegistrar creates a scheme registrar.
func NewRegistrar() *Registrar {
	return &Registrar{}
}

// Ensure Registrar implements domain.SchemeRegistrar.
var _ domain.SchemeRegistrar = (*Registrar)(nil)

// Install registers the URL scheme handler for the current user.
func (r *Registrar) Install() error {
	switch runtime.GOOS {
	case "linux":
		return installLinux()
	case "darwin":
		return installDarwin()
	case "windows":
		return installWindows()
	default:
		return fmt.Errorf("URL scheme registration is not supported on %s", runtime.GOOS)
	}
}

// Uninstall removes the URL scheme handler.
func (r *Registrar) Uninstall() error {
	switch runtime.GOOS {
	case "linux":
		return uninstallLinux()
	case "darwin":
		return uninstallDarwin()
	case "windows":
		return uninstallWindows()
	default:
		return fmt.Errorf("URL scheme registration is not supported on %s", runtime.GOOS)
	}
}

// Status reports whether the handler is installed.
func (r *Registrar) Status() (domain.SchemeStatus, error) {
	switch runtime.GOOS {
	case "linux":
		return statusLinux()
	case "darwin":
		return statusDarwin()
	case "windows":
		return statusWindows()
	default:
		return domain.SchemeStatus{}, nil
	}
}

// executablePath returns the running binary, the target of the handler.
func executablePath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("resolve executable path: %w", err)
	}
	return exe, nil
}
