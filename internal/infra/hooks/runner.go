// Package hooks renders and executes user-defined hook scripts.
package hooks

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/worktree-io/worktree/internal/domain"
	"github.com/worktree-io/worktree/internal/infra/opener"
)

// Runner implements domain.HookRunner by writing the rendered script to a
// temp file and executing it via sh.
type Runner struct {
	logger *slog.Logger
}

// NewRunner creates a hook runner.
func NewRunner(logger *slog.Logger) *Runner {
	return &Runner{logger: logger}
}

// Ensure Runner implements domain.HookRunner.
var _ domain.HookRunner = (*Runner)(nil)

// Run renders script with ctx and executes it. Stdout and stderr are
// forwarded to the caller's terminal. A non-zero exit or a failure to run the
// script logs a warning but does not return an error.
func (r *Runner) Run(script string, ctx domain.HookContext) error {
	rendered := ctx.Render(script)

	tmpPath := filepath.Join(os.TempDir(), fmt.Sprintf("worktree-hook-%d.sh", os.Getpid()))
	if err := os.WriteFile(tmpPath, []byte(rendered), 0o755); err != nil { //nolint:gosec // script must be executable
		return fmt.Errorf("write hook script: %w", err)
	}
	defer os.Remove(tmpPath)

	cmd := exec.Command("sh", tmpPath)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), "PATH="+opener.AugmentedPath())

	if err := cmd.Run(); err != nil {
		r.logger.Warn("hook failed", "error", err)
	}
	return nil
}
