// Package opener launches editors and terminals on a workspace path.
package opener

import (
	"fmt"
	"strings"

	"github.com/worktree-io/worktree/internal/domain"
)

// Client implements domain.Opener by spawning detached processes.
type Client struct{}

// NewClient creates a new opener client.
func NewClient() *Client {
	return &Client{}
}

// Ensure Client implements domain.Opener.
var _ domain.Opener = (*Client)(nil)

// OpenEditor opens path with a command template, e.g. "code ." or "nvim .".
// A standalone `.` in the template is replaced by the actual path; otherwise
// the path is appended.
func (c *Client) OpenEditor(path, command string) error {
	if err := runShellCommand(expandTemplate(command, path)); err != nil {
		return fmt.Errorf("open editor with %q: %w", command, err)
	}
	return nil
}

// OpenWithHook opens path with command and runs initScript inside the
// resulting window when command is a recognized terminal emulator. Returns
// true when the script ran inside the window. For IDE commands the editor is
// opened and an auto-detected terminal is tried for the script; false means
// the caller should run the hook itself.
func (c *Client) OpenWithHook(path, command, initScript string) (bool, error) {
	ran, err := tryTerminalWithInit(path, command, initScript)
	if err != nil || ran {
		return ran, err
	}
	if err := c.OpenEditor(path, command); err != nil {
		return false, err
	}
	return openHookInAutoTerminal(path, initScript)
}

// expandTemplate substitutes the `.` placeholder in a command template with
// path, or appends path when the template has no placeholder.
func expandTemplate(command, path string) string {
	if strings.Contains(command, " . ") || strings.HasSuffix(command, " .") || command == "." {
		return strings.Replace(command, " .", " "+path, 1)
	}
	return command + " " + path
}
