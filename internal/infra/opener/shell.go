package opener

import (
	"os"
	"os/exec"
	"strings"

	"github.com/worktree-io/worktree/internal/domain"
)

// AugmentedPath returns PATH with the common tool directories GUI-launched
// processes tend to miss (Homebrew, /usr/local) prepended.
func AugmentedPath() string {
	extras := []string{"/usr/local/bin", "/opt/homebrew/bin", "/opt/homebrew/sbin"}
	parts := make([]string, 0, len(extras)+8)
	parts = append(parts, extras...)
	for _, p := range strings.Split(os.Getenv("PATH"), string(os.PathListSeparator)) {
		if p == "" {
			continue
		}
		seen := false
		for _, q := range parts {
			if p == q {
				seen = true
				break
			}
		}
		if !seen {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, string(os.PathListSeparator))
}

// runShellCommand splits cmd into tokens and spawns it detached, with stdio
// discarded and the augmented PATH.
func runShellCommand(cmd string) error {
	parts := splitCommand(cmd)
	if len(parts) == 0 {
		return domain.ErrEmptyCommand
	}

	//nolint:gosec // the command comes from user configuration
	c := exec.Command(parts[0], parts[1:]...)
	c.Env = append(os.Environ(), "PATH="+AugmentedPath())
	return c.Start()
}

// splitCommand splits on whitespace, honoring double-quoted tokens.
func splitCommand(s string) []string {
	var parts []string
	var current strings.Builder
	inQuotes := false

	for _, r := range s {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case (r == ' ' || r == '\t') && !inQuotes:
			if current.Len() > 0 {
				parts = append(parts, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		parts = append(parts, current.String())
	}
	return parts
}
