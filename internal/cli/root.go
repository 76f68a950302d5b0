// Package cli provides the command-line interface for worktree.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/worktree-io/worktree/internal/app"
)

// NewRootCommand creates the root command for worktree.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "worktree",
		Short: "Open GitHub and Linear issues as git worktree workspaces",
		Long: `worktree resolves an issue reference (GitHub URL, worktree:// deep link,
or owner/repo#N shorthand) to an isolated git worktree backed by a shared
bare mirror, and opens it in your editor.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents cobra from printing errors (handled in main)
		SilenceErrors: true,
	}

	root.AddCommand(
		newOpenCommand(c),
		newConfigCommand(c),
		newSchemeCommand(c),
		newSetupCommand(c),
	)

	return root
}
