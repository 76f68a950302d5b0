package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/worktree-io/worktree/internal/app"
)

// newSchemeCommand creates the scheme command managing the worktree:// URL
// handler registration.
func newSchemeCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scheme",
		Short: "Manage the worktree:// URL scheme handler",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "install",
			Short: "Register the worktree:// handler for the current user",
			RunE: func(cmd *cobra.Command, _ []string) error {
				if err := c.Scheme.Install(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.ErrOrStderr(), "The worktree:// URL scheme is now registered.")
				return nil
			},
		},
		&cobra.Command{
			Use:   "uninstall",
			Short: "Remove the worktree:// handler",
			RunE: func(cmd *cobra.Command, _ []string) error {
				if err := c.Scheme.Uninstall(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.ErrOrStderr(), "The worktree:// URL scheme is unregistered.")
				return nil
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show whether the worktree:// handler is installed",
			RunE: func(cmd *cobra.Command, _ []string) error {
				status, err := c.Scheme.Status()
				if err != nil {
					return err
				}
				if status.Installed {
					fmt.Fprintf(cmd.OutOrStdout(), "Installed at %s\n", status.Path)
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), "Not installed")
				}
				return nil
			},
		},
	)

	return cmd
}
