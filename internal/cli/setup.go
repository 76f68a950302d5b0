package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/worktree-io/worktree/internal/app"
	"github.com/worktree-io/worktree/internal/infra/opener"
	setuptui "github.com/worktree-io/worktree/internal/tui/setup"
)

// newSetupCommand creates the setup command: choose an editor, seed hook
// templates, write the config, and register the URL scheme.
func newSetupCommand(c *app.Container) *cobra.Command {
	var noInput bool

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Run first-time setup: detect editor, write config, register URL scheme",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSetup(c, cmd, noInput)
		},
	}

	cmd.Flags().BoolVar(&noInput, "no-input", false, "Skip the interactive chooser and use the first detected editor")

	return cmd
}

func runSetup(c *app.Container, cmd *cobra.Command, noInput bool) error {
	detected := opener.DetectEditors()

	var editorCommand string
	if noInput {
		if len(detected) > 0 {
			editorCommand = detected[0].Command
		}
	} else {
		model := setuptui.New(detected)
		final, err := tea.NewProgram(model).Run()
		if err != nil {
			return fmt.Errorf("run editor chooser: %w", err)
		}
		editorCommand = final.(setuptui.Model).Command()
	}

	result, err := c.SetupUseCase().Execute(editorCommand)
	if err != nil {
		return err
	}

	if result.ConfigCreated {
		fmt.Fprintf(cmd.ErrOrStderr(), "Created config at %s\n", result.ConfigPath)
	} else {
		fmt.Fprintf(cmd.ErrOrStderr(), "Updated config at %s\n", result.ConfigPath)
	}
	if result.SchemeErr != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not register URL scheme handler: %v\n", result.SchemeErr)
	}
	fmt.Fprintln(cmd.ErrOrStderr(), "\nSetup complete! Run: worktree open <github-issue-url>")
	return nil
}
