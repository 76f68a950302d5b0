package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/worktree-io/worktree/internal/app"
	"github.com/worktree-io/worktree/internal/domain"
	"github.com/worktree-io/worktree/internal/infra/opener"
)

// newOpenCommand creates the open command: resolve a reference, materialize
// the workspace, run hooks, and launch the editor.
func newOpenCommand(c *app.Container) *cobra.Command {
	var forceEditor bool
	var printPath bool

	cmd := &cobra.Command{
		Use:   "open <ref>",
		Short: "Resolve an issue reference, create its worktree, and open it",
		Long: `Resolve an issue reference to a workspace and open it.

Accepted reference formats:
  https://github.com/owner/repo/issues/42
  worktree://open?owner=owner&repo=repo&issue=42
  worktree://open?owner=owner&repo=repo&linear_id=<uuid>
  owner/repo#42
  owner/repo@<linear-uuid>`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOpen(c, cmd, args[0], forceEditor, printPath)
		},
	}

	cmd.Flags().BoolVar(&forceEditor, "editor", false, "Open in the configured editor even when open.editor is false")
	cmd.Flags().BoolVar(&printPath, "print-path", false, "Print the workspace path and exit without opening anything")

	return cmd
}

func runOpen(c *app.Container, cmd *cobra.Command, ref string, forceEditor, printPath bool) error {
	issue, deepLinkOpts, err := domain.ParseWithOptions(ref)
	if err != nil {
		return err
	}

	workspace, err := c.OpenWorkspaceUseCase().Execute(issue)
	if err != nil {
		return err
	}

	if workspace.Created {
		fmt.Fprintf(cmd.ErrOrStderr(), "Created workspace at %s\n", workspace.Path)
	} else {
		fmt.Fprintf(cmd.ErrOrStderr(), "Workspace already exists at %s\n", workspace.Path)
	}

	if printPath {
		fmt.Fprintln(cmd.OutOrStdout(), workspace.Path)
		return nil
	}

	cfg, err := c.Config.Load()
	if err != nil {
		return err
	}
	hookCtx := domain.NewHookContext(issue, workspace.Path)

	if cfg.Hooks.PreOpen != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), "Running pre:open hook...")
		if err := c.Hooks.Run(cfg.Hooks.PreOpen, hookCtx); err != nil {
			return err
		}
	}

	editorCmd := resolveOpenEditor(cfg, deepLinkOpts, forceEditor, cmd)

	switch {
	case editorCmd != "" && cfg.Hooks.PostOpen != "":
		rendered := hookCtx.Render(cfg.Hooks.PostOpen)
		ran, err := c.Opener.OpenWithHook(workspace.Path, editorCmd, rendered)
		if err != nil {
			return err
		}
		if !ran {
			fmt.Fprintln(cmd.ErrOrStderr(), "Running post:open hook...")
			if err := c.Hooks.Run(cfg.Hooks.PostOpen, hookCtx); err != nil {
				return err
			}
		}
	case editorCmd != "":
		if err := c.Opener.OpenEditor(workspace.Path, editorCmd); err != nil {
			return err
		}
	case cfg.Hooks.PostOpen != "":
		fmt.Fprintln(cmd.ErrOrStderr(), "Running post:open hook...")
		if err := c.Hooks.Run(cfg.Hooks.PostOpen, hookCtx); err != nil {
			return err
		}
	}

	return nil
}

// resolveOpenEditor picks the editor command: a deep-link override wins, then
// the configured editor when forced or enabled by open.editor.
func resolveOpenEditor(cfg *domain.Config, opts domain.DeepLinkOptions, forceEditor bool, cmd *cobra.Command) string {
	if opts.Editor != "" {
		return opener.ResolveEditorCommand(opts.Editor)
	}
	if forceEditor || cfg.Open.Editor {
		if cfg.Editor.Command == "" {
			fmt.Fprintln(cmd.ErrOrStderr(), "No editor configured. Run: worktree setup")
		}
		return cfg.Editor.Command
	}
	return ""
}
