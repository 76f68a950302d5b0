package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/worktree-io/worktree/internal/app"
)

// newConfigCommand creates the config command with get/set/show/path
// subcommands.
func newConfigCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage worktree configuration",
	}

	cmd.AddCommand(
		newConfigGetCommand(c),
		newConfigSetCommand(c),
		newConfigShowCommand(c),
		newConfigPathCommand(c),
	)

	return cmd
}

func newConfigGetCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print a config value (e.g. editor.command, open.editor)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.Config.Load()
			if err != nil {
				return err
			}
			value, err := cfg.Value(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}

func newConfigSetCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a config value",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := c.Config.Load()
			if err != nil {
				return err
			}
			if err := cfg.SetValue(args[0], args[1]); err != nil {
				return err
			}
			return c.Config.Save(cfg)
		},
	}
}

func newConfigShowCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.Config.Load()
			if err != nil {
				return err
			}
			for _, key := range []string{"editor.command", "open.editor", "hooks.pre:open", "hooks.post:open"} {
				value, err := cfg.Value(key)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %q\n", key, value)
			}
			return nil
		},
	}
}

func newConfigPathCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), c.Config.Path())
			return nil
		},
	}
}
