// Package commands implements the CLI commands for minishell.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/SalimYassine/Minishell/internal/app"
	"github.com/SalimYassine/Minishell/internal/build"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for minishell.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, opts app.RunOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:           "minishell",
		Short:         "A small interactive shell with pipelines and job control",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			command, _ := cmd.Flags().GetString("command")

			return c.app.Run(cmd.Context(), app.RunOptions{
				ConfigPath: configPath,
				Command:    command,
			})
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.Flags().String("config", "", "Path to the config file (default $HOME/.minishell.yaml)")
	rootCmd.Flags().StringP("command", "c", "", "Run a single command line and exit")

	rootCmd.AddCommand(c.newVersionCmd())
	c.rootCmd = rootCmd

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
