// Package commands implements the CLI commands for xcbatch.
package commands

import (
	"context"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/xcbatch/internal/app"
	"go.trai.ch/xcbatch/internal/build"
	"go.trai.ch/xcbatch/internal/core/domain"
)

// CLI represents the command line interface for xcbatch.
type CLI struct {
	app       Application
	startedAt time.Time
	rootCmd   *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, opts app.RunOptions) error
	Clean(ctx context.Context, opts app.CleanOptions) error
	UseJSONLogs(enable bool)
}

// New creates a new CLI instance. startedAt is reported as the start of the run.
func New(a Application, startedAt time.Time) *CLI {
	c := &CLI{
		app:       a,
		startedAt: startedAt,
	}

	rootCmd := &cobra.Command{
		Use:   "xcbatch <workspace> [patterns]",
		Short: "Build every scheme of a workspace and capture the logs",
		Long: "xcbatch lists the schemes of a workspace, optionally keeps those starting with one of\n" +
			"the comma-separated patterns, and builds them one after the other. Each build's output\n" +
			"is written to <log-dir>/<scheme>.log and <log-dir>/<scheme>.err.log.",
		Args:          workspaceArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			jsonLogs, _ := cmd.Flags().GetBool("json")
			c.app.UseJSONLogs(jsonLogs)
		},
		RunE: c.runBuild,
	}

	rootCmd.SetVersionTemplate("{{.Name}} version {{.Version}}\n")
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", domain.ConfigFileName, "Path to the config file")
	rootCmd.PersistentFlags().String("log-dir", "", "Directory for build logs (overrides the config file)")
	rootCmd.PersistentFlags().Bool("json", false, "Write logs as JSON")
	rootCmd.Flags().StringP("mode", "m", "", "Build mode: simple or chained (overrides the config file)")
	rootCmd.Flags().StringP("output", "o", "auto", "Progress output: auto, interactive or linear")

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newVersionCmd())
	rootCmd.AddCommand(c.newCleanCmd())

	return c
}

// workspaceArgs requires the workspace and accepts an optional pattern list.
func workspaceArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return domain.ErrMissingWorkspace
	}
	return cobra.MaximumNArgs(2)(cmd, args)
}

func (c *CLI) runBuild(cmd *cobra.Command, args []string) error {
	opts := app.RunOptions{
		Workspace: args[0],
		StartedAt: c.startedAt,
	}
	if len(args) == 2 {
		opts.Patterns = domain.ParsePatterns(args[1])
	}

	opts.ConfigPath, _ = cmd.Flags().GetString("config")
	opts.LogDir, _ = cmd.Flags().GetString("log-dir")
	opts.Mode, _ = cmd.Flags().GetString("mode")
	opts.OutputMode, _ = cmd.Flags().GetString("output")

	return c.app.Run(cmd.Context(), opts)
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
