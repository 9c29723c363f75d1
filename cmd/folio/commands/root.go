// Package commands implements the CLI commands for folio.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"go.trai.ch/folio/internal/build"
	"go.trai.ch/folio/internal/core/domain"
)

// CLI represents the command line interface for folio.
type CLI struct {
	app     Application
	logs    LogSettings
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Build(ctx context.Context, opts domain.BuildOptions) (*domain.BuildStats, error)
	Watch(ctx context.Context, opts domain.BuildOptions, onBuild func(*domain.BuildStats, error)) error
	CacheInfo(ctx context.Context) (*domain.CacheInfo, error)
	CacheClear(ctx context.Context) error
	CacheClean(ctx context.Context, days int) (int, error)
	Init(ctx context.Context, dir, title string) ([]string, error)
	NewContent(ctx context.Context, kind domain.ContentKind, title string) (string, error)
	Doctor(ctx context.Context) (*domain.Diagnosis, error)
	Convert(ctx context.Context, input string, formats []string, outDir string) ([]domain.ConvertResult, error)
}

// LogSettings is the part of the logger the global flags control.
type LogSettings interface {
	SetJSON(enable bool)
	SetLevel(level slog.Level)
}

// New creates a new CLI instance with the given app. logs may be nil.
func New(a Application, logs LogSettings) *CLI {
	rootCmd := &cobra.Command{
		Use:           "folio",
		Short:         "An incremental static site builder",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	// Persistent flags go first so the version flag does not claim -v.
	rootCmd.PersistentFlags().Bool("json-logs", false, "Emit logs as JSON")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug output, including build phases")

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		logs:    logs,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if c.logs == nil {
			return
		}
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")
		verbose, _ := cmd.Flags().GetBool("verbose")
		c.logs.SetJSON(jsonLogs)
		if verbose {
			c.logs.SetLevel(slog.LevelDebug)
		}
	}

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newCacheCmd())
	rootCmd.AddCommand(c.newInitCmd())
	rootCmd.AddCommand(c.newNewCmd())
	rootCmd.AddCommand(c.newDoctorCmd())
	rootCmd.AddCommand(c.newConvertCmd())
	rootCmd.AddCommand(c.newVersionCmd())

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

// SetInput sets the stream confirmation prompts read from. Used for testing.
func (c *CLI) SetInput(in io.Reader) {
	c.rootCmd.SetIn(in)
}
