// Package commands implements the CLI for ouroinstall.
package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/ouroinstall/internal/app"
	"go.trai.ch/ouroinstall/internal/build"
	"go.trai.ch/ouroinstall/internal/core/domain"
)

// CLI represents the command line interface for ouroinstall.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, cmd domain.Command, opts app.Options) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:   fmt.Sprintf("ouroinstall [%s]", strings.Join(domain.CommandNames(), "|")),
		Short: "Build and install OUROBOROS",
		Long: `Build and install OUROBOROS.

Commands:
  install     Build and install (default)
  build       Build only
  clean       Remove the build directory
  uninstall   Remove installed files
  test        Build if needed and run the test suite`,
		Example: `  ouroinstall                      # build and install to /usr/local
  ouroinstall --debug              # debug build
  ouroinstall --debug-log          # debug build with logging
  ouroinstall --prefix /usr        # install to /usr
  ouroinstall build                # build only
  ouroinstall clean                # clean build`,
		Args:          cobra.MaximumNArgs(1),
		ValidArgs:     domain.CommandNames(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE:          c.runE,
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
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.Flags().Bool("debug", false, "Build with debug symbols")
	rootCmd.Flags().Bool("debug-log", false, "Build with debug symbols and logging enabled")
	rootCmd.Flags().String("prefix", "", "Installation prefix (default: /usr/local)")
	rootCmd.Flags().String("source", "", "Source tree to build (default: current directory)")

	c.rootCmd = rootCmd
	return c
}

func (c *CLI) runE(cmd *cobra.Command, args []string) error {
	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	command, err := domain.ParseCommand(name)
	if err != nil {
		return err
	}

	debug, _ := cmd.Flags().GetBool("debug")
	debugLog, _ := cmd.Flags().GetBool("debug-log")
	prefix, _ := cmd.Flags().GetString("prefix")
	source, _ := cmd.Flags().GetString("source")

	return c.app.Run(cmd.Context(), command, app.Options{
		Debug:    debug,
		DebugLog: debugLog,
		Prefix:   prefix,
		Source:   source,
	})
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
