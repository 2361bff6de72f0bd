package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/tagkit/internal/config"
	"github.com/vango-dev/tagkit/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.Fprint(os.Stderr, err)
		os.Exit(1)
	}
}

// cli holds state shared by all subcommands.
type cli struct {
	dir     string
	verbose bool
	noColor bool

	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:   "tagkit",
		Short: "Build HTML pages and stylesheets from Go",
		Long: `tagkit renders HTML documents and CSS stylesheets.

  • css     compile a YAML stylesheet to CSS
  • page    render a full HTML page
  • serve   serve pages and htmx callbacks
  • export  write rendered pages to a directory or S3 bucket

Settings are read from tagkit.json; flags override them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().StringVarP(&c.dir, "dir", "C", ".", "Directory containing tagkit.json")
	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Log debug records")
	rootCmd.PersistentFlags().BoolVar(&c.noColor, "no-color", false, "Disable colored error output")

	rootCmd.AddCommand(
		cssCmd(c),
		pageCmd(c),
		serveCmd(c),
		exportCmd(c),
		codesCmd(),
		versionCmd(),
	)

	return rootCmd
}

// setup loads the configuration and builds the logger.
func (c *cli) setup(stderr io.Writer) error {
	if c.noColor {
		errors.DisableColors()
	}

	level := slog.LevelInfo
	if c.verbose {
		level = slog.LevelDebug
	}
	c.logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := config.Load(c.dir)
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.logger.Debug("config loaded", "path", cfg.Path())
	return nil
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}
