// Package main is the entry point for plotview, a terminal previewer for
// Plotly chart documents.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dshills/plotview/internal/app"
	"github.com/dshills/plotview/internal/chartspec"
	"github.com/dshills/plotview/internal/config"
	"github.com/dshills/plotview/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// rootFlags holds the flags shared by every command.
type rootFlags struct {
	ConfigPath string
	LogFile    string
	LogLevel   string
	Width      int
	Height     int
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "plotview [file]",
		Short: "Preview Plotly chart documents in the terminal",
		Long: `plotview edits a Plotly chart document on the left and previews the
chart on the right. Typing never re-renders; press Ctrl+R or click Plot.`,
		Example: `  # Start with the bundled sample chart
  plotview

  # Open a document
  plotview chart.json

  # Log render activity for debugging
  plotview --log-level debug --log-file /tmp/plotview.log chart.json`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := chartspec.Sample()
			if len(args) == 1 {
				data, err := os.ReadFile(args[0])
				if err != nil {
					return err
				}
				doc = string(data)
			}
			return runTUI(cmd, flags, doc)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.ConfigPath, "config", "c", "", "Path to configuration file")
	pf.StringVar(&flags.LogFile, "log-file", defaultLogFile(), "Log file (empty discards logs)")
	pf.StringVar(&flags.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.Flags().IntVar(&flags.Width, "width", 0, "Initial chart width in pixels")
	cmd.Flags().IntVar(&flags.Height, "height", 0, "Initial chart height in pixels")

	cmd.AddCommand(
		newCheckCmd(&flags),
		newPrettifyCmd(),
		newExportCmd(&flags),
		newConfigCmd(&flags),
	)
	return cmd
}

// loadOptions turns the flags into config load options. Only flags the
// user set become overrides.
func loadOptions(cmd *cobra.Command, flags rootFlags) config.Options {
	opts := config.Options{Path: flags.ConfigPath, Overrides: map[string]any{}}
	if f := cmd.Flags().Lookup("width"); f != nil && f.Changed {
		opts.Overrides["preview.default_width"] = flags.Width
	}
	if f := cmd.Flags().Lookup("height"); f != nil && f.Changed {
		opts.Overrides["preview.default_height"] = flags.Height
	}
	return opts
}

func runTUI(cmd *cobra.Command, flags rootFlags, doc string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("plotview needs a terminal; use the check, prettify or export commands in scripts")
	}

	logger, closeLog, err := openLogger(flags.LogFile, flags.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	opts := loadOptions(cmd, flags)
	cfg, err := config.Load(opts)
	if err != nil {
		return err
	}

	application := app.New(app.Options{
		Document: doc,
		Config:   cfg,
		Reload:   &opts,
		Logger:   logger,
	})
	defer application.Shutdown()

	terminal, err := backend.NewTerminal()
	if err != nil {
		return fmt.Errorf("failed to create terminal: %w", err)
	}
	if err := application.SetBackend(terminal); err != nil {
		return err
	}

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)
	go func() {
		<-signals
		application.Shutdown()
	}()

	if err := application.Run(); err != nil && !app.IsQuit(err) {
		logger.Error("run failed", "error", err)
		return err
	}
	return nil
}
