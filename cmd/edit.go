package cmd

import (
	"context"
	"fmt"
	"os"

	"rgbctl/internal/app"
	"rgbctl/internal/cli"
	"rgbctl/pkg/logging"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

type editOptions struct {
	noTUI      bool
	debug      bool
	configPath string
	output     string
}

// isTerminal is replaced in tests.
var isTerminal = func(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func newEditCmd() *cobra.Command {
	opts := &editOptions{}
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit colour profiles in an interactive TUI or print them.",
		Long: `Loads the configured profiles and opens them in the profile editor.

1. Interactive TUI Mode (default):
   - One tab per profile; a hex field and R/G/B sliders edit the active tab.
   - A live swatch previews the selected lighting mode.
   - Press ? for key bindings.

2. Non-TUI / CLI Mode (--no-tui, or when stdout is not a terminal):
   - Prints the profiles with their device frames and exits.

Configuration:
  rgbctl reads ~/.config/rgbctl/config.yaml and then .rgbctl/config.yaml in
  the current directory. --config replaces both with a single file or
  directory; files ending in .toml are read as TOML.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.noTUI, "no-tui", false, "Print the profiles instead of starting the TUI")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Configuration file or directory to use instead of the layered lookup")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "table", "Output format in CLI mode (table, json, yaml)")
	return cmd
}

func runEdit(cmd *cobra.Command, opts *editOptions) error {
	format, err := cli.ParseOutputFormat(opts.output)
	if err != nil {
		return err
	}

	noTUI := opts.noTUI
	if !noTUI && !isTerminal(os.Stdout.Fd()) {
		noTUI = true
	}

	cfg := app.NewConfig(noTUI, opts.debug, opts.configPath)
	cfg.Output = format
	cfg.Out = cmd.OutOrStdout()

	application, err := app.NewApplication(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	if noTUI && !opts.noTUI {
		logging.Debug("CLI", "stdout is not a terminal, printing profiles instead of starting the TUI")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return application.Run(ctx)
}
