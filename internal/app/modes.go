package app

import (
	"context"
	"os"

	"rgbctl/internal/cli"
	"rgbctl/internal/color"
	"rgbctl/internal/tui/controller"
	"rgbctl/internal/tui/model"
	"rgbctl/internal/workspace"
	"rgbctl/pkg/logging"
)

// runCLIMode prints the configured profiles and exits.
func runCLIMode(ctx context.Context, config *Config, ws workspace.Workspace) error {
	logging.Debug("CLI", "Running in no-TUI mode.")

	rows, err := cli.ProfileRows(ws)
	if err != nil {
		logging.Error("CLI", err, "Failed to render profiles")
		return err
	}
	out := config.Out
	if out == nil {
		out = os.Stdout
	}
	return cli.NewPrinter(out, cli.PrinterOptions{Format: config.Output}).PrintProfiles(rows)
}

// runTUIMode executes the interactive terminal UI mode
func runTUIMode(ctx context.Context, config *Config, ws workspace.Workspace) error {
	logging.Debug("CLI", "Starting TUI mode...")

	settings := config.RgbctlConfig.GlobalSettings
	isDark := color.DetectDarkBackground(settings.Theme)
	color.Initialize(isDark)

	// Switch logging to channel-based system for TUI integration
	logLevel := logging.LevelInfo
	if config.Debug {
		logLevel = logging.LevelDebug
	}
	logChan := logging.InitForTUI(logLevel)
	defer logging.CloseTUIChannel()

	p := controller.NewProgram(ctx, model.TUIConfig{
		DebugMode:       config.Debug,
		DarkMode:        isDark,
		PreviewInterval: settings.PreviewInterval,
		Workspace:       ws,
	}, logChan)

	final, err := p.Run()
	if err != nil {
		logging.Error("TUI-Lifecycle", err, "Error running TUI program")
		return err
	}
	if app, ok := final.(controller.AppModel); ok {
		logging.Debug("TUI-Lifecycle", "TUI exited with %d profiles.", app.Model().Workspace.Len())
	}
	return nil
}
