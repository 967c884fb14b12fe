package app

import (
	"io"
	"os"

	"rgbctl/internal/cli"
	"rgbctl/internal/config"
)

// Config holds the application configuration
type Config struct {
	// UI mode
	NoTUI bool

	// Debug settings
	Debug bool

	// ConfigPath replaces the layered config lookup when set.
	ConfigPath string

	// Output format and destination of CLI mode.
	Output cli.OutputFormat
	Out    io.Writer

	// Loaded file configuration
	RgbctlConfig *config.RgbctlConfig
}

// NewConfig creates a new application configuration
func NewConfig(noTUI, debug bool, configPath string) *Config {
	return &Config{
		NoTUI:      noTUI,
		Debug:      debug,
		ConfigPath: configPath,
		Output:     cli.OutputFormatTable,
		Out:        os.Stdout,
	}
}
