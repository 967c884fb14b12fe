package app

import (
	"context"
	"fmt"
	"os"

	"rgbctl/internal/config"
	"rgbctl/internal/workspace"
	"rgbctl/pkg/logging"
)

// Application is the main application structure that bootstraps and runs rgbctl
type Application struct {
	config    *Config
	workspace workspace.Workspace
}

// NewApplication loads the configuration and builds the initial workspace.
func NewApplication(cfg *Config) (*Application, error) {
	appLogLevel := logging.LevelInfo
	if cfg.Debug {
		appLogLevel = logging.LevelDebug
	}

	// Logs go to stderr so CLI output on stdout stays machine readable.
	logging.InitForCLI(appLogLevel, os.Stderr)

	var rgbCfg config.RgbctlConfig
	var err error
	if cfg.ConfigPath != "" {
		rgbCfg, err = config.LoadConfigFromPath(cfg.ConfigPath)
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load configuration from path: %s", cfg.ConfigPath)
			return nil, fmt.Errorf("failed to load configuration from path %s: %w", cfg.ConfigPath, err)
		}
		logging.Debug("Bootstrap", "Loaded configuration from custom path: %s", cfg.ConfigPath)
	} else {
		rgbCfg, err = config.LoadConfig()
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load configuration")
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		logging.Debug("Bootstrap", "Loaded configuration using layered approach")
	}
	cfg.RgbctlConfig = &rgbCfg

	if rgbCfg.GlobalSettings.Debug && !cfg.Debug {
		cfg.Debug = true
		logging.InitForCLI(logging.LevelDebug, os.Stderr)
	}

	ws, err := BuildWorkspace(rgbCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build profiles: %w", err)
	}
	logging.Debug("Bootstrap", "Workspace has %d profiles", ws.Len())

	return &Application{
		config:    cfg,
		workspace: ws,
	}, nil
}

// Workspace returns the profiles the application starts with.
func (a *Application) Workspace() workspace.Workspace {
	return a.workspace
}

// Run executes the application in the appropriate mode
func (a *Application) Run(ctx context.Context) error {
	if a.config.NoTUI {
		return runCLIMode(ctx, a.config, a.workspace)
	}
	return runTUIMode(ctx, a.config, a.workspace)
}
