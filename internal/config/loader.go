package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/rgbctl"
	projectConfigDir = ".rgbctl"
	configFileName   = "config.yaml"
)

// LoadConfig loads the rgbctl configuration by layering default, user, and project settings.
func LoadConfig() (RgbctlConfig, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// User config is optional.
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else {
		config, err = overlayIfExists(config, userConfigPath)
		if err != nil {
			return RgbctlConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
		}
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else {
		config, err = overlayIfExists(config, projectConfigPath)
		if err != nil {
			return RgbctlConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
		}
	}

	if err := config.Validate(); err != nil {
		return RgbctlConfig{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

// LoadConfigFromPath loads a single file on top of the defaults. A directory
// is taken to contain config.yaml.
func LoadConfigFromPath(path string) (RgbctlConfig, error) {
	info, err := os.Stat(path)
	if err != nil {
		return RgbctlConfig{}, err
	}
	if info.IsDir() {
		path = filepath.Join(path, configFileName)
	}

	fileConfig, err := loadConfigFromFile(path)
	if err != nil {
		return RgbctlConfig{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	config := mergeConfigs(GetDefaultConfig(), fileConfig)
	if err := config.Validate(); err != nil {
		return RgbctlConfig{}, fmt.Errorf("invalid configuration in %s: %w", path, err)
	}
	return config, nil
}

func overlayIfExists(base RgbctlConfig, path string) (RgbctlConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return base, nil
	}
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return base, err
	}
	return mergeConfigs(base, overlay), nil
}

var getUserConfigPath = func() (string, error) {
	dir, err := GetUserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile decodes a YAML or, by extension, TOML file.
func loadConfigFromFile(filePath string) (RgbctlConfig, error) {
	var config RgbctlConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return RgbctlConfig{}, err
	}
	if strings.EqualFold(filepath.Ext(filePath), ".toml") {
		if err := toml.Unmarshal(data, &config); err != nil {
			return RgbctlConfig{}, fmt.Errorf("parse TOML: %w", err)
		}
		return config, nil
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return RgbctlConfig{}, fmt.Errorf("parse YAML: %w", err)
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config.
func mergeConfigs(base, overlay RgbctlConfig) RgbctlConfig {
	merged := base

	if overlay.GlobalSettings.Theme != "" {
		merged.GlobalSettings.Theme = overlay.GlobalSettings.Theme
	}
	if overlay.GlobalSettings.PreviewInterval != 0 {
		merged.GlobalSettings.PreviewInterval = overlay.GlobalSettings.PreviewInterval
	}
	merged.GlobalSettings.Debug = base.GlobalSettings.Debug || overlay.GlobalSettings.Debug

	if len(overlay.Device.Pins) > 0 {
		merged.Device.Pins = append([]int(nil), overlay.Device.Pins...)
	}

	if len(overlay.Profiles) > 0 {
		merged.Profiles = append([]ProfileDefinition(nil), overlay.Profiles...)
	}

	if len(overlay.Addressable.Channels) > 0 {
		merged.Addressable.Channels = append([]AddrChannelDefinition(nil), overlay.Addressable.Channels...)
	}
	return merged
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
