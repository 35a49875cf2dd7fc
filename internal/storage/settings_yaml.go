package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"canvassmith/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	BackendURL          string `yaml:"backend_url"`
	CheckOnStart        bool   `yaml:"check_on_start"`
	PollEnabled         bool   `yaml:"poll_enabled"`
	PollIntervalSeconds int    `yaml:"poll_interval_seconds"`
}

// LoadSettings reads user preferences from YAML.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return settings, err
	}

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes user preferences to YAML.
func SaveSettings(appName string, settings preferences.Settings) error {
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		BackendURL:          settings.BackendURL,
		CheckOnStart:        settings.CheckOnStart,
		PollEnabled:         settings.PollEnabled,
		PollIntervalSeconds: int(settings.PollInterval / time.Second),
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func resolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.BackendURL != "" && preferences.ValidateBackendURL(fileData.BackendURL) == nil {
		settings.BackendURL = fileData.BackendURL
	}
	if fileData.PollIntervalSeconds > 0 {
		settings.PollInterval = time.Duration(fileData.PollIntervalSeconds) * time.Second
	}

	settings.CheckOnStart = fileData.CheckOnStart
	settings.PollEnabled = fileData.PollEnabled
}
