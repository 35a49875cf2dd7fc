package server

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds backend server configuration.
type Config struct {
	Host          string
	Port          int
	ReadTimeout   time.Duration
	WriteTimeout  time.Duration
	IdleTimeout   time.Duration
	EnableCORS    bool
	ServeFrontend bool
	StaticDir     string
	LogLevel      string
}

type yamlConfig struct {
	Host                string `yaml:"host"`
	Port                int    `yaml:"port"`
	ReadTimeoutSeconds  int    `yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds int    `yaml:"write_timeout_seconds"`
	IdleTimeoutSeconds  int    `yaml:"idle_timeout_seconds"`
	EnableCORS          *bool  `yaml:"enable_cors"`
	ServeFrontend       bool   `yaml:"serve_frontend"`
	StaticDir           string `yaml:"static_dir"`
	LogLevel            string `yaml:"log_level"`
}

// DefaultConfig returns the development defaults.
func DefaultConfig() Config {
	return Config{
		Host:          "0.0.0.0",
		Port:          8000,
		ReadTimeout:   10 * time.Second,
		WriteTimeout:  10 * time.Second,
		IdleTimeout:   60 * time.Second,
		EnableCORS:    true,
		ServeFrontend: false,
		StaticDir:     "static",
		LogLevel:      "info",
	}
}

// LoadConfig reads server configuration from YAML, starting from defaults.
// A missing file yields the defaults. PORT and SERVE_FRONTEND environment
// variables override the file afterwards.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	if path != "" {
		rawData, err := os.ReadFile(path)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return config, fmt.Errorf("read config file: %w", err)
			}
		} else {
			var fileData yamlConfig
			if err := yaml.Unmarshal(rawData, &fileData); err != nil {
				return config, fmt.Errorf("parse config yaml: %w", err)
			}
			applyYamlConfig(&config, fileData)
		}
	}

	applyEnvOverrides(&config)
	return config, nil
}

func applyYamlConfig(config *Config, fileData yamlConfig) {
	if fileData.Host != "" {
		config.Host = fileData.Host
	}
	if fileData.Port > 0 {
		config.Port = fileData.Port
	}
	if fileData.ReadTimeoutSeconds > 0 {
		config.ReadTimeout = time.Duration(fileData.ReadTimeoutSeconds) * time.Second
	}
	if fileData.WriteTimeoutSeconds > 0 {
		config.WriteTimeout = time.Duration(fileData.WriteTimeoutSeconds) * time.Second
	}
	if fileData.IdleTimeoutSeconds > 0 {
		config.IdleTimeout = time.Duration(fileData.IdleTimeoutSeconds) * time.Second
	}
	if fileData.EnableCORS != nil {
		config.EnableCORS = *fileData.EnableCORS
	}
	config.ServeFrontend = fileData.ServeFrontend
	if fileData.StaticDir != "" {
		config.StaticDir = fileData.StaticDir
	}
	if fileData.LogLevel != "" {
		config.LogLevel = fileData.LogLevel
	}
}

func applyEnvOverrides(config *Config) {
	if raw := os.Getenv("PORT"); raw != "" {
		if port, err := strconv.Atoi(raw); err == nil && port > 0 {
			config.Port = port
		}
	}
	switch os.Getenv("SERVE_FRONTEND") {
	case "1", "true", "yes":
		config.ServeFrontend = true
	}
}
