package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	defaultConfigDir      = ".gnewsdecode"
	defaultTimeoutSeconds = 30
	defaultOutputDir      = "articles"
)

// Settings represents the YAML configuration structure
type Settings struct {
	Proxy           string `yaml:"proxy"`
	TimeoutSeconds  int    `yaml:"timeout_seconds"`
	IntervalMS      int    `yaml:"interval_ms"`
	UserAgent       string `yaml:"user_agent"`
	OutputDirectory string `yaml:"output_directory"`
}

// getConfigPath returns the path to a config file in the .gnewsdecode directory
func getConfigPath(filename string) string {
	return filepath.Join(defaultConfigDir, filename)
}

// loadSettings reads the optional settings file. A missing file yields the
// defaults; a present but broken file is an error.
func loadSettings() (*Settings, error) {
	settings := &Settings{
		TimeoutSeconds:  defaultTimeoutSeconds,
		OutputDirectory: defaultOutputDir,
	}

	settingsPath := getConfigPath("settings.yaml")
	data, err := os.ReadFile(settingsPath)
	if os.IsNotExist(err) {
		return settings, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %s: %w", settingsPath, err)
	}

	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML: %w", err)
	}

	if settings.TimeoutSeconds <= 0 {
		settings.TimeoutSeconds = defaultTimeoutSeconds
	}
	if settings.OutputDirectory == "" {
		settings.OutputDirectory = defaultOutputDir
	}

	return settings, nil
}
