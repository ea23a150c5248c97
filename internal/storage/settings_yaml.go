package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"pomodorini/internal/core/model"
	"pomodorini/internal/ui/preferences"
)

const (
	settingsFileName = "settings.yaml"
	maxTickSeconds   = 60
)

type yamlSettings struct {
	GoalMinutes    int  `yaml:"goal_minutes"`
	AllowsOvertime bool `yaml:"allows_overtime"`
	TickSeconds    int  `yaml:"tick_seconds"`
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
		GoalMinutes:    settings.GoalMinutes,
		AllowsOvertime: settings.AllowsOvertime,
		TickSeconds:    int(settings.TickInterval / time.Second),
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

// SettingsPath returns where settings for appName are stored.
func SettingsPath(appName string) (string, error) {
	return resolveConfigPath(appName)
}

func resolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if (model.SessionConfig{GoalMinutes: fileData.GoalMinutes}).ValidGoal() {
		settings.GoalMinutes = fileData.GoalMinutes
	}
	if fileData.TickSeconds > 0 && fileData.TickSeconds <= maxTickSeconds {
		settings.TickInterval = time.Duration(fileData.TickSeconds) * time.Second
	}
	settings.AllowsOvertime = fileData.AllowsOvertime
}
