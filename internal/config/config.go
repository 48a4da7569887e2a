// Package config provides functionality for loading, saving, and managing
// application configuration settings.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the configuration settings for the application.
type Config struct {
	DataDir       string `json:"data_dir" yaml:"data_dir"`
	UserFile      string `json:"user_file" yaml:"user_file"`
	TaskFile      string `json:"task_file" yaml:"task_file"`
	StorageType   string `json:"storage_type" yaml:"storage_type"`
	DatabaseFile  string `json:"database_file" yaml:"database_file"`
	DatabaseDSN   string `json:"database_dsn" yaml:"database_dsn"`
	ReportDir     string `json:"report_dir" yaml:"report_dir"`
	TaskReport    string `json:"task_report" yaml:"task_report"`
	UserReport    string `json:"user_report" yaml:"user_report"`
	ReportPDF     bool   `json:"report_pdf" yaml:"report_pdf"`
	LogFolder     string `json:"log_folder" yaml:"log_folder"`
	CommandLog    string `json:"command_log" yaml:"command_log"`
	ErrorLog      string `json:"error_log" yaml:"error_log"`
	InfoLog       string `json:"info_log" yaml:"info_log"`
	LogLevel      string `json:"log_level" yaml:"log_level"`
	AdminUser     string `json:"admin_user" yaml:"admin_user"`
	AdminPassword string `json:"admin_password" yaml:"admin_password"`
	HashPasswords bool   `json:"hash_passwords" yaml:"hash_passwords"`
	HistoryFile   string `json:"history_file" yaml:"history_file"`
	UseColor      bool   `json:"use_color" yaml:"use_color"`
}

// DefaultConfigPath is where the application looks for its configuration.
const DefaultConfigPath = "./data/config.json"

var currentConfig *Config

// Default returns the configuration written on first start.
func Default() *Config {
	return &Config{
		DataDir:       "./data",
		UserFile:      "user.txt",
		TaskFile:      "tasks.txt",
		StorageType:   "text",
		DatabaseFile:  "taskmanager.db",
		ReportDir:     "./data",
		TaskReport:    "task_overview.txt",
		UserReport:    "user_overview.txt",
		LogFolder:     "./logs",
		CommandLog:    "commands.log",
		ErrorLog:      "errors.log",
		InfoLog:       "info.log",
		LogLevel:      "info",
		AdminUser:     "admin",
		AdminPassword: "password",
		HistoryFile:   "./data/history.txt",
		UseColor:      true,
	}
}

// ConfigLoad loads the configuration from path, JSON or YAML by extension.
// If the file doesn't exist, it creates a default configuration.
func ConfigLoad(path string) error {
	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		defaultConfig := Default()
		if err := ConfigSave(defaultConfig, path); err != nil {
			return fmt.Errorf("failed to create default config: %w", err)
		}
		currentConfig = defaultConfig
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	// Start from defaults so a partial file only overrides what it names
	cfg := Default()
	if isYAML(path) {
		err = yaml.Unmarshal(file, cfg)
	} else {
		err = json.Unmarshal(file, cfg)
	}
	if err != nil {
		return fmt.Errorf("error parsing config file: %w", err)
	}

	if cfg.StorageType == "" {
		cfg.StorageType = "text"
	}

	currentConfig = cfg
	return nil
}

// ConfigSave saves the provided configuration to path.
func ConfigSave(cfg *Config, path string) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(cfg)
	} else {
		data, err = json.MarshalIndent(cfg, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// ConfigGet returns the current configuration.
func ConfigGet() *Config {
	return currentConfig
}

// UserPath returns the full path of the user store file.
func (c *Config) UserPath() string {
	return filepath.Join(c.DataDir, c.UserFile)
}

// TaskPath returns the full path of the task store file.
func (c *Config) TaskPath() string {
	return filepath.Join(c.DataDir, c.TaskFile)
}

// DatabasePath returns the full path of the SQLite database file.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, c.DatabaseFile)
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
