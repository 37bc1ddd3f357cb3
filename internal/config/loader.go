package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".diagnostics"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the structure of the .diagnostics configuration file.
// Unset fields leave the corresponding Config value untouched.
type File struct {
	AppName         string        `yaml:"appName,omitempty"`
	AppVersion      string        `yaml:"appVersion,omitempty"`
	DataDir         string        `yaml:"dataDir,omitempty"`
	OutputDir       string        `yaml:"outputDir,omitempty"`
	ReporterTimeout time.Duration `yaml:"reporterTimeout,omitempty"`
	Concurrency     int           `yaml:"concurrency,omitempty"`
	MaxLogEntries   int           `yaml:"maxLogEntries,omitempty"`
	MaxStoredLogs   int           `yaml:"maxStoredLogs,omitempty"`
	Reporters       []string      `yaml:"reporters,omitempty"`
}

// Apply copies every value set in f onto cfg.
func (f *File) Apply(cfg *Config) {
	if f == nil {
		return
	}
	if f.AppName != "" {
		cfg.AppName = f.AppName
	}
	if f.AppVersion != "" {
		cfg.AppVersion = f.AppVersion
	}
	if f.DataDir != "" {
		cfg.DataDir = f.DataDir
	}
	if f.OutputDir != "" {
		cfg.OutputDir = f.OutputDir
	}
	if f.ReporterTimeout != 0 {
		cfg.ReporterTimeout = f.ReporterTimeout
	}
	if f.Concurrency != 0 {
		cfg.Concurrency = f.Concurrency
	}
	if f.MaxLogEntries != 0 {
		cfg.MaxLogEntries = f.MaxLogEntries
	}
	if f.MaxStoredLogs != 0 {
		cfg.MaxStoredLogs = f.MaxStoredLogs
	}
	if len(f.Reporters) > 0 {
		cfg.Reporters = append([]string(nil), f.Reporters...)
	}
}

// LoadConfigFile loads a configuration file.
// If the file does not exist, it returns ErrConfigNotFound.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .diagnostics in the current directory
// 3. Look for .diagnostics in the user's home directory
// 4. Look for config.yaml in the XDG config directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	candidates := make([]string, 0, 3)
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, DefaultConfigFile))
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, DefaultConfigFile))
	}
	candidates = append(candidates, filepath.Join(XDGConfigDir(), "config.yaml"))

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// Load returns the default configuration overlaid with the configuration
// file found by FindConfigFile(configPath). A missing file is only an error
// when configPath was given explicitly.
func Load(configPath string) (*Config, error) {
	cfg := NewConfig()
	cfg.ConfigFilePath = configPath

	path := FindConfigFile(configPath)
	if path == "" {
		if configPath != "" {
			return nil, ErrConfigNotFound
		}
		return cfg, nil
	}

	file, err := LoadConfigFile(path)
	if err != nil {
		return nil, err
	}
	file.Apply(cfg)
	cfg.ConfigFilePath = path

	return cfg, nil
}
