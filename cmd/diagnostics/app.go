package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/beichenglangzi/Diagnostics/internal/config"
	"github.com/beichenglangzi/Diagnostics/internal/database"
	applog "github.com/beichenglangzi/Diagnostics/internal/log"
	"github.com/beichenglangzi/Diagnostics/internal/reporters"
)

// app bundles what every store-backed command needs.
type app struct {
	cfg    *config.Config
	store  *database.Store
	logger *slog.Logger
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// getGlobalString retrieves a persistent string flag from the command or its parent.
func getGlobalString(cmd *cobra.Command, name string) string {
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		value, err = cmd.Root().PersistentFlags().GetString(name)
		if err != nil {
			return ""
		}
	}
	return value
}

// loadConfig builds a Config from defaults, the config file and global flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath := getGlobalString(cmd, "config")

	cfg, err := config.Load(configPath)
	if err != nil {
		if configPath != "" {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	if dataDir := getGlobalString(cmd, "data-dir"); dataDir != "" {
		cfg.DataDir = dataDir
	}
	cfg.Verbose = getVerboseFlag(cmd)
	if cfg.AppVersion == "" {
		cfg.AppVersion = getVersion()
	}

	return cfg, nil
}

// openApp validates cfg, opens the store and creates the logger.
// The caller must call Close.
func openApp(cmd *cobra.Command, cfg *config.Config) (*app, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}

	store, err := database.Open(cfg.DataDir, database.DefaultOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	logger := applog.NewLogger(cmd.ErrOrStderr(), cfg.Verbose, store)
	logger.Debug("store opened", "path", store.Path())

	return &app{cfg: cfg, store: store, logger: logger}, nil
}

// withApp loads the configuration, opens the store and runs fn.
func withApp(cmd *cobra.Command, fn func(a *app) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	a, err := openApp(cmd, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(a)
}

// Close closes the store.
func (a *app) Close() error {
	return a.store.Close()
}

// dependencies returns the collaborators of the built-in reporters.
func (a *app) dependencies() reporters.Dependencies {
	return reporters.Dependencies{
		AppName:        a.cfg.AppName,
		AppVersion:     a.cfg.AppVersion,
		DataDir:        a.cfg.DataDir,
		LogSource:      a.store,
		SettingsSource: a.store,
		MaxLogEntries:  a.cfg.MaxLogEntries,
		Logger:         a.logger,
	}
}
