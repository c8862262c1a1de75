package main

import (
	"context"
	"fmt"

	"github.com/jonathan/cv-builder/internal/config"
	"github.com/jonathan/cv-builder/internal/logger"
	"github.com/jonathan/cv-builder/internal/observability"
	"github.com/jonathan/cv-builder/internal/storage"
	"github.com/jonathan/cv-builder/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile    string
	debugLog   bool
	jsonLog    bool
	backend    string
	storageDir string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default is cvbuilder.yaml in the current directory)")
	rootCmd.PersistentFlags().BoolVarP(&debugLog, "debug", "d", false, "Verbose/debug logging")
	rootCmd.PersistentFlags().BoolVarP(&jsonLog, "json", "j", false, "JSON format for logging")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "", "Storage backend: file, memory, sqlite, postgres or redis (overrides config)")
	rootCmd.PersistentFlags().StringVar(&storageDir, "storage-dir", "", "Directory of the file backend (overrides config)")
}

// app bundles everything a command needs to work on the persisted document.
type app struct {
	cfg     *config.Config
	log     *zap.Logger
	slot    storage.Slot
	store   *store.Store
	printer *observability.Printer
}

// loadConfig reads the config file and applies the persistent flag overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return nil, err
	}
	if debugLog {
		cfg.Log.Debug = true
	}
	if jsonLog {
		cfg.Log.JSON = true
	}
	if backend != "" {
		cfg.Storage.Backend = backend
	}
	if storageDir != "" {
		cfg.Storage.Dir = storageDir
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openApp loads configuration, opens the storage slot and rehydrates the store.
func openApp(ctx context.Context, cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	slot, err := storage.Open(ctx, cfg.StorageOptions())
	if err != nil {
		_ = log.Sync()
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}
	log.Debug("storage opened", zap.String("backend", cfg.Storage.Backend), zap.String("key", cfg.Storage.Key))

	return &app{
		cfg:     cfg,
		log:     log,
		slot:    slot,
		store:   store.New(ctx, slot, cfg.Storage.Key, log),
		printer: observability.NewPrinter(cmd.OutOrStdout()),
	}, nil
}

// Close releases the storage slot and flushes the logger.
func (a *app) Close() {
	if err := a.slot.Close(); err != nil {
		a.log.Warn("failed to close storage", zap.Error(err))
	}
	_ = a.log.Sync()
}

// dispatch applies action and reports a failed autosave as an error.
func (a *app) dispatch(ctx context.Context, action store.Action) error {
	if err := a.store.Dispatch(ctx, action); err != nil {
		return fmt.Errorf("change applied but not saved: %w", err)
	}
	return nil
}

// withApp wraps a command body that needs an open app.
func withApp(run func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		a, err := openApp(ctx, cmd)
		if err != nil {
			return err
		}
		defer a.Close()
		return run(ctx, cmd, a, args)
	}
}
