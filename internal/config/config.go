// Package config provides configuration loading and validation for the CLI.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/cv-builder/internal/server"
	"github.com/jonathan/cv-builder/internal/storage"
	"github.com/jonathan/cv-builder/internal/types"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. CVBUILDER_STORAGE_BACKEND.
const EnvPrefix = "CVBUILDER"

// DefaultConfigName is the file looked up in the working directory when no path is given.
const DefaultConfigName = "cvbuilder"

// Config represents the CLI configuration. Every field has a default, so an absent config
// file is not an error.
type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Export  ExportConfig  `mapstructure:"export"`
	Serve   ServeConfig   `mapstructure:"serve"`
	Log     LogConfig     `mapstructure:"log"`
}

// StorageConfig selects the snapshot slot.
type StorageConfig struct {
	Backend     string `mapstructure:"backend" validate:"oneof=file memory sqlite postgres redis"`
	Dir         string `mapstructure:"dir" validate:"required_if=Backend file"`
	Key         string `mapstructure:"key" validate:"required"`
	SQLitePath  string `mapstructure:"sqlite-path" validate:"required_if=Backend sqlite"`
	DatabaseURL string `mapstructure:"database-url" validate:"required_if=Backend postgres"`
	RedisAddr   string `mapstructure:"redis-addr" validate:"required_if=Backend redis"`
}

// ExportConfig configures the PDF export.
type ExportConfig struct {
	OutputDir   string        `mapstructure:"output-dir"`
	Paper       string        `mapstructure:"paper" validate:"oneof=A4 Letter"`
	Timeout     time.Duration `mapstructure:"timeout" validate:"gte=0"`
	SettleDelay time.Duration `mapstructure:"settle-delay" validate:"gte=0"`
	ChromePath  string        `mapstructure:"chrome-path"`
}

// ServeConfig configures the live preview server.
type ServeConfig struct {
	Addr string `mapstructure:"addr" validate:"hostname_port"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	JSON  bool `mapstructure:"json"`
	Debug bool `mapstructure:"debug"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Storage: StorageConfig{
			Backend:    string(storage.BackendFile),
			Dir:        filepath.Join(".", ".cvbuilder"),
			Key:        types.StorageKey,
			SQLitePath: filepath.Join(".", ".cvbuilder", "cvbuilder.db"),
		},
		Export: ExportConfig{
			OutputDir:   ".",
			Paper:       "A4",
			Timeout:     60 * time.Second,
			SettleDelay: 500 * time.Millisecond,
		},
		Serve: ServeConfig{
			Addr: server.DefaultAddr,
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("storage.backend", d.Storage.Backend)
	v.SetDefault("storage.dir", d.Storage.Dir)
	v.SetDefault("storage.key", d.Storage.Key)
	v.SetDefault("storage.sqlite-path", d.Storage.SQLitePath)
	v.SetDefault("storage.database-url", d.Storage.DatabaseURL)
	v.SetDefault("storage.redis-addr", d.Storage.RedisAddr)
	v.SetDefault("export.output-dir", d.Export.OutputDir)
	v.SetDefault("export.paper", d.Export.Paper)
	v.SetDefault("export.timeout", d.Export.Timeout)
	v.SetDefault("export.settle-delay", d.Export.SettleDelay)
	v.SetDefault("export.chrome-path", d.Export.ChromePath)
	v.SetDefault("serve.addr", d.Serve.Addr)
	v.SetDefault("log.json", d.Log.JSON)
	v.SetDefault("log.debug", d.Log.Debug)
}

// LoadConfig loads configuration from a YAML or JSON file, then applies CVBUILDER_*
// environment overrides. With an empty path, cvbuilder.{yaml,json} in the working directory
// is used when present.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName(DefaultConfigName)
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("config error: '%s' failed '%s' check (value %q)", fe.Namespace(), fe.Tag(), fmt.Sprint(fe.Value()))
		}
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// StorageOptions converts the storage section into storage.Options.
func (c *Config) StorageOptions() storage.Options {
	return storage.Options{
		Backend:     storage.Backend(c.Storage.Backend),
		Dir:         c.Storage.Dir,
		SQLitePath:  c.Storage.SQLitePath,
		DatabaseURL: c.Storage.DatabaseURL,
		RedisAddr:   c.Storage.RedisAddr,
	}
}
