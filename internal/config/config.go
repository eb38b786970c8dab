package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/loykin/svcman/internal/logger"
)

const configFileName = "config.toml"

// FileConfig represents the top-level TOML structure. Everything is
// optional; a missing config file means defaults everywhere. The config
// file never overrides where the registry itself lives.
type FileConfig struct {
	Log     *LogConfig     `toml:"log" mapstructure:"log"`
	History *HistoryConfig `toml:"history" mapstructure:"history"`
}

type LogConfig struct {
	Level      string `toml:"level" mapstructure:"level"`
	Format     string `toml:"format" mapstructure:"format"`
	Color      bool   `toml:"color" mapstructure:"color"`
	File       string `toml:"file" mapstructure:"file"`
	MaxSizeMB  int    `toml:"max_size_mb" mapstructure:"max_size_mb"`
	MaxBackups int    `toml:"max_backups" mapstructure:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days" mapstructure:"max_age_days"`
	Compress   bool   `toml:"compress" mapstructure:"compress"`
}

type HistoryConfig struct {
	DSN string `toml:"dsn" mapstructure:"dsn"`
}

// DefaultPath returns <home>/.config/svcman/config.toml, derived from the
// environment on every call.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "svcman", configFileName), nil
}

// Load reads a TOML config from path. When path is empty the default
// location is tried, and its absence is not an error; an explicit path
// that cannot be read is.
func Load(path string) (*FileConfig, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return &FileConfig{}, nil
		}
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var fc FileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &fc, nil
}

// LoggerConfig converts the [log] section into a logger.Config,
// defaulting sensibly when the section is absent.
func (fc *FileConfig) LoggerConfig() logger.Config {
	if fc == nil || fc.Log == nil {
		return logger.Config{Level: "info", Format: logger.FormatText, Color: true}
	}
	return logger.Config{
		Level:  fc.Log.Level,
		Format: fc.Log.Format,
		Color:  fc.Log.Color,
		File: logger.FileConfig{
			Path:       fc.Log.File,
			MaxSizeMB:  fc.Log.MaxSizeMB,
			MaxBackups: fc.Log.MaxBackups,
			MaxAgeDays: fc.Log.MaxAgeDays,
			Compress:   fc.Log.Compress,
		},
	}
}

// HistoryDSN returns the configured history DSN, or empty when the
// audit trail is disabled.
func (fc *FileConfig) HistoryDSN() string {
	if fc == nil || fc.History == nil {
		return ""
	}
	return fc.History.DSN
}
