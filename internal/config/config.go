// Package config loads schedtrack configuration from an optional YAML file
// with SCHEDTRACK_* environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config defines the CLI and server configuration.
type Config struct {
	DB     DBConfig     `yaml:"db"`
	Import ImportConfig `yaml:"import"`
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
}

type DBConfig struct {
	Path string `yaml:"path"`
}

type ImportConfig struct {
	Sheet     string `yaml:"sheet"`
	HeaderRow int    `yaml:"header_row"`
	DateField string `yaml:"date_field"`
}

type ServerConfig struct {
	// Addr is the listen address for `schedtrack serve` and, when RemoteURL
	// is unset, ignored by the other commands.
	Addr string `yaml:"addr"`
	// RemoteURL points the CLI at a shared server instead of the local file.
	RemoteURL string `yaml:"remote_url"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from an optional YAML file and environment
// variables. Environment wins over file, file over defaults.
func Load() (Config, error) {
	cfg := Config{
		DB: DBConfig{
			Path: defaultDBPath(),
		},
		Import: ImportConfig{
			Sheet:     "Estimating Schedule",
			HeaderRow: 3,
			DateField: "commitmentDate",
		},
		Server: ServerConfig{
			Addr: "127.0.0.1:8470",
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	if path := os.Getenv("SCHEDTRACK_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if dbPath := os.Getenv("SCHEDTRACK_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if sheet := os.Getenv("SCHEDTRACK_IMPORT_SHEET"); sheet != "" {
		cfg.Import.Sheet = sheet
	}
	if rowStr := os.Getenv("SCHEDTRACK_IMPORT_HEADER_ROW"); rowStr != "" {
		row, err := strconv.Atoi(rowStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SCHEDTRACK_IMPORT_HEADER_ROW: %w", err)
		}
		cfg.Import.HeaderRow = row
	}
	if field := os.Getenv("SCHEDTRACK_DATE_FIELD"); field != "" {
		cfg.Import.DateField = field
	}
	if addr := os.Getenv("SCHEDTRACK_SERVER_ADDR"); addr != "" {
		cfg.Server.Addr = addr
	}
	if remote := os.Getenv("SCHEDTRACK_REMOTE_URL"); remote != "" {
		cfg.Server.RemoteURL = remote
	}
	if level := os.Getenv("SCHEDTRACK_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "schedtrack.db"
	}
	return filepath.Join(home, ".schedtrack", "schedtrack.db")
}
