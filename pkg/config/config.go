package config

import (
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Data    DataConfig    `yaml:"data"`
	Storage StorageConfig `yaml:"storage"`
}

type DataConfig struct {
	Path      string `yaml:"path"`      // schedule file (e.g. schedule.csv)
	Delimiter string `yaml:"delimiter"` // single character
}

type StorageConfig struct {
	SnapshotPath string `yaml:"snapshot_path"` // SQLite file, empty disables snapshots
}

const (
	DefaultDataPath  = "schedule.csv"
	DefaultDelimiter = ","
)

func Load(configPath string) (*Config, error) {
	cfg := &Config{
		Data: DataConfig{
			Path:      DefaultDataPath,
			Delimiter: DefaultDelimiter,
		},
	}

	if configPath == "" {
		for _, p := range []string{"configs/coursedb.yaml", "coursedb.yaml"} {
			data, err := os.ReadFile(p)
			if err == nil {
				if err := yaml.Unmarshal(data, cfg); err != nil {
					return cfg, fmt.Errorf("parse %s: %w", p, err)
				}
				applyDefaults(cfg)
				return cfg, nil
			}
		}
		return cfg, nil // no file found: use defaults
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", configPath, err)
	}

	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Data.Path == "" {
		cfg.Data.Path = DefaultDataPath
	}
	if cfg.Data.Delimiter == "" {
		cfg.Data.Delimiter = DefaultDelimiter
	}
}

// Validate checks values that Load cannot repair.
func (c *Config) Validate() error {
	if utf8.RuneCountInString(c.Data.Delimiter) != 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", c.Data.Delimiter)
	}
	switch d := c.Delim(); d {
	case '"', '\r', '\n', utf8.RuneError:
		return fmt.Errorf("invalid delimiter %q", d)
	}
	return nil
}

// Delim returns the delimiter as a rune. Call Validate first.
func (c *Config) Delim() rune {
	r, _ := utf8.DecodeRuneInString(c.Data.Delimiter)
	return r
}
