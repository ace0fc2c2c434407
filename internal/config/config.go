// Package config loads the YAML runtime configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// File represents the top-level YAML configuration.
type File struct {
	Version      int      `yaml:"version" json:"version"`
	Settings     Settings `yaml:"settings" json:"settings"`
	BlockedSites []string `yaml:"blocked_sites" json:"blocked_sites"`
}

// Settings contains global engine settings.
type Settings struct {
	DashboardAddr     string `yaml:"dashboard_addr" json:"dashboard_addr"`
	TopSites          int    `yaml:"top_sites" json:"top_sites"`
	HistogramInterval string `yaml:"histogram_interval" json:"histogram_interval"`
	RegoPolicy        string `yaml:"rego_policy,omitempty" json:"rego_policy,omitempty"`
	MaxRecords        int    `yaml:"max_records,omitempty" json:"max_records,omitempty"`
}

// Config is the runtime configuration.
type Config struct {
	File *File
	Path string

	DashboardAddr     string
	TopSites          int
	HistogramInterval time.Duration
	RegoPolicy        string
	MaxRecords        int
	BlockedSites      []string
}

// Load reads a YAML config file and produces a runtime Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	cfg, err := LoadBytes(data)
	if err != nil {
		return nil, err
	}
	cfg.Path = path
	return cfg, nil
}

// LoadBytes parses YAML data and produces a runtime Config.
func LoadBytes(data []byte) (*Config, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}
	return fromFile(&f)
}

func fromFile(f *File) (*Config, error) {
	if f.Version != 1 {
		return nil, fmt.Errorf("unsupported config version: %d (expected 1)", f.Version)
	}

	cfg := &Config{
		File:         f,
		RegoPolicy:   f.Settings.RegoPolicy,
		MaxRecords:   f.Settings.MaxRecords,
		BlockedSites: f.BlockedSites,
	}

	cfg.DashboardAddr = f.Settings.DashboardAddr
	if cfg.DashboardAddr == "" {
		cfg.DashboardAddr = DefaultDashboardAddr
	}

	cfg.TopSites = f.Settings.TopSites
	if cfg.TopSites <= 0 {
		cfg.TopSites = DefaultTopSites
	}

	if f.Settings.HistogramInterval != "" {
		d, err := time.ParseDuration(f.Settings.HistogramInterval)
		if err != nil {
			return nil, fmt.Errorf("invalid histogram_interval %q: %w", f.Settings.HistogramInterval, err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("histogram_interval must be positive, got %q", f.Settings.HistogramInterval)
		}
		cfg.HistogramInterval = d
	} else {
		cfg.HistogramInterval = DefaultHistogramInterval
	}

	if cfg.MaxRecords < 0 {
		return nil, fmt.Errorf("max_records must not be negative, got %d", cfg.MaxRecords)
	}

	return cfg, nil
}

// DefaultConfig returns a config with defaults for when no config file
// is given: empty blocklist, unbounded log.
func DefaultConfig() *Config {
	return &Config{
		File:              &File{Version: 1},
		DashboardAddr:     DefaultDashboardAddr,
		TopSites:          DefaultTopSites,
		HistogramInterval: DefaultHistogramInterval,
	}
}

// MarshalYAML serializes the configuration for display/export.
func (c *Config) MarshalYAML() ([]byte, error) {
	return yaml.Marshal(c.File)
}
