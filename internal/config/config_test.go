package config

import (
	"testing"
	"time"
)

func TestLoadBytes_Full(t *testing.T) {
	yaml := `
version: 1
settings:
  dashboard_addr: "127.0.0.1:9090"
  top_sites: 10
  histogram_interval: "5m"
  max_records: 1000
blocked_sites:
  - example.com
  - ads.example.org
`
	cfg, err := LoadBytes([]byte(yaml))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DashboardAddr != "127.0.0.1:9090" {
		t.Errorf("expected custom dashboard addr, got %s", cfg.DashboardAddr)
	}
	if cfg.TopSites != 10 {
		t.Errorf("expected top_sites 10, got %d", cfg.TopSites)
	}
	if cfg.HistogramInterval != 5*time.Minute {
		t.Errorf("expected 5m interval, got %s", cfg.HistogramInterval)
	}
	if cfg.MaxRecords != 1000 {
		t.Errorf("expected max_records 1000, got %d", cfg.MaxRecords)
	}
	if len(cfg.BlockedSites) != 2 || cfg.BlockedSites[0] != "example.com" {
		t.Errorf("unexpected blocked sites %v", cfg.BlockedSites)
	}
}

func TestLoadBytes_Defaults(t *testing.T) {
	yaml := `
version: 1
settings: {}
`
	cfg, err := LoadBytes([]byte(yaml))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DashboardAddr != DefaultDashboardAddr {
		t.Errorf("expected default dashboard addr %s, got %s", DefaultDashboardAddr, cfg.DashboardAddr)
	}
	if cfg.TopSites != DefaultTopSites {
		t.Errorf("expected default top sites %d, got %d", DefaultTopSites, cfg.TopSites)
	}
	if cfg.HistogramInterval != DefaultHistogramInterval {
		t.Errorf("expected default interval %s, got %s", DefaultHistogramInterval, cfg.HistogramInterval)
	}
	if cfg.MaxRecords != 0 {
		t.Errorf("expected unbounded log by default, got %d", cfg.MaxRecords)
	}
}

func TestLoadBytes_BadVersion(t *testing.T) {
	if _, err := LoadBytes([]byte("version: 2\n")); err == nil {
		t.Fatal("expected error for unsupported version")
	}
}

func TestLoadBytes_BadInterval(t *testing.T) {
	yaml := `
version: 1
settings:
  histogram_interval: "soon"
`
	if _, err := LoadBytes([]byte(yaml)); err == nil {
		t.Fatal("expected error for invalid interval")
	}
}

func TestLoadBytes_NegativeInterval(t *testing.T) {
	yaml := `
version: 1
settings:
  histogram_interval: "-1m"
`
	if _, err := LoadBytes([]byte(yaml)); err == nil {
		t.Fatal("expected error for negative interval")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.DashboardAddr != DefaultDashboardAddr {
		t.Errorf("expected default addr, got %s", cfg.DashboardAddr)
	}
	if len(cfg.BlockedSites) != 0 {
		t.Errorf("expected empty initial blocklist, got %v", cfg.BlockedSites)
	}
}
