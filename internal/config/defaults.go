package config

import "time"

const (
	DefaultDashboardAddr     = "127.0.0.1:8080"
	DefaultTopSites          = 5
	DefaultHistogramInterval = 60 * time.Second
)
