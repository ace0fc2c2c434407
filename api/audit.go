package api

import "time"

// QueryFilter defines criteria for querying attempt records.
type QueryFilter struct {
	Since  time.Time `json:"since,omitempty"`
	Until  time.Time `json:"until,omitempty"`
	Host   string    `json:"host,omitempty"`
	Limit  int       `json:"limit,omitempty"`
	Offset int       `json:"offset,omitempty"`
}

// AttemptStats summarizes the attempt log for the status view.
type AttemptStats struct {
	TotalAttempts int       `json:"total_attempts"`
	UniqueHosts   int       `json:"unique_hosts"`
	FirstAttempt  time.Time `json:"first_attempt,omitzero"`
	LastAttempt   time.Time `json:"last_attempt,omitzero"`
}

// SiteCount pairs a host with its denied-attempt count.
type SiteCount struct {
	Host  string `json:"host"`
	Count int    `json:"count"`
}

// HistogramBucket is one fixed-width interval of the attempts-over-time
// series. Start is the bucket's floored start time.
type HistogramBucket struct {
	Start time.Time `json:"start"`
	Count int       `json:"count"`
}
