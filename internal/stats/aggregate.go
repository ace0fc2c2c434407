// Package stats computes report aggregates from attempt log snapshots.
// All functions are pure: they only read the snapshot passed in.
package stats

import (
	"sort"
	"time"

	"github.com/afferafatima/Firewall-Simulator/api"
)

// Defaults for the statistics view.
const (
	DefaultTopN     = 5
	DefaultInterval = 60 * time.Second
)

// TopHosts returns the n most frequently denied hosts, highest count
// first. Hosts with equal counts stay in first-seen order. Records
// without a host are skipped.
func TopHosts(n int, records []*api.AttemptRecord) []api.SiteCount {
	if n <= 0 || len(records) == 0 {
		return nil
	}

	counts := make(map[string]int)
	var order []string
	for _, r := range records {
		if r == nil || r.Host == "" {
			continue
		}
		if _, seen := counts[r.Host]; !seen {
			order = append(order, r.Host)
		}
		counts[r.Host]++
	}

	out := make([]api.SiteCount, 0, len(order))
	for _, host := range order {
		out = append(out, api.SiteCount{Host: host, Count: counts[host]})
	}
	// Stable sort keeps first-seen order among tied counts.
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })

	if len(out) > n {
		out = out[:n]
	}
	return out
}

// TimeHistogram buckets record timestamps into fixed-width intervals:
// bucket start = floor(unix / interval) * interval. Buckets are
// returned ascending by start time. Records without a usable timestamp
// are skipped rather than failing the whole report.
func TimeHistogram(interval time.Duration, records []*api.AttemptRecord) []api.HistogramBucket {
	if interval <= 0 {
		interval = DefaultInterval
	}
	step := int64(interval / time.Second)
	if step < 1 {
		step = 1
	}

	binned := make(map[int64]int)
	for _, r := range records {
		if r == nil || r.Timestamp.IsZero() {
			continue
		}
		bucket := (r.Timestamp.Unix() / step) * step
		binned[bucket]++
	}
	if len(binned) == 0 {
		return nil
	}

	starts := make([]int64, 0, len(binned))
	for b := range binned {
		starts = append(starts, b)
	}
	sort.Slice(starts, func(i, j int) bool { return starts[i] < starts[j] })

	out := make([]api.HistogramBucket, 0, len(starts))
	for _, b := range starts {
		out = append(out, api.HistogramBucket{Start: time.Unix(b, 0).UTC(), Count: binned[b]})
	}
	return out
}
