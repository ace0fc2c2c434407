package audit

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/afferafatima/Firewall-Simulator/api"
)

// MemoryLog is the in-memory attempt log. A single mutex covers append
// and snapshot, giving linearizable single-writer/multi-reader
// semantics; snapshots are copies, so readers never see a record that
// is being appended.
type MemoryLog struct {
	mu      sync.Mutex
	records []*api.AttemptRecord
	max     int // 0 means unbounded

	subMu   sync.RWMutex
	subs    map[int]chan *api.AttemptRecord
	nextSub int
}

// NewMemoryLog creates an unbounded in-memory log. The log grows for
// the lifetime of the process; there is no eviction.
func NewMemoryLog() *MemoryLog {
	return NewBoundedLog(0)
}

// NewBoundedLog creates a log that drops its oldest record once max is
// reached. max <= 0 means unbounded.
func NewBoundedLog(max int) *MemoryLog {
	return &MemoryLog{
		max:  max,
		subs: make(map[int]chan *api.AttemptRecord),
	}
}

func (l *MemoryLog) Append(record *api.AttemptRecord) {
	l.mu.Lock()
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now().Truncate(time.Second)
	}
	if l.max > 0 && len(l.records) >= l.max {
		l.records = l.records[1:]
	}
	l.records = append(l.records, record)
	l.mu.Unlock()

	l.notifySubscribers(record)
}

func (l *MemoryLog) Snapshot() []*api.AttemptRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]*api.AttemptRecord, len(l.records))
	copy(out, l.records)
	return out
}

func (l *MemoryLog) Query(filter api.QueryFilter) []*api.AttemptRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	var results []*api.AttemptRecord
	for _, r := range l.records {
		if matchesFilter(r, filter) {
			results = append(results, r)
		}
	}

	if filter.Offset > 0 {
		if filter.Offset >= len(results) {
			return nil
		}
		results = results[filter.Offset:]
	}
	if filter.Limit > 0 && len(results) > filter.Limit {
		results = results[:filter.Limit]
	}
	return results
}

func (l *MemoryLog) Stats() *api.AttemptStats {
	l.mu.Lock()
	defer l.mu.Unlock()

	stats := &api.AttemptStats{
		TotalAttempts: len(l.records),
	}
	hosts := make(map[string]struct{})
	for _, r := range l.records {
		if r.Host != "" {
			hosts[r.Host] = struct{}{}
		}
		if r.Timestamp.IsZero() {
			continue
		}
		if stats.FirstAttempt.IsZero() || r.Timestamp.Before(stats.FirstAttempt) {
			stats.FirstAttempt = r.Timestamp
		}
		if r.Timestamp.After(stats.LastAttempt) {
			stats.LastAttempt = r.Timestamp
		}
	}
	stats.UniqueHosts = len(hosts)
	return stats
}

func (l *MemoryLog) Subscribe(_ context.Context) (<-chan *api.AttemptRecord, func()) {
	l.subMu.Lock()
	defer l.subMu.Unlock()

	ch := make(chan *api.AttemptRecord, 100)
	id := l.nextSub
	l.nextSub++
	l.subs[id] = ch

	cancel := func() {
		l.subMu.Lock()
		defer l.subMu.Unlock()
		delete(l.subs, id)
		close(ch)
	}

	return ch, cancel
}

func (l *MemoryLog) notifySubscribers(record *api.AttemptRecord) {
	l.subMu.RLock()
	defer l.subMu.RUnlock()

	for _, ch := range l.subs {
		select {
		case ch <- record:
		default:
			// Drop if subscriber is slow
		}
	}
}

func matchesFilter(r *api.AttemptRecord, f api.QueryFilter) bool {
	if !f.Since.IsZero() && r.Timestamp.Before(f.Since) {
		return false
	}
	if !f.Until.IsZero() && r.Timestamp.After(f.Until) {
		return false
	}
	if f.Host != "" && r.Host != f.Host {
		return false
	}
	return true
}
