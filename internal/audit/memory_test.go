package audit

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/afferafatima/Firewall-Simulator/api"
)

func TestMemoryLog_AppendAndSnapshot(t *testing.T) {
	log := NewMemoryLog()

	log.Append(&api.AttemptRecord{Host: "example.com", RawURL: "http://example.com/a"})
	log.Append(&api.AttemptRecord{Host: "example.org", RawURL: "http://example.org/b"})

	snap := log.Snapshot()
	if len(snap) != 2 {
		t.Fatalf("expected 2 records, got %d", len(snap))
	}
	if snap[0].Host != "example.com" || snap[1].Host != "example.org" {
		t.Errorf("expected insertion order preserved, got %v, %v", snap[0].Host, snap[1].Host)
	}
	if snap[0].ID == "" {
		t.Error("expected generated ID")
	}
	if snap[0].Timestamp.IsZero() {
		t.Error("expected defaulted timestamp")
	}
}

func TestMemoryLog_NoDeduplication(t *testing.T) {
	log := NewMemoryLog()

	for i := 0; i < 2; i++ {
		log.Append(&api.AttemptRecord{Host: "example.com", RawURL: "http://example.com/"})
	}
	if got := len(log.Snapshot()); got != 2 {
		t.Errorf("expected 2 independent records for repeat attempt, got %d", got)
	}
}

func TestMemoryLog_SnapshotIsCopy(t *testing.T) {
	log := NewMemoryLog()
	log.Append(&api.AttemptRecord{Host: "example.com"})

	snap := log.Snapshot()
	log.Append(&api.AttemptRecord{Host: "example.org"})

	if len(snap) != 1 {
		t.Errorf("expected snapshot unaffected by later append, got %d records", len(snap))
	}
}

func TestMemoryLog_ConcurrentAppendAndSnapshot(t *testing.T) {
	log := NewMemoryLog()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			log.Append(&api.AttemptRecord{Host: fmt.Sprintf("site%d.com", i)})
		}
	}()

	for i := 0; i < 100; i++ {
		snap := log.Snapshot()
		for _, r := range snap {
			if r == nil || r.Host == "" {
				t.Fatal("snapshot contains corrupted record")
			}
		}
	}
	wg.Wait()

	if got := len(log.Snapshot()); got != 500 {
		t.Errorf("expected 500 records, got %d", got)
	}
}

func TestMemoryLog_Query(t *testing.T) {
	log := NewMemoryLog()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 4; i++ {
		host := "example.com"
		if i%2 == 1 {
			host = "example.org"
		}
		log.Append(&api.AttemptRecord{
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Host:      host,
		})
	}

	results := log.Query(api.QueryFilter{Host: "example.org"})
	if len(results) != 2 {
		t.Fatalf("expected 2 example.org records, got %d", len(results))
	}

	results = log.Query(api.QueryFilter{Since: base.Add(90 * time.Second)})
	if len(results) != 2 {
		t.Errorf("expected 2 records since cutoff, got %d", len(results))
	}

	results = log.Query(api.QueryFilter{Limit: 3})
	if len(results) != 3 {
		t.Errorf("expected 3 records with limit, got %d", len(results))
	}

	results = log.Query(api.QueryFilter{Offset: 10})
	if results != nil {
		t.Errorf("expected nil for offset past end, got %v", results)
	}
}

func TestMemoryLog_Stats(t *testing.T) {
	log := NewMemoryLog()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	log.Append(&api.AttemptRecord{Timestamp: base.Add(time.Minute), Host: "example.com"})
	log.Append(&api.AttemptRecord{Timestamp: base, Host: "example.org"})
	log.Append(&api.AttemptRecord{Timestamp: base.Add(2 * time.Minute), Host: "example.com"})

	stats := log.Stats()
	if stats.TotalAttempts != 3 {
		t.Errorf("expected 3 total, got %d", stats.TotalAttempts)
	}
	if stats.UniqueHosts != 2 {
		t.Errorf("expected 2 unique hosts, got %d", stats.UniqueHosts)
	}
	if !stats.FirstAttempt.Equal(base) {
		t.Errorf("expected first attempt %v, got %v", base, stats.FirstAttempt)
	}
	if !stats.LastAttempt.Equal(base.Add(2 * time.Minute)) {
		t.Errorf("expected last attempt %v, got %v", base.Add(2*time.Minute), stats.LastAttempt)
	}
}

func TestBoundedLog_DropsOldest(t *testing.T) {
	log := NewBoundedLog(2)

	log.Append(&api.AttemptRecord{Host: "a.com"})
	log.Append(&api.AttemptRecord{Host: "b.com"})
	log.Append(&api.AttemptRecord{Host: "c.com"})

	snap := log.Snapshot()
	if len(snap) != 2 {
		t.Fatalf("expected 2 records, got %d", len(snap))
	}
	if snap[0].Host != "b.com" || snap[1].Host != "c.com" {
		t.Errorf("expected oldest dropped, got %v, %v", snap[0].Host, snap[1].Host)
	}
}

func TestMemoryLog_Subscribe(t *testing.T) {
	log := NewMemoryLog()

	ch, cancel := log.Subscribe(context.Background())
	defer cancel()

	go log.Append(&api.AttemptRecord{Host: "example.com"})

	select {
	case r := <-ch:
		if r.Host != "example.com" {
			t.Errorf("expected example.com, got %s", r.Host)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for subscription event")
	}
}
