// Package audit holds the append-only log of denied navigation attempts.
package audit

import (
	"context"

	"github.com/afferafatima/Firewall-Simulator/api"
)

// Log is the append-only, insertion-ordered record of denied navigation
// attempts. The log is memory-resident only; nothing survives a restart.
type Log interface {
	// Append adds a record. It never fails: the navigation guard calls
	// it synchronously on the navigation path and must not be stalled.
	Append(record *api.AttemptRecord)

	// Snapshot returns a consistent copy of the full log as of some
	// point in time, safe to iterate while appends continue.
	Snapshot() []*api.AttemptRecord

	// Query retrieves records matching the filter, oldest first.
	Query(filter api.QueryFilter) []*api.AttemptRecord

	// Stats returns summary statistics over the whole log.
	Stats() *api.AttemptStats

	// Subscribe returns a channel that receives new records in real
	// time. The returned function cancels the subscription.
	Subscribe(ctx context.Context) (<-chan *api.AttemptRecord, func())
}
