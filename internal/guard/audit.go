package guard

import (
	"context"

	"github.com/afferafatima/Firewall-Simulator/api"
	"github.com/afferafatima/Firewall-Simulator/internal/audit"
)

// AuditFilter appends an attempt record for every denied navigation.
// It is always the last filter, so it sees the final verdict; allowed
// navigations leave no trace.
type AuditFilter struct {
	log audit.Log
}

func NewAuditFilter(log audit.Log) *AuditFilter {
	return &AuditFilter{log: log}
}

func (f *AuditFilter) Name() string { return "audit" }

func (f *AuditFilter) Process(_ context.Context, nc *NavContext) error {
	if nc.Verdict == api.VerdictDeny {
		f.log.Append(nc.ToAttemptRecord())
	}
	return nil
}
