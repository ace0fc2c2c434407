package guard

import (
	"context"

	"github.com/afferafatima/Firewall-Simulator/api"
)

// ScopeFilter limits filtering to user-initiated top-level navigation
// kinds (link activation, typed address). Every other kind passes
// through with an immediate allow.
type ScopeFilter struct{}

func NewScopeFilter() *ScopeFilter { return &ScopeFilter{} }

func (f *ScopeFilter) Name() string { return "scope" }

func (f *ScopeFilter) Process(_ context.Context, nc *NavContext) error {
	if !nc.Kind.Filtered() {
		nc.Verdict = api.VerdictAllow
		nc.Halted = true
	}
	return nil
}
