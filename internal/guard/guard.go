// Package guard decides, for every outbound navigation, whether the
// target host is permitted, and records every denial.
package guard

import (
	"context"
	"log/slog"

	"github.com/afferafatima/Firewall-Simulator/api"
	"github.com/afferafatima/Firewall-Simulator/internal/audit"
	"github.com/afferafatima/Firewall-Simulator/internal/blocklist"
	"github.com/afferafatima/Firewall-Simulator/internal/policy"
)

// Config holds the collaborators needed to build a Guard.
type Config struct {
	Blocklist *blocklist.Store
	Log       audit.Log
	Engine    policy.Engine // optional Rego policy, may be nil
	Logger    *slog.Logger
}

// Guard is the navigation interception point. The host's navigation
// pipeline calls Evaluate synchronously before a load takes effect.
type Guard struct {
	chain *Chain
}

// New builds a Guard with the standard filter order: scope, parse,
// blocklist, optional policy, audit.
func New(cfg Config) *Guard {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	filters := []Filter{
		NewScopeFilter(),
		NewParseFilter(),
		NewBlocklistFilter(cfg.Blocklist),
	}
	if cfg.Engine != nil {
		filters = append(filters, NewPolicyFilter(cfg.Engine))
	}
	filters = append(filters, NewAuditFilter(cfg.Log))

	return &Guard{chain: NewChain(logger, filters...)}
}

// Evaluate decides one navigation attempt. On deny the returned
// decision carries the block notice and exactly one attempt record has
// already been appended to the log; allow appends nothing.
func (g *Guard) Evaluate(ctx context.Context, rawURL string, kind api.NavigationKind, mainFrame bool) (api.Decision, error) {
	nc := NewNavContext(rawURL, kind, mainFrame)
	if err := g.chain.Process(ctx, nc); err != nil {
		return api.Decision{}, err
	}
	return nc.ToDecision(), nil
}
