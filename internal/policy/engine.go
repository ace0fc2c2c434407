// Package policy provides optional rule-based navigation policy beyond
// the blocklist.
package policy

import (
	"context"

	"github.com/afferafatima/Firewall-Simulator/api"
)

// EvalInput describes one navigation attempt for policy evaluation.
type EvalInput struct {
	URL       string `json:"url"`
	Host      string `json:"host"`
	Kind      string `json:"kind"`
	MainFrame bool   `json:"main_frame"`
}

// EvalResult is the verdict produced by a policy engine.
type EvalResult struct {
	Verdict api.Verdict `json:"verdict"`
	Rule    string      `json:"rule,omitempty"`
	Message string      `json:"message,omitempty"`
}

// Engine is the interface for navigation policy backends.
type Engine interface {
	// Evaluate checks a navigation against loaded policy and returns a verdict.
	Evaluate(ctx context.Context, input *EvalInput) (*EvalResult, error)

	// Reload reloads policy from its source.
	Reload(ctx context.Context) error
}
