package guard

import (
	"context"

	"github.com/afferafatima/Firewall-Simulator/api"
	"github.com/afferafatima/Firewall-Simulator/internal/policy"
)

// PolicyFilter evaluates the navigation against a Rego policy engine.
// It runs after the blocklist, so list denials take precedence.
type PolicyFilter struct {
	engine policy.Engine
}

func NewPolicyFilter(engine policy.Engine) *PolicyFilter {
	return &PolicyFilter{engine: engine}
}

func (f *PolicyFilter) Name() string { return "policy" }

func (f *PolicyFilter) Process(ctx context.Context, nc *NavContext) error {
	if nc.Halted {
		return nil
	}

	result, err := f.engine.Evaluate(ctx, &policy.EvalInput{
		URL:       nc.RawURL,
		Host:      nc.Host,
		Kind:      string(nc.Kind),
		MainFrame: nc.MainFrame,
	})
	if err != nil {
		return err
	}

	if result.Verdict == api.VerdictDeny {
		nc.Verdict = api.VerdictDeny
		nc.MatchedPattern = result.Rule
		nc.Message = result.Message
		nc.Halted = true
	}
	return nil
}
