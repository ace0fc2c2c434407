package guard

import (
	"time"

	"github.com/afferafatima/Firewall-Simulator/api"
)

// Block notice payload shown by the host UI in place of the page.
const (
	blockTitle   = "Access Blocked"
	blockMessage = "Access to this website has been blocked by your firewall."
)

// NavContext carries metadata through the filter chain for a single
// navigation attempt.
type NavContext struct {
	// RawURL is the original requested URL string.
	RawURL string

	// Kind classifies what triggered the navigation.
	Kind api.NavigationKind

	// MainFrame indicates a top-level (non-iframe) navigation.
	MainFrame bool

	// Host is the lowercased host component, set by the parse filter.
	// Empty when the URL has no usable host.
	Host string

	// Verdict is the decision so far.
	Verdict api.Verdict

	// MatchedPattern is the blocklist pattern or policy rule that denied.
	MatchedPattern string

	// Message overrides the default block message when set by a policy rule.
	Message string

	// StartTime records when the navigation entered the pipeline.
	StartTime time.Time

	// Halted indicates the verdict is final; decision filters must not
	// run again. The audit filter always runs.
	Halted bool
}

// NewNavContext creates a NavContext for one navigation attempt.
func NewNavContext(rawURL string, kind api.NavigationKind, mainFrame bool) *NavContext {
	return &NavContext{
		RawURL:    rawURL,
		Kind:      kind,
		MainFrame: mainFrame,
		Verdict:   api.VerdictAllow,
		StartTime: time.Now(),
	}
}

// ToAttemptRecord converts a denied context into an attempt record.
// Timestamps carry second resolution.
func (nc *NavContext) ToAttemptRecord() *api.AttemptRecord {
	return &api.AttemptRecord{
		Timestamp: nc.StartTime.Truncate(time.Second),
		Host:      nc.Host,
		RawURL:    nc.RawURL,
		Kind:      nc.Kind,
		Pattern:   nc.MatchedPattern,
	}
}

// ToDecision converts the processed context into the caller-facing decision.
func (nc *NavContext) ToDecision() api.Decision {
	if nc.Verdict != api.VerdictDeny {
		return api.Decision{Verdict: api.VerdictAllow}
	}
	msg := nc.Message
	if msg == "" {
		msg = blockMessage
	}
	return api.Decision{
		Verdict: api.VerdictDeny,
		Notice: &api.BlockNotice{
			Title:   blockTitle,
			Message: msg,
			URL:     nc.RawURL,
		},
	}
}
