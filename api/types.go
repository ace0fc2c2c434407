package api

import "time"

// Verdict represents the outcome of evaluating a navigation attempt.
type Verdict string

const (
	VerdictAllow Verdict = "allow"
	VerdictDeny  Verdict = "deny"
)

// NavigationKind classifies why a page load was triggered.
type NavigationKind string

const (
	KindLinkActivated NavigationKind = "link_activated" // user clicked a link
	KindUserTyped     NavigationKind = "user_typed"     // user entered an address
	KindFormSubmitted NavigationKind = "form_submitted"
	KindReload        NavigationKind = "reload"
	KindBackForward   NavigationKind = "back_forward"
	KindProgrammatic  NavigationKind = "programmatic" // scripted or sub-resource load
)

// Filtered reports whether navigations of this kind are subject to
// blocklist filtering. Only user-initiated top-level kinds are.
func (k NavigationKind) Filtered() bool {
	return k == KindLinkActivated || k == KindUserTyped
}

// AttemptRecord is a single denied navigation attempt. Records are
// immutable once appended to the attempt log.
type AttemptRecord struct {
	ID        string         `json:"id"`
	Timestamp time.Time      `json:"timestamp"`
	Host      string         `json:"host"`
	RawURL    string         `json:"raw_url"`
	Kind      NavigationKind `json:"kind,omitempty"`
	Pattern   string         `json:"pattern,omitempty"` // blocklist pattern or policy rule that matched
}

// BlockNotice is the payload the host UI renders in place of the page
// when a navigation is denied.
type BlockNotice struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	URL     string `json:"url"`
}

// Decision is the synchronous result of evaluating a navigation.
// Notice is set only for deny.
type Decision struct {
	Verdict Verdict      `json:"verdict"`
	Notice  *BlockNotice `json:"notice,omitempty"`
}

// Allowed is a convenience accessor.
func (d Decision) Allowed() bool { return d.Verdict == VerdictAllow }

// CheckRequest is used by the CLI `check` command and the dashboard API.
type CheckRequest struct {
	URL       string         `json:"url"`
	Kind      NavigationKind `json:"kind"`
	MainFrame bool           `json:"main_frame"`
}

// CheckResponse is the result of a dry-run navigation check.
type CheckResponse struct {
	Verdict Verdict      `json:"verdict"`
	Notice  *BlockNotice `json:"notice,omitempty"`
}
