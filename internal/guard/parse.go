package guard

import (
	"context"
	"net/url"
	"strings"

	"github.com/afferafatima/Firewall-Simulator/api"
)

// ParseFilter extracts the lowercased host from the raw URL. A URL
// without a usable host fails open: the navigation is allowed through
// unfiltered.
type ParseFilter struct{}

func NewParseFilter() *ParseFilter { return &ParseFilter{} }

func (f *ParseFilter) Name() string { return "parse" }

func (f *ParseFilter) Process(_ context.Context, nc *NavContext) error {
	if nc.Halted {
		return nil
	}

	u, err := url.Parse(nc.RawURL)
	if err != nil || u.Hostname() == "" {
		nc.Verdict = api.VerdictAllow
		nc.Halted = true
		return nil
	}

	nc.Host = strings.ToLower(u.Hostname())
	return nil
}
