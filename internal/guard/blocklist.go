package guard

import (
	"context"

	"github.com/afferafatima/Firewall-Simulator/api"
	"github.com/afferafatima/Firewall-Simulator/internal/blocklist"
)

// BlocklistFilter denies navigation to hosts matching the shared
// blocklist store.
type BlocklistFilter struct {
	store *blocklist.Store
}

func NewBlocklistFilter(store *blocklist.Store) *BlocklistFilter {
	return &BlocklistFilter{store: store}
}

func (f *BlocklistFilter) Name() string { return "blocklist" }

func (f *BlocklistFilter) Process(_ context.Context, nc *NavContext) error {
	if nc.Halted {
		return nil
	}

	if pattern, ok := f.store.Match(nc.Host); ok {
		nc.Verdict = api.VerdictDeny
		nc.MatchedPattern = pattern
		nc.Halted = true
	}
	return nil
}
