package guard

import (
	"context"
	"fmt"
	"log/slog"
)

// Chain executes a sequence of filters in order.
type Chain struct {
	filters []Filter
	logger  *slog.Logger
}

// NewChain creates a new filter chain.
func NewChain(logger *slog.Logger, filters ...Filter) *Chain {
	return &Chain{
		filters: filters,
		logger:  logger,
	}
}

// Process runs all filters in sequence on the given context. If a
// filter sets nc.Halted the verdict is final, but remaining filters
// still run so the audit step always sees the outcome.
func (c *Chain) Process(ctx context.Context, nc *NavContext) error {
	for _, f := range c.filters {
		if err := f.Process(ctx, nc); err != nil {
			return fmt.Errorf("filter %q: %w", f.Name(), err)
		}
		c.logger.Debug("filter executed",
			"filter", f.Name(),
			"host", nc.Host,
			"kind", nc.Kind,
			"verdict", nc.Verdict,
			"halted", nc.Halted,
		)
	}
	return nil
}

// AddFilter appends a filter to the chain.
func (c *Chain) AddFilter(f Filter) {
	c.filters = append(c.filters, f)
}
