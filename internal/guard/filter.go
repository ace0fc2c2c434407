package guard

import "context"

// Filter is a single step in the navigation evaluation pipeline.
type Filter interface {
	// Name returns the filter name for logging.
	Name() string

	// Process inspects and may modify the navigation context (e.g., set
	// the verdict) or produce side effects (e.g., append an attempt
	// record). Returning an error aborts the chain.
	Process(ctx context.Context, nc *NavContext) error
}
