// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// SummaryCache caches rendered monthly summaries keyed by month ("2006-01").
// A cache miss is not an error: Get returns found=false. Implementations own
// the expiry policy.
type SummaryCache interface {
	// Get retrieves the cached payload for a month.
	Get(ctx context.Context, month string) (payload []byte, found bool, err error)

	// Set stores the payload for a month.
	Set(ctx context.Context, month string, payload []byte) error

	// Invalidate drops the cached payloads for the given months. Missing
	// keys are ignored.
	Invalidate(ctx context.Context, months ...string) error
}
