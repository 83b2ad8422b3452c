// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "time"

// Clock provides the current time. Use cases that depend on "today"
// (billing-date advancement, default summary month) take a Clock so tests
// can pin it.
type Clock interface {
	Now() time.Time
}
