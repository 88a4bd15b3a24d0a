// Package clock provides the time source that check methods use to stamp
// their results.
package clock

import (
	"context"
	"time"
)

type Clock interface {
	Now() time.Time
}

type sysClock struct{}

func (sysClock) Now() time.Time { return time.Now() }

// System is the Clock backed by time.Now.
var System Clock = sysClock{}

type key struct{}

// WithClock returns a new context carrying c.
func WithClock(ctx context.Context, c Clock) context.Context {
	return context.WithValue(ctx, key{}, c)
}

// FromContext returns the Clock carried by ctx, or System.
func FromContext(ctx context.Context) Clock {
	if c, ok := ctx.Value(key{}).(Clock); ok {
		return c
	}
	return System
}

// Fixed is a Clock that always returns the same time.
type Fixed time.Time

func (f Fixed) Now() time.Time { return time.Time(f) }
