package engine

import (
	"context"
	"time"
)

// TimeProvider supplies the loop's two clocks and its only suspension point.
// Now and Wall are distinct: Now carries a monotonic reading immune to system
// clock adjustments, Wall reflects them.
type TimeProvider interface {
	// Now returns the current instant with a monotonic clock reading
	Now() time.Time

	// Wall returns the local wall-clock time
	Wall() time.Time

	// Sleep blocks for d or until ctx is done, whichever comes first
	Sleep(ctx context.Context, d time.Duration) error
}

// RealTimeProvider reads the system clocks
type RealTimeProvider struct{}

// NewTimeProvider creates a provider backed by the system clocks
func NewTimeProvider() *RealTimeProvider {
	return &RealTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Wall returns local time with the monotonic reading stripped
func (p *RealTimeProvider) Wall() time.Time {
	return time.Now().Round(0).Local()
}

// Sleep waits on a timer, returning ctx.Err() as soon as ctx is cancelled
func (p *RealTimeProvider) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
