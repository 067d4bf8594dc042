package slideshow

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"k8s.io/utils/clock"
)

// DefaultInterval is the time between automatic advances.
const DefaultInterval = 5000 * time.Millisecond

// DefaultTransition is the cross-fade duration between slides.
const DefaultTransition = 1000 * time.Millisecond

// ErrRotationRunning is returned by Start when the rotation already owns a ticker.
var ErrRotationRunning = errors.New("slideshow: rotation already running")

// Rotation is the recurring timer that drives automatic advances. It owns at
// most one ticker: Start acquires it and Stop releases it.
type Rotation struct {
	clock    clock.WithTicker
	interval time.Duration

	mu     sync.Mutex
	ticker clock.Ticker
}

// NewRotation creates a stopped rotation. A nil clock uses the real clock.
func NewRotation(clk clock.WithTicker, interval time.Duration) (*Rotation, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("slideshow: rotation interval must be positive, got %s", interval)
	}
	if clk == nil {
		clk = clock.RealClock{}
	}
	return &Rotation{clock: clk, interval: interval}, nil
}

// Interval returns the tick period.
func (r *Rotation) Interval() time.Duration { return r.interval }

// Start creates the ticker. Calling Start again before Stop is an error and
// leaves the existing ticker in place.
func (r *Rotation) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ticker != nil {
		return ErrRotationRunning
	}
	r.ticker = r.clock.NewTicker(r.interval)
	return nil
}

// Stop releases the ticker. It reports whether a ticker was running.
func (r *Rotation) Stop() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ticker == nil {
		return false
	}
	r.ticker.Stop()
	r.ticker = nil
	return true
}

// Running reports whether the rotation currently owns a ticker.
func (r *Rotation) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ticker != nil
}

// C returns the tick channel, or nil when stopped. A nil channel blocks
// forever in a select, so a stopped rotation simply never fires.
func (r *Rotation) C() <-chan time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ticker == nil {
		return nil
	}
	return r.ticker.C()
}
