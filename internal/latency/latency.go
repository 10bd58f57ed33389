// Package latency simulates network round trips in front of the in-memory
// services so loading states can be exercised.
package latency

import (
	"context"
	"time"
)

// Weight classifies how expensive an operation pretends to be.
type Weight int

const (
	Instant  Weight = iota
	Light           // single-record reads and deletes
	Read            // list reads and small updates
	Write           // creates and searches
	Heavy           // profile/location saves and uploads
	Analysis        // photo identification
	Deep            // pest analysis
)

var baseDelay = map[Weight]time.Duration{
	Instant:  0,
	Light:    200 * time.Millisecond,
	Read:     300 * time.Millisecond,
	Write:    400 * time.Millisecond,
	Heavy:    800 * time.Millisecond,
	Analysis: 2000 * time.Millisecond,
	Deep:     2500 * time.Millisecond,
}

// Simulator blocks for the delay associated with a weight.
type Simulator interface {
	Wait(ctx context.Context, w Weight) error
}

// Delay is a Simulator that sleeps for the base delay multiplied by Scale.
// A zero Scale returns immediately.
type Delay struct {
	Scale float64
}

// New returns a Delay with the given scale.
func New(scale float64) *Delay {
	return &Delay{Scale: scale}
}

// None returns a Simulator that never waits.
func None() *Delay {
	return &Delay{}
}

// Duration reports how long Wait blocks for w.
func (d *Delay) Duration(w Weight) time.Duration {
	if d == nil || d.Scale <= 0 {
		return 0
	}
	return time.Duration(float64(baseDelay[w]) * d.Scale)
}

// Wait sleeps for the weighted delay or until ctx is done.
func (d *Delay) Wait(ctx context.Context, w Weight) error {
	dur := d.Duration(w)
	if dur <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(dur)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
