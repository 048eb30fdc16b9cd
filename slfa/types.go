package slfa

import "errors"

// ErrNonConvergent is an ASSERTION-class error (spec.md §7): the water-
// filling loop used up its n+1-pass bound without reaching a pass that
// pins no new flow. This
// signals an algorithmic bug, never a valid input — Solve's own loop
// bound makes it unreachable in practice, but it is returned rather than
// panicking, matching the teacher's preference for typed errors over
// panics even for "should never happen" conditions.
var ErrNonConvergent = errors.New("slfa: water-filling failed to converge")

// Options configures numerical tolerance for Solve.
type Options struct {
	// Epsilon is the relative tolerance used for the saturation check and
	// for the "every flow pinned" zero-advertised-rate case. Default 1e-8.
	Epsilon float64
}

func (o Options) normalize() Options {
	if o.Epsilon <= 0 {
		o.Epsilon = 1e-8
	}
	return o
}

// Result holds one link's fair allocation.
type Result struct {
	// Rates maps flow id -> assigned rate, covering every flow passed to Solve.
	Rates map[string]float64
	// Advertised is the link's advertised rate (may be +Inf, see package doc).
	Advertised float64
}
