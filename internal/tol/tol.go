// Package tol centralizes the single relative-tolerance comparison used
// throughout the solver — spec.md §9 calls out divergent epsilons across
// the capacity-zero check, the advertised-rate sum check, and the
// min-advertised-rate peel comparison as "a documented source of subtle
// disagreement between the two source drafts". Every numerical comparison
// in nss, slfa, and bpg goes through this package instead.
package tol

import "math"

// Eq reports whether a and b are equal within eps relative to their scale.
func Eq(a, b, eps float64) bool {
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	return math.Abs(a-b) <= eps*scale
}

// LTE reports whether a <= b within eps relative tolerance (a is allowed to
// exceed b by up to eps*scale and still count as "not greater").
func LTE(a, b, eps float64) bool {
	return a <= b || Eq(a, b, eps)
}

// Zero reports whether v is within eps of zero (spec.md §3 "Capacity is
// never negative beyond a small numeric tolerance").
func Zero(v, eps float64) bool {
	return math.Abs(v) <= eps
}
