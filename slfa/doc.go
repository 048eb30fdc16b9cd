// Package slfa implements the Single-Link Fair Allocator: the max-min fair
// water-filling split of one link's capacity among the flows currently
// traversing it, honoring each flow's minimum-rate floor (spec.md §4.2).
//
// Solve repeatedly computes the equal share of whatever capacity remains
// unconstrained, pins any flow whose floor exceeds that share, and
// re-divides the remainder among the flows still unconstrained. It
// terminates in at most n+1 passes (n = number of flows on the link): every
// pass either pins at least one new flow or the allocation has converged.
//
// The advertised rate it returns alongside the per-flow allocation is the
// scalar spec.md's GLOSSARY defines as "the value the link currently
// offers to flows constrained by it" — 0 if every flow is pinned at its
// floor, +∞ if the link is not currently saturated, otherwise the largest
// unpinned rate.
package slfa
