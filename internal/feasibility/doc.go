// Package feasibility cross-checks a solved allocation against a
// max-flow formulation of the same network: source -> flow (capacity =
// flow's minimum rate) -> every link on the flow's route (uncapacitated)
// -> sink (capacity = link's capacity). If the max flow from source to
// sink is not within tolerance of the sum of every minimum rate, no
// simultaneous floor-respecting assignment exists and bpg's SLFA-driven
// result should be treated with suspicion (SPEC_FULL.md §10).
//
// The algorithm is Edmonds-Karp: BFS for a shortest augmenting path,
// repeated until none remains.
package feasibility
