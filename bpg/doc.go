// Package bpg implements the Bottleneck Precedence Graph engine: the
// top-level loop that repeatedly scores every active link with slfa,
// peels the links whose advertised rate is minimal within their
// flow-sharing neighborhood, and records the resulting vertex, direct-edge,
// and indirect-edge sets level by level (spec.md §4.3).
//
// Compute owns an *nss.Store for the duration of one solve. It never
// mutates the store concurrently with itself and returns no partial
// result on failure (spec.md §7).
package bpg
