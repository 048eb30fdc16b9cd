// Package bpgsolver computes max-min fair flow rates over a network of
// capacity-constrained links and records the Bottleneck Precedence Graph
// that explains why each link ended up the way it did.
//
// Three packages do the work:
//
//	nss/  — Network State Store: the mutable F/L/C/M relational state
//	        a solve operates on, plus an immutable pristine snapshot.
//	slfa/ — Single-Link Fair Allocator: water-filling with per-flow
//	        minimum-rate floors over one link's flows.
//	bpg/  — the outer peeling loop that scores every active link with
//	        slfa, peels local-minimum bottlenecks level by level, and
//	        records precedence edges between them.
//
// cmd/bpgsolve is a small JSON-in/JSON-out CLI wrapping bpg.Compute.
package bpgsolver
