// Package nss implements the Network State Store: the mutable relational
// state a BPG solve operates on — a flow→links mapping F, a link→flows
// mapping L (kept as the transpose of F), a link→capacity mapping C, and a
// flow→minimum-rate mapping M.
//
// A Store is constructed once from an Input and owned exclusively by a
// single solve. It keeps a pristine copy of the original F/L/C/M alongside
// the mutable, reduced copies so that precedence-graph construction can
// query original adjacency independently of how far the peeling loop has
// progressed (see ConnectedLinks vs. HasSharedFlows).
//
// Removal is a logical operation: RemoveLinkAndFlows purges a link and
// every flow currently on it, charges their committed rate against the
// flows' other links, and purges any link left at (approximately) zero
// capacity or with no remaining flows. Nothing is ever un-removed.
package nss
