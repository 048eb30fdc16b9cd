package bpg

import "errors"

// ErrEmptyInput indicates the engine was handed a Store with no active links.
var ErrEmptyInput = errors.New("bpg: empty input")

// ErrDesync is an ASSERTION-class error: L was found to be out of sync
// with F (spec.md §3 invariant "L is the transpose of F at all times").
// It should be unreachable; nss maintains the invariant internally.
var ErrDesync = errors.New("bpg: L/F desynchronized")

// Edge is a (from, to) precedence pair: the link peeled earlier (From) is
// the tighter bottleneck relative to the link peeled later (To).
type Edge struct {
	From string
	To   string
}

// Options configures numerical tolerance and optional diagnostics.
type Options struct {
	// SLFAEpsilon is forwarded to every slfa.Solve call. Default 1e-8.
	SLFAEpsilon float64
	// PeelEpsilon is used for the min-advertised-rate peel comparison and
	// the advertised-rate-equality checks in edge computation. Default 1e-8.
	PeelEpsilon float64
	// Warnf is accepted but not used by Compute: it is not forwarded to the
	// Store, whose negative-capacity warnings go to the nss.Options.Warnf
	// the Store was built with.
	Warnf func(format string, args ...any)
	// Trace, if non-nil, is called once per level after peeling, with the
	// links peeled at that level and their advertised rates (SPEC_FULL.md §11
	// "Per-level human-readable tracing", supplementing the distillation).
	Trace func(level int, peeled []string, advertised map[string]float64)
}

func (o Options) normalize() Options {
	if o.SLFAEpsilon <= 0 {
		o.SLFAEpsilon = 1e-8
	}
	if o.PeelEpsilon <= 0 {
		o.PeelEpsilon = 1e-8
	}
	if o.Warnf == nil {
		o.Warnf = func(string, ...any) {}
	}
	return o
}

// FlowRate pairs a flow id with its final fair rate, used by
// Result.OrderedFlowRates for deterministic iteration (spec.md §6:
// "flow_rates ... iteration-ordered by flow id ascending").
type FlowRate struct {
	Flow string
	Rate float64
}

// Result is the BPG solve's output (spec.md §6 "Output schema").
type Result struct {
	// Level is the total number of peeling levels.
	Level int
	// Vertices maps level -> (link -> advertised rate at the level it was peeled).
	Vertices map[int]map[string]float64
	// DirectEdges maps level -> direct precedence edges attributed to the
	// level whose Step C delta-potential set produced them; each edge is
	// appended while the following level peels its target link.
	DirectEdges map[int][]Edge
	// IndirectEdges mirrors DirectEdges for indirect precedence edges.
	IndirectEdges map[int][]Edge
	// FlowRates maps flow id -> final fair rate.
	FlowRates map[string]float64
}

// OrderedFlowRates returns Result.FlowRates as a flow-id-ascending slice.
func (r *Result) OrderedFlowRates() []FlowRate {
	out := make([]FlowRate, 0, len(r.FlowRates))
	for f, rate := range r.FlowRates {
		out = append(out, FlowRate{Flow: f, Rate: rate})
	}
	sortFlowRates(out)
	return out
}
