package nss

// Input is the external schema a topology/routing collaborator hands to a
// solve (spec.md §6 "Input schema").
//
// F maps flow id → ordered list of link ids the flow traverses. C maps link
// id → positive capacity. L and M are optional: if L is nil it is derived
// from F; if M is nil every flow gets a zero floor. NumLinks, if positive,
// adds every link id "0".."NumLinks-1" that is absent from C as a known link
// with an empty flow list, matching spec.md's "missing link ids in L are
// initialized to empty".
type Input struct {
	F        map[string][]string
	C        map[string]float64
	L        map[string][]string
	M        map[string]float64
	NumLinks int
}

// Options configures tolerance and diagnostics for a Store.
//
// Epsilon is the relative tolerance (spec.md §4.3 "Float equality") used
// for capacity-zero purges; the default is 1e-8. Warnf, if non-nil, is
// invoked once per transient negative-capacity event (spec.md §7); it is
// never invoked with fatal errors, only advisory ones.
type Options struct {
	Epsilon float64
	Warnf   func(format string, args ...any)
}

func (o Options) normalize() Options {
	if o.Epsilon <= 0 {
		o.Epsilon = 1e-8
	}
	if o.Warnf == nil {
		o.Warnf = func(string, ...any) {}
	}
	return o
}

// Store is the mutable Network State Store. It is constructed once by New
// and owned by exactly one solve for its entire lifetime; nothing in this
// package is safe for concurrent use (see SPEC_FULL.md §5).
type Store struct {
	opts Options

	// active, reduced state
	f map[string][]string  // flow -> links
	l map[string][]string  // link -> flows
	c map[string]float64   // link -> capacity
	m map[string]float64   // flow -> min rate

	// pristine, immutable-after-construction copies
	f0 map[string][]string
	l0 map[string][]string
	c0 map[string]float64
	m0 map[string]float64

	// allFlows/allLinks hold every id the Store was constructed with and are
	// never pruned: lookups of an id never seen fail with ErrUnknown*, while
	// lookups of a removed id succeed and report its (empty) active state.
	allFlows map[string]struct{}
	allLinks map[string]struct{}
}
