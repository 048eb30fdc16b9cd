package nss

import (
	"sort"
	"strconv"
)

// New validates in and constructs a Store with both the active and
// pristine views seeded from it. It fails fast (spec.md §7 "INPUT") before
// any mutation is possible: empty F, a flow naming an unknown link, or a
// link carrying flows with non-positive capacity all abort construction.
func New(in Input, opts Options) (*Store, error) {
	opts = opts.normalize()

	if len(in.F) == 0 {
		return nil, ErrEmptyInput
	}

	f := make(map[string][]string, len(in.F))
	allFlows := make(map[string]struct{}, len(in.F))
	for flow, route := range in.F {
		f[flow] = append([]string(nil), route...)
		allFlows[flow] = struct{}{}
	}

	allLinks := make(map[string]struct{}, len(in.C))
	c := make(map[string]float64, len(in.C))
	for link, cap := range in.C {
		c[link] = cap
		allLinks[link] = struct{}{}
	}
	if in.NumLinks > 0 {
		for i := 0; i < in.NumLinks; i++ {
			id := linkIndexID(i)
			if _, ok := allLinks[id]; !ok {
				allLinks[id] = struct{}{}
			}
		}
	}

	// validate routes name known links
	for flow, route := range f {
		for _, link := range route {
			if _, ok := allLinks[link]; !ok {
				return nil, &RouteError{Flow: flow, Link: link}
			}
		}
	}

	l := deriveOrCopyL(in.L, f, allLinks)

	// validate non-positive capacity on a link that carries flows
	for link := range allLinks {
		if len(l[link]) > 0 {
			if cap, ok := c[link]; !ok || cap <= 0 {
				return nil, &LinkCapacityError{Link: link, Capacity: cap}
			}
		}
	}

	m := make(map[string]float64, len(allFlows))
	for flow := range allFlows {
		m[flow] = 0
	}
	for flow, rate := range in.M {
		m[flow] = rate
	}

	s := &Store{
		opts:     opts,
		f:        f,
		l:        l,
		c:        c,
		m:        m,
		f0:       cloneListMap(f),
		l0:       cloneListMap(l),
		c0:       cloneFloatMap(c),
		m0:       cloneFloatMap(m),
		allFlows: allFlows,
		allLinks: allLinks,
	}
	return s, nil
}

// linkIndexID renders a positional link index the same way integer link ids
// arrive from a JSON-decoded Input (spec.md §6 treats link ids as opaque
// strings; NumLinks seeds numeric placeholders).
func linkIndexID(i int) string {
	return strconv.Itoa(i)
}

func deriveOrCopyL(given map[string][]string, f map[string][]string, allLinks map[string]struct{}) map[string][]string {
	l := make(map[string][]string, len(allLinks))
	for link := range allLinks {
		l[link] = nil
	}
	if given != nil {
		for link, flows := range given {
			l[link] = append([]string(nil), flows...)
		}
		return l
	}
	// derive from F, preserving insertion order per flow id ascending for determinism
	flowIDs := make([]string, 0, len(f))
	for flow := range f {
		flowIDs = append(flowIDs, flow)
	}
	sort.Strings(flowIDs)
	for _, flow := range flowIDs {
		for _, link := range f[flow] {
			l[link] = append(l[link], flow)
		}
	}
	return l
}

func cloneListMap(src map[string][]string) map[string][]string {
	dst := make(map[string][]string, len(src))
	for k, v := range src {
		dst[k] = append([]string(nil), v...)
	}
	return dst
}

func cloneFloatMap(src map[string]float64) map[string]float64 {
	dst := make(map[string]float64, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
