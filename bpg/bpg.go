package bpg

import (
	"fmt"
	"math"
	"sort"

	"github.com/g2-testbed/bpgsolver/internal/tol"
	"github.com/g2-testbed/bpgsolver/nss"
	"github.com/g2-testbed/bpgsolver/slfa"
)

// Compute runs the full peeling loop to exhaustion and returns the
// resulting precedence graph plus every flow's final fair rate. store is
// consumed: by the time Compute returns (success or failure) its active
// state no longer reflects a usable network, so callers must build a fresh
// *nss.Store per call (spec.md §5).
//
// Edge attribution follows spec.md §4.3 Step C's delta_all/i_all
// potential-precedent sets rather than re-deriving adjacency after the
// fact: at the end of every level, delta_l/i_l record, for each link still
// active going into the next level, which of this level's peeled links
// would precede it (by pristine adjacency, or by a shared pristine
// witness), judged by strictly lower advertised rates in this level's
// Step A scores. When
// a link is later peeled, the edges predicted for it by the *previous*
// level's delta/i sets are appended to that previous level's edge lists —
// this is why an edge like (1, 2) in scenario S2 is recorded under
// direct_edges[1] even though link 2 does not peel until level 2.
func Compute(store *nss.Store, opts Options) (*Result, error) {
	opts = opts.normalize()
	if store.IsEmpty() {
		return nil, ErrEmptyInput
	}

	res := &Result{
		Vertices:      make(map[int]map[string]float64),
		DirectEdges:   make(map[int][]Edge),
		IndirectEdges: make(map[int][]Edge),
		FlowRates:     make(map[string]float64),
	}

	// prevDelta/prevIndirect are delta_all[level-1]/i_all[level-1]: level 0
	// is empty for every initially active link (spec.md §4.3 "State").
	prevDelta := make(map[string][]string)
	prevIndirect := make(map[string][]string)

	level := 0
	for !store.IsEmpty() {
		level++

		links := store.ActiveLinks()
		advertised := make(map[string]float64, len(links))
		solved := make(map[string]slfa.Result, len(links))
		for _, link := range links {
			flows, err := store.FlowsOf(link)
			if err != nil {
				return nil, fmt.Errorf("bpg: %w", err)
			}
			capacity, err := store.CapacityOf(link)
			if err != nil {
				return nil, fmt.Errorf("bpg: %w", err)
			}
			minRates, err := store.MinRates(flows)
			if err != nil {
				return nil, fmt.Errorf("bpg: %w", err)
			}
			sol, err := slfa.Solve(flows, capacity, minRates, slfa.Options{Epsilon: opts.SLFAEpsilon})
			if err != nil {
				return nil, fmt.Errorf("bpg: link %q: %w", link, err)
			}
			advertised[link] = sol.Advertised
			solved[link] = sol
		}

		lSnap, fSnap := store.SnapshotLF()

		vtx := make(map[string]float64)
		var removedAtLevel []string // R in spec.md §4.3 Step C

		record := func(link string) error {
			sol := solved[link]
			for flow, rate := range sol.Rates {
				res.FlowRates[flow] = rate
			}
			vtx[link] = advertised[link]
			removedAtLevel = append(removedAtLevel, link)
			for _, k := range prevDelta[link] {
				res.DirectEdges[level-1] = append(res.DirectEdges[level-1], Edge{From: k, To: link})
			}
			for _, k := range prevIndirect[link] {
				res.IndirectEdges[level-1] = append(res.IndirectEdges[level-1], Edge{From: k, To: link})
			}

			cascaded, zeroed, err := store.RemoveLinkAndFlows(link, sol.Rates)
			if err != nil {
				return fmt.Errorf("bpg: %w", err)
			}
			for flow := range zeroed {
				if _, already := res.FlowRates[flow]; !already {
					res.FlowRates[flow] = 0
				}
			}
			// A cascaded link never went through its own peel test this
			// level — remove_link_and_flows purged it as a side effect of
			// another link's flows clearing out. It still needs a vertex
			// (spec.md §8 T6) and still participates in this level's R for
			// Step C, so it is recorded exactly like an explicit peel,
			// using the advertised rate it held at this level's Step A.
			for _, c := range cascaded {
				if _, already := vtx[c]; already {
					continue
				}
				rate, ok := advertised[c]
				if !ok {
					rate = 0
				}
				vtx[c] = rate
				removedAtLevel = append(removedAtLevel, c)
				for _, k := range prevDelta[c] {
					res.DirectEdges[level-1] = append(res.DirectEdges[level-1], Edge{From: k, To: c})
				}
				for _, k := range prevIndirect[c] {
					res.IndirectEdges[level-1] = append(res.IndirectEdges[level-1], Edge{From: k, To: c})
				}
			}
			return nil
		}

		// Step B: serial peeling. Scan the active set in sorted order;
		// peel the first link whose advertised rate is not exceeded by any
		// snapshot-neighbor's, then restart the scan from scratch. Exit
		// once a full scan peels nothing (spec.md §4.3 Step B, "Determinism
		// & tie-breaking" #2).
		for {
			active := store.ActiveLinks()
			peeled := ""
			for _, link := range active {
				neighbors, err := store.ConnectedLinks(link, lSnap, fSnap)
				if err != nil {
					return nil, fmt.Errorf("bpg: %w", err)
				}
				isMin := true
				for _, other := range neighbors {
					if strictlyLess(advertised[other], advertised[link], opts.PeelEpsilon) {
						isMin = false
						break
					}
				}
				if isMin {
					peeled = link
					break
				}
			}
			if peeled == "" {
				break
			}
			if err := record(peeled); err != nil {
				return nil, err
			}
		}
		if len(removedAtLevel) == 0 {
			// A full scan found no local minimum among links scored this
			// level: the connectivity graph and the advertised-rate
			// ordering have gone out of sync, which should be unreachable.
			return nil, fmt.Errorf("bpg: level %d: %w", level, ErrDesync)
		}

		res.Vertices[level] = vtx

		if opts.Trace != nil {
			opts.Trace(level, append([]string(nil), removedAtLevel...), cloneFloatMap(vtx))
		}

		// Step C: precedence-potential sets for links still active going
		// into the next level (spec.md §4.3 Step C).
		delta, indirect, err := potentialSets(store, store.ActiveLinks(), removedAtLevel, advertised, opts.PeelEpsilon)
		if err != nil {
			return nil, err
		}
		prevDelta, prevIndirect = delta, indirect
	}
	res.Level = level

	for _, edges := range res.DirectEdges {
		sortEdges(edges)
	}
	for _, edges := range res.IndirectEdges {
		sortEdges(edges)
	}

	return res, nil
}

// potentialSets computes delta_l and i_l per spec.md §4.3 Step C: for each
// remaining link i, delta_l[i] holds every link j in R that shares a
// pristine flow with i and scored a strictly lower advertised rate; i_l[i]
// holds every link j in R that does NOT share a pristine flow with i but
// does share one (via pristine adjacency) with some other still-remaining
// link k whose own advertised rate was strictly lower than i's.
func potentialSets(store *nss.Store, remaining, removedAtLevel []string, advertised map[string]float64, eps float64) (delta, indirect map[string][]string, err error) {
	delta = make(map[string][]string)
	indirect = make(map[string][]string)
	for _, i := range remaining {
		for _, j := range removedAtLevel {
			shares, err := store.HasSharedFlows(i, j, true)
			if err != nil {
				return nil, nil, fmt.Errorf("bpg: %w", err)
			}
			if shares {
				if strictlyLess(advertised[j], advertised[i], eps) {
					delta[i] = append(delta[i], j)
				}
				continue
			}
			for _, k := range remaining {
				if k == i {
					continue
				}
				sharesIK, err := store.HasSharedFlows(i, k, true)
				if err != nil {
					return nil, nil, fmt.Errorf("bpg: %w", err)
				}
				if !sharesIK {
					continue
				}
				sharesJK, err := store.HasSharedFlows(j, k, true)
				if err != nil {
					return nil, nil, fmt.Errorf("bpg: %w", err)
				}
				if sharesJK && strictlyLess(advertised[k], advertised[i], eps) {
					indirect[i] = append(indirect[i], j)
					break
				}
			}
		}
		sort.Strings(delta[i])
		sort.Strings(indirect[i])
	}
	return delta, indirect, nil
}

// strictlyLess reports whether a < b outside of eps relative tolerance, via
// the shared internal/tol comparison (spec.md §9's single-epsilon rule).
func strictlyLess(a, b, eps float64) bool {
	if approxEqAdvertised(a, b, eps) {
		return false
	}
	return a < b
}

// approxEqAdvertised compares two advertised rates under the engine's
// tolerance, treating +Inf as equal to +Inf — tol.Eq alone would compare
// Inf-Inf, which is NaN, so that case is special-cased before delegating.
func approxEqAdvertised(a, b, eps float64) bool {
	if math.IsInf(a, 1) && math.IsInf(b, 1) {
		return true
	}
	if math.IsInf(a, 1) != math.IsInf(b, 1) {
		return false
	}
	return tol.Eq(a, b, eps)
}

func sortEdges(edges []Edge) {
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})
}

func cloneFloatMap(src map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

func sortFlowRates(fr []FlowRate) {
	sort.Slice(fr, func(i, j int) bool { return fr[i].Flow < fr[j].Flow })
}
