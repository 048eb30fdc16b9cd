package nss

import "sort"

// LinksOf returns the ordered list of link ids flow currently traverses.
// The slice is a defensive copy; callers may mutate it freely.
//
// Complexity: O(deg(flow)).
func (s *Store) LinksOf(flow string) ([]string, error) {
	if _, ok := s.allFlows[flow]; !ok {
		return nil, ErrUnknownFlow
	}
	return append([]string(nil), s.f[flow]...), nil
}

// FlowsOf returns the list of flow ids traversing link, in the order given
// by Input.L, or in ascending flow-id order when L was derived from F
// (spec.md §4.3 "Determinism & tie-breaking" #1: SLFA consumes this
// order). The slice is a defensive copy.
//
// Complexity: O(deg(link)).
func (s *Store) FlowsOf(link string) ([]string, error) {
	if _, ok := s.allLinks[link]; !ok {
		return nil, ErrUnknownLink
	}
	return append([]string(nil), s.l[link]...), nil
}

// CapacityOf returns link's current (active) capacity.
func (s *Store) CapacityOf(link string) (float64, error) {
	if _, ok := s.allLinks[link]; !ok {
		return 0, ErrUnknownLink
	}
	return s.c[link], nil
}

// MinRates returns the minimum rate of each flow in flows, in the same
// order, as a parallel slice.
func (s *Store) MinRates(flows []string) ([]float64, error) {
	out := make([]float64, len(flows))
	for i, flow := range flows {
		rate, ok := s.m[flow]
		if !ok {
			return nil, ErrUnknownFlow
		}
		out[i] = rate
	}
	return out, nil
}

// ConnectedLinks returns the sorted set of link ids that share at least one
// flow with link, excluding link itself. If lSnap/fSnap are non-nil they
// are used in place of the Store's current active state — the BPG engine
// snapshots L/F at the start of a peeling sub-round so that peeling one
// link within the round cannot change what "connected" meant for the
// links scanned earlier in the same round (spec.md §4.3 Step B).
//
// Complexity: O(deg(link) * avg-link-degree).
func (s *Store) ConnectedLinks(link string, lSnap, fSnap map[string][]string) ([]string, error) {
	l := s.l
	f := s.f
	if lSnap != nil {
		l = lSnap
	}
	if fSnap != nil {
		f = fSnap
	}
	flows, ok := l[link]
	if !ok {
		return nil, ErrUnknownLink
	}
	seen := make(map[string]struct{})
	for _, flow := range flows {
		for _, other := range f[flow] {
			if other != link {
				seen[other] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Strings(out)
	return out, nil
}

// HasSharedFlows reports whether a and b share at least one flow. When
// pristine is true it consults the original F⁰/L⁰ (required by spec.md
// §4.3 Step C, whose delta/indirect computation reasons about original
// adjacency, never the post-peel structure); otherwise it consults current
// active state.
func (s *Store) HasSharedFlows(a, b string, pristine bool) (bool, error) {
	l := s.l
	f := s.f
	if pristine {
		l = s.l0
		f = s.f0
	}
	flowsA, ok := l[a]
	if !ok {
		return false, ErrUnknownLink
	}
	if _, ok := l[b]; !ok {
		return false, ErrUnknownLink
	}
	for _, flow := range flowsA {
		for _, link := range f[flow] {
			if link == b {
				return true, nil
			}
		}
	}
	return false, nil
}

// ActiveLinks returns the sorted set of link ids with at least one
// remaining flow.
func (s *Store) ActiveLinks() []string {
	out := make([]string, 0, len(s.l))
	for link, flows := range s.l {
		if len(flows) > 0 {
			out = append(out, link)
		}
	}
	sort.Strings(out)
	return out
}

// IsEmpty reports whether no active links remain.
func (s *Store) IsEmpty() bool {
	for _, flows := range s.l {
		if len(flows) > 0 {
			return false
		}
	}
	return true
}

// SnapshotLF returns defensive copies of the current L and F maps, for use
// as the (lSnap, fSnap) arguments to ConnectedLinks during a peeling
// sub-round (spec.md §4.3 Step B).
func (s *Store) SnapshotLF() (l, f map[string][]string) {
	return cloneListMap(s.l), cloneListMap(s.f)
}
