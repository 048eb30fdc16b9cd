package nss

import (
	"sort"

	"github.com/g2-testbed/bpgsolver/internal/tol"
)

// UpdateCapacity adds delta (typically negative) to link's active capacity.
// A capacity driven below -Epsilon emits a WARN via Options.Warnf but never
// halts the solve (spec.md §7) — the subsequent purge pass in
// RemoveLinkAndFlows heals it. UpdateCapacity on an already-purged link is
// a no-op.
func (s *Store) UpdateCapacity(link string, delta float64) error {
	if _, ok := s.allLinks[link]; !ok {
		return ErrUnknownLink
	}
	cap, ok := s.c[link]
	if !ok {
		return nil // already purged
	}
	cap += delta
	s.c[link] = cap
	if cap < -s.opts.Epsilon {
		s.opts.Warnf("nss: link %q capacity went negative (%g) after update", link, cap)
	}
	return nil
}

// RemoveLinkAndFlows purges link and every flow currently traversing it,
// charging each removed flow's committed rate (from rates, keyed by flow
// id) against every other link on that flow's route. After the charge
// pass, any link left with (near-)zero capacity or no remaining flows is
// purged too — cascading until the state is stable.
//
// cascaded reports every OTHER link purged as a side effect of this call
// (in purge order) — the BPG engine must still record a vertex for each of
// these at the current level (using its last Step-A advertised rate) to
// satisfy spec.md §8 T6 (every link appears in exactly one level's vertex
// set), since nss has no notion of "level" and cannot record them itself.
// zeroed reports, with rate 0, every flow whose entire route was purged
// this way (spec.md §9 "Open question").
func (s *Store) RemoveLinkAndFlows(link string, rates map[string]float64) (cascaded []string, zeroed map[string]float64, err error) {
	if _, ok := s.allLinks[link]; !ok {
		return nil, nil, ErrUnknownLink
	}
	flows := append([]string(nil), s.l[link]...)
	for _, flow := range flows {
		rate := rates[flow]
		route := s.f[flow]
		for _, other := range route {
			if other == link {
				continue
			}
			if err := s.UpdateCapacity(other, -rate); err != nil {
				return nil, nil, err
			}
			s.l[other] = removeOne(s.l[other], flow)
		}
		delete(s.f, flow)
	}
	delete(s.l, link)
	delete(s.c, link)

	zeroed = make(map[string]float64)
	cascaded = s.purgeSubCapacityLinks(zeroed)
	return cascaded, zeroed, nil
}

// purgeSubCapacityLinks removes every link that is empty or at
// (near-)zero capacity, cascading: removing a link can empty another
// link's flow's route, which can in turn empty that route entirely. It
// returns the purged link ids in the order they were purged.
func (s *Store) purgeSubCapacityLinks(zeroed map[string]float64) []string {
	eps := s.opts.Epsilon
	var purged []string
	for {
		var toPurge []string
		for link, cap := range s.c {
			if len(s.l[link]) == 0 || tol.Zero(cap, eps) || cap < 0 {
				toPurge = append(toPurge, link)
			}
		}
		if len(toPurge) == 0 {
			return purged
		}
		sort.Strings(toPurge)
		for _, link := range toPurge {
			flows := s.l[link]
			for _, flow := range flows {
				route, ok := s.f[flow]
				if !ok {
					continue
				}
				route = removeOne(route, link)
				if len(route) == 0 {
					zeroed[flow] = 0
					delete(s.f, flow)
				} else {
					s.f[flow] = route
				}
			}
			delete(s.l, link)
			delete(s.c, link)
			purged = append(purged, link)
		}
	}
}

func removeOne(slice []string, id string) []string {
	out := slice[:0]
	for _, v := range slice {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
