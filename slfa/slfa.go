package slfa

import (
	"math"

	"github.com/g2-testbed/bpgsolver/internal/tol"
)

// Solve computes the max-min fair split of capacity among flows, honoring
// each flow's minimum rate in minRates (same order as flows), per
// spec.md §4.2's water-filling-with-floors algorithm:
//
//  1. Compute the candidate equal share over whatever flows are still
//     unconstrained: s = (capacity - constrainedSum) / (n - constrainedCount).
//  2. Tentatively assign every unconstrained flow rate s.
//  3. Derive the advertised rate A from the tentative allocation:
//       - Σrᵢ not within tolerance of capacity  -> A = +Inf (not saturated)
//       - every rᵢ == minRates[i]                -> A = 0
//       - otherwise                               -> A = max rᵢ over rᵢ > minRates[i]
//  4. Pin every unconstrained flow whose tentative rate differs from
//     max(A, minRates[i]) to that floor-respecting value, and repeat. A
//     pass that pins nothing terminates the loop.
//
// Termination is bounded at n+1 passes (n pins, one to compute the final
// A once every flow is pinned); exceeding that bound returns
// ErrNonConvergent, an algorithmic-bug signal that should be unreachable.
//
// Solve does not validate capacity >= 0 itself — spec.md §4.2's edge case
// says the engine never calls Solve on a zero-capacity link still
// carrying flows; that link is purged by nss before reaching this layer.
func Solve(flows []string, capacity float64, minRates []float64, opts Options) (Result, error) {
	opts = opts.normalize()
	n := len(flows)
	r := make([]float64, n)
	constrained := make([]bool, n)
	constrainedSum := 0.0
	constrainedCount := 0

	var advertised float64
	for pass := 0; pass <= n; pass++ {
		unconstrainedCount := n - constrainedCount
		if unconstrainedCount > 0 {
			s := (capacity - constrainedSum) / float64(unconstrainedCount)
			for i := 0; i < n; i++ {
				if !constrained[i] {
					r[i] = s
				}
			}
		}

		total := 0.0
		for _, v := range r {
			total += v
		}

		switch {
		case !tol.Eq(total, capacity, opts.Epsilon):
			advertised = math.Inf(1)
		case allAtFloor(r, minRates, opts.Epsilon):
			advertised = 0
		default:
			advertised = maxAboveFloor(r, minRates, opts.Epsilon)
		}

		newlyConstrained := false
		for i := 0; i < n; i++ {
			if constrained[i] {
				continue
			}
			target := math.Max(advertised, minRates[i])
			if !tol.Eq(r[i], target, opts.Epsilon) {
				r[i] = target
				constrained[i] = true
				constrainedSum += target
				constrainedCount++
				newlyConstrained = true
			}
		}
		if !newlyConstrained {
			rates := make(map[string]float64, n)
			for i, f := range flows {
				rates[f] = r[i]
			}
			return Result{Rates: rates, Advertised: advertised}, nil
		}
	}
	return Result{}, ErrNonConvergent
}

func allAtFloor(r, minRates []float64, eps float64) bool {
	for i := range r {
		if !tol.Eq(r[i], minRates[i], eps) {
			return false
		}
	}
	return true
}

func maxAboveFloor(r, minRates []float64, eps float64) float64 {
	best := 0.0
	found := false
	for i := range r {
		if tol.LTE(r[i], minRates[i], eps) {
			continue
		}
		if !found || r[i] > best {
			best = r[i]
			found = true
		}
	}
	return best
}
