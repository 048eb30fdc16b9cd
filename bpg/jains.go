package bpg

// JainFairnessIndex computes Jain's fairness index over a set of rates:
//
//	J(x) = (Σxᵢ)² / (n · Σxᵢ²)
//
// J ranges from 1/n (maximally unfair, all capacity to one flow) to 1
// (perfectly fair, all flows equal). An empty rates map returns 1 by
// convention (vacuously fair). This supplements the distilled
// specification's flow-rate output with the summary statistic the
// original implementation reported alongside it.
func JainFairnessIndex(rates map[string]float64) float64 {
	n := len(rates)
	if n == 0 {
		return 1
	}
	var sum, sumSq float64
	for _, r := range rates {
		sum += r
		sumSq += r * r
	}
	if sumSq == 0 {
		return 1
	}
	return (sum * sum) / (float64(n) * sumSq)
}
