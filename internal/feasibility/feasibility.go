package feasibility

import (
	"fmt"
	"math"
)

const (
	srcNode  = "\x00src"
	sinkNode = "\x00sink"
)

// Check builds the source/flow/link/sink network described in doc.go from
// routes (flow -> ordered link ids), minRates (flow -> floor) and
// capacities (link -> capacity), then runs Edmonds-Karp to see whether
// every floor can be met simultaneously.
func Check(routes map[string][]string, minRates map[string]float64, capacities map[string]float64, opts Options) (Report, error) {
	opts = opts.normalize()

	cap := make(map[string]map[string]float64)
	addEdge := func(u, v string, c float64) {
		if cap[u] == nil {
			cap[u] = make(map[string]float64)
		}
		cap[u][v] += c
	}

	var requiredFloor float64
	for flow, floor := range minRates {
		if floor < 0 {
			return Report{}, fmt.Errorf("feasibility: flow %q: %w", flow, ErrNegativeCapacity)
		}
		requiredFloor += floor
		flowNode := "flow:" + flow
		addEdge(srcNode, flowNode, floor)
		for _, link := range routes[flow] {
			addEdge(flowNode, "link:"+link, math.Inf(1))
		}
	}
	for link, c := range capacities {
		if c < 0 {
			return Report{}, fmt.Errorf("feasibility: link %q: %w", link, ErrNegativeCapacity)
		}
		addEdge("link:"+link, sinkNode, c)
	}

	var maxFlow float64
	for {
		path, bottleneck := bfsAugmentingPath(cap, srcNode, sinkNode, opts.Epsilon)
		if len(path) == 0 || bottleneck <= opts.Epsilon {
			break
		}
		if opts.Verbose {
			opts.Logf("feasibility: augmenting path %v with flow %g", path, bottleneck)
		}
		maxFlow += bottleneck
		for i := 0; i < len(path)-1; i++ {
			u, v := path[i], path[i+1]
			if !math.IsInf(cap[u][v], 1) {
				cap[u][v] -= bottleneck
			}
			addEdge(v, u, bottleneck)
		}
	}

	return Report{
		MaxFlow:       maxFlow,
		RequiredFloor: requiredFloor,
		Feasible:      maxFlow >= requiredFloor-opts.Epsilon,
	}, nil
}

// bfsAugmentingPath finds a shortest (fewest-hop) path from src to sink
// with strictly positive residual capacity along every edge, returning the
// path (inclusive of both endpoints) and its bottleneck capacity. An empty
// path means sink is unreachable.
func bfsAugmentingPath(cap map[string]map[string]float64, src, sink string, eps float64) ([]string, float64) {
	parent := map[string]string{src: src}
	queue := []string{src}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if u == sink {
			break
		}
		for v, c := range cap[u] {
			if c <= eps {
				continue
			}
			if _, seen := parent[v]; seen {
				continue
			}
			parent[v] = u
			queue = append(queue, v)
		}
	}
	if _, ok := parent[sink]; !ok {
		return nil, 0
	}

	var path []string
	for at := sink; ; {
		path = append([]string{at}, path...)
		if at == src {
			break
		}
		at = parent[at]
	}

	bottleneck := math.Inf(1)
	for i := 0; i < len(path)-1; i++ {
		if c := cap[path[i]][path[i+1]]; c < bottleneck {
			bottleneck = c
		}
	}
	return path, bottleneck
}
