// Command bpgsolve reads a network description as JSON on stdin, runs the
// BPG engine, and writes the resulting precedence graph and flow rates as
// JSON on stdout (SPEC_FULL.md §6, §13).
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/g2-testbed/bpgsolver/bpg"
	"github.com/g2-testbed/bpgsolver/nss"
)

type request struct {
	F        map[string][]string `json:"f"`
	C        map[string]float64  `json:"c"`
	L        map[string][]string `json:"l,omitempty"`
	M        map[string]float64  `json:"m,omitempty"`
	NumLinks int                 `json:"num_links,omitempty"`
}

type edgeJSON struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type response struct {
	Levels        int                           `json:"levels"`
	Vertices      map[string]map[string]float64 `json:"vertices"`
	DirectEdges   map[string][]edgeJSON         `json:"direct_edges"`
	IndirectEdges map[string][]edgeJSON         `json:"indirect_edges"`
	FlowRates     []bpg.FlowRate                `json:"flow_rates"`
	JainIndex     float64                       `json:"jain_fairness_index"`
}

func main() {
	epsilon := flag.Float64("epsilon", 1e-8, "relative tolerance used throughout the solve")
	verbose := flag.Bool("v", false, "trace each peeling level to stderr")
	flag.Parse()

	if err := run(os.Stdin, os.Stdout, *epsilon, *verbose); err != nil {
		log.Fatalf("bpgsolve: %v", err)
	}
}

func run(in io.Reader, out io.Writer, epsilon float64, verbose bool) error {
	var req request
	dec := json.NewDecoder(in)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return fmt.Errorf("decode request: %w", err)
	}

	store, err := nss.New(nss.Input{
		F: req.F, C: req.C, L: req.L, M: req.M, NumLinks: req.NumLinks,
	}, nss.Options{
		Epsilon: epsilon,
		Warnf:   func(format string, args ...any) { fmt.Fprintf(os.Stderr, "nss: "+format+"\n", args...) },
	})
	if err != nil {
		return fmt.Errorf("build network state: %w", err)
	}

	opts := bpg.Options{SLFAEpsilon: epsilon, PeelEpsilon: epsilon}
	if verbose {
		opts.Trace = func(level int, peeled []string, advertised map[string]float64) {
			fmt.Fprintf(os.Stderr, "level %d: peeled %v advertised=%v\n", level, peeled, advertised)
		}
	}

	result, err := bpg.Compute(store, opts)
	if err != nil {
		return fmt.Errorf("compute: %w", err)
	}

	resp := response{
		Levels:        result.Level,
		Vertices:      make(map[string]map[string]float64, result.Level),
		DirectEdges:   make(map[string][]edgeJSON, result.Level),
		IndirectEdges: make(map[string][]edgeJSON, result.Level),
		FlowRates:     result.OrderedFlowRates(),
		JainIndex:     bpg.JainFairnessIndex(result.FlowRates),
	}
	for level, vtx := range result.Vertices {
		resp.Vertices[levelKey(level)] = vtx
	}
	for level, edges := range result.DirectEdges {
		resp.DirectEdges[levelKey(level)] = toEdgeJSON(edges)
	}
	for level, edges := range result.IndirectEdges {
		resp.IndirectEdges[levelKey(level)] = toEdgeJSON(edges)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}

func levelKey(level int) string {
	return fmt.Sprintf("%d", level)
}

func toEdgeJSON(edges []bpg.Edge) []edgeJSON {
	out := make([]edgeJSON, len(edges))
	for i, e := range edges {
		out[i] = edgeJSON{From: e.From, To: e.To}
	}
	return out
}
