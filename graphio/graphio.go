package graphio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/search"
	"gopkg.in/yaml.v3"
)

// Sentinel errors for document decoding.
var (
	// ErrEmptyDocument is returned when a graph document has neither
	// edges nor weighted adjacency.
	ErrEmptyDocument = errors.New("graphio: document has no edges")

	// ErrBadArc is returned for an arc with an empty target.
	ErrBadArc = errors.New("graphio: arc has no target")

	// ErrNoQueries is returned when a query document lists nothing.
	ErrNoQueries = errors.New("graphio: no queries")

	// ErrInconsistentViews is returned when a document gives both edges and
	// weighted adjacency and they disagree on some source's targets.
	ErrInconsistentViews = errors.New("graphio: edges and weighted disagree")
)

// DefaultWeight is the weight given to edges listed without one.
const DefaultWeight = 1.0

// Document is a decoded graph document.
type Document struct {
	Directed bool
	Graph    core.Graph
	Weighted core.WeightedGraph
}

// Graphs returns the search views of d, including the transpose for
// bidirectional search (d.Graph itself when undirected).
func (d *Document) Graphs() search.Graphs {
	rev := d.Graph
	if d.Directed {
		rev = d.Graph.Reverse()
	}

	return search.Graphs{Unweighted: d.Graph, Weighted: d.Weighted, Reverse: rev}
}

type arcDoc struct {
	To     string   `yaml:"to"`
	Weight *float64 `yaml:"weight"`
}

type graphDoc struct {
	Directed *bool               `yaml:"directed"`
	Edges    map[string][]string `yaml:"edges"`
	Weighted map[string][]arcDoc `yaml:"weighted"`
}

type queryDoc struct {
	Algorithm string `yaml:"algorithm"`
	Start     string `yaml:"start"`
	Goal      string `yaml:"goal"`
	Depth     *int   `yaml:"depth"`
}

type queriesDoc struct {
	Queries []queryDoc `yaml:"queries"`
}

// Load reads a graph document from path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Decode reads a graph document from r.
func Decode(r io.Reader) (*Document, error) {
	var raw graphDoc
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}

		return nil, fmt.Errorf("graphio: decode: %w", err)
	}
	if len(raw.Edges) == 0 && len(raw.Weighted) == 0 {
		return nil, ErrEmptyDocument
	}

	doc := &Document{Directed: raw.Directed == nil || *raw.Directed}

	var wg core.WeightedGraph
	if len(raw.Weighted) > 0 {
		wg = make(core.WeightedGraph, len(raw.Weighted))
		for u, arcs := range raw.Weighted {
			out := make([]core.Arc, 0, len(arcs))
			for _, a := range arcs {
				if a.To == "" {
					return nil, fmt.Errorf("%w: from %q", ErrBadArc, u)
				}
				w := DefaultWeight
				if a.Weight != nil {
					w = *a.Weight
				}
				out = append(out, core.Arc{To: a.To, Weight: w})
			}
			wg[u] = out
		}
	}

	var g core.Graph
	if len(raw.Edges) > 0 {
		g = make(core.Graph, len(raw.Edges))
		for u, nbrs := range raw.Edges {
			for _, v := range nbrs {
				if v == "" {
					return nil, fmt.Errorf("%w: from %q", ErrBadArc, u)
				}
			}
			g[u] = slices.Clone(nbrs)
		}
	}

	switch {
	case g == nil:
		g = wg.Unweighted()
	case wg == nil:
		wg = g.Weighted(DefaultWeight)
	default:
		if err := sameTargets(g, wg.Unweighted()); err != nil {
			return nil, err
		}
	}

	if !doc.Directed {
		g = mirror(g)
		wg = mirrorWeighted(wg)
	}
	doc.Graph, doc.Weighted = g, wg

	return doc, nil
}

// sameTargets checks that every source reaches the same set of targets in
// both views. Order and parallel arcs are ignored.
func sameTargets(g, fromWeighted core.Graph) error {
	sources := make(map[string]struct{}, len(g)+len(fromWeighted))
	for u := range g {
		sources[u] = struct{}{}
	}
	for u := range fromWeighted {
		sources[u] = struct{}{}
	}
	for u := range sources {
		a := slices.Compact(slices.Sorted(slices.Values(g[u])))
		b := slices.Compact(slices.Sorted(slices.Values(fromWeighted[u])))
		if !slices.Equal(a, b) {
			return fmt.Errorf("%w: from %q: edges %v, weighted %v", ErrInconsistentViews, u, a, b)
		}
	}

	return nil
}

// mirror adds v → u for every u → v not already present. Sources are
// processed in sorted order so the added neighbors land deterministically.
func mirror(g core.Graph) core.Graph {
	out := make(core.Graph, len(g))
	for u, nbrs := range g {
		out[u] = slices.Clone(nbrs)
	}
	for _, u := range sortedSources(g) {
		for _, v := range g[u] {
			if !out.HasEdge(v, u) {
				out[v] = append(out[v], u)
			}
		}
	}

	return out
}

// mirrorWeighted adds v → u with the same weight for every u → v whose
// reverse is missing.
func mirrorWeighted(wg core.WeightedGraph) core.WeightedGraph {
	out := make(core.WeightedGraph, len(wg))
	for u, arcs := range wg {
		out[u] = slices.Clone(arcs)
	}
	has := func(from, to string) bool {
		return slices.ContainsFunc(out[from], func(a core.Arc) bool { return a.To == to })
	}
	keys := make([]string, 0, len(wg))
	for u := range wg {
		keys = append(keys, u)
	}
	slices.Sort(keys)
	for _, u := range keys {
		for _, a := range wg[u] {
			if !has(a.To, u) {
				out[a.To] = append(out[a.To], core.Arc{To: u, Weight: a.Weight})
			}
		}
	}

	return out
}

func sortedSources(g core.Graph) []string {
	keys := make([]string, 0, len(g))
	for u := range g {
		keys = append(keys, u)
	}
	slices.Sort(keys)

	return keys
}

// LoadQueries reads a query document from path.
func LoadQueries(path string) ([]search.Query, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open %s: %w", path, err)
	}
	defer f.Close()

	qs, err := DecodeQueries(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return qs, nil
}

// DecodeQueries reads a query document from r. DLS and IDDFS queries
// without a depth get search.DefaultDepth.
func DecodeQueries(r io.Reader) ([]search.Query, error) {
	var raw queriesDoc
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoQueries
		}

		return nil, fmt.Errorf("graphio: decode queries: %w", err)
	}
	if len(raw.Queries) == 0 {
		return nil, ErrNoQueries
	}

	out := make([]search.Query, 0, len(raw.Queries))
	for i, q := range raw.Queries {
		algo, err := search.ParseAlgorithm(q.Algorithm)
		if err != nil {
			return nil, fmt.Errorf("graphio: query %d: %w", i, err)
		}
		sq := search.Query{Algorithm: algo, Start: q.Start, Goal: q.Goal}
		if q.Depth != nil {
			sq.Depth = *q.Depth
		}
		if algo.UsesDepth() {
			if q.Depth == nil {
				sq.Depth = search.DefaultDepth
			}
			if sq.Depth < 0 {
				return nil, fmt.Errorf("graphio: query %d: depth %d: %w", i, sq.Depth, core.ErrNegativeDepth)
			}
		}
		out = append(out, sq)
	}

	return out, nil
}
