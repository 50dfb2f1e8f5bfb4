// Package lattice orders formal concepts into their concept lattice.
//
// Concepts are nodes of a gonum directed graph with an edge from every concept
// to each of its upper covers: (A1, B1) is covered by (A2, B2) when A1 ⊂ A2
// and no concept lies strictly between them. The graph is the Hasse diagram of
// the lattice; the bottom concept has the smallest extent and the top concept
// the largest.
package lattice

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/YuminosukeSato/gofca/core/indexset"
	"github.com/YuminosukeSato/gofca/fca"
	"github.com/YuminosukeSato/gofca/pkg/errors"
)

// Edge is one covering pair, identified by concept indices.
type Edge struct {
	Lower int
	Upper int
}

// Lattice is the covering relation of a complete set of concepts. Node i of
// the graph is concept i of the input slice.
type Lattice struct {
	concepts []fca.Concept
	graph    *simple.DirectedGraph
	byExtent map[string]int
	byIntent map[string]int
	top      int
	bottom   int
}

// Build computes the covering relation of concepts. The input must be the
// full concept set of one context, as returned by an fca.Enumerator.
func Build(concepts []fca.Concept) (*Lattice, error) {
	if len(concepts) == 0 {
		return nil, errors.WithStack(errors.ErrEmptyData)
	}

	l := &Lattice{
		concepts: slices.Clone(concepts),
		graph:    simple.NewDirectedGraph(),
		byExtent: make(map[string]int, len(concepts)),
		byIntent: make(map[string]int, len(concepts)),
	}
	for i, c := range l.concepts {
		if j, dup := l.byExtent[c.Extent().Key()]; dup {
			return nil, errors.NewValidationError("concepts",
				fmt.Sprintf("concept %d repeats the extent of concept %d", i, j), c.String())
		}
		l.byExtent[c.Extent().Key()] = i
		l.byIntent[c.Intent().Key()] = i
		l.graph.AddNode(simple.Node(i))
	}

	n := len(l.concepts)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if l.covers(i, j) {
				l.graph.SetEdge(l.graph.NewEdge(simple.Node(i), simple.Node(j)))
			}
		}
	}

	l.top, l.bottom = -1, -1
	for i := range l.concepts {
		if l.graph.From(int64(i)).Len() == 0 {
			if l.top >= 0 {
				return nil, errors.NewValidationError("concepts", "no unique top concept", n)
			}
			l.top = i
		}
		if l.graph.To(int64(i)).Len() == 0 {
			if l.bottom >= 0 {
				return nil, errors.NewValidationError("concepts", "no unique bottom concept", n)
			}
			l.bottom = i
		}
	}
	return l, nil
}

// covers reports whether concept j is an upper cover of concept i.
func (l *Lattice) covers(i, j int) bool {
	lower, upper := l.concepts[i].Extent(), l.concepts[j].Extent()
	if !lower.IsProperSubsetOf(upper) {
		return false
	}
	for k, c := range l.concepts {
		if k == i || k == j {
			continue
		}
		if lower.IsProperSubsetOf(c.Extent()) && c.Extent().IsProperSubsetOf(upper) {
			return false
		}
	}
	return true
}

// Len returns the number of concepts.
func (l *Lattice) Len() int { return len(l.concepts) }

// Concept returns concept i.
func (l *Lattice) Concept(i int) fca.Concept { return l.concepts[i] }

// Concepts returns all concepts in input order.
func (l *Lattice) Concepts() []fca.Concept { return slices.Clone(l.concepts) }

// Top returns the index of the concept with the largest extent.
func (l *Lattice) Top() int { return l.top }

// Bottom returns the index of the concept with the smallest extent.
func (l *Lattice) Bottom() int { return l.bottom }

// Graph exposes the Hasse diagram. Edges point from lower to upper concepts.
func (l *Lattice) Graph() graph.Directed { return l.graph }

// UpperCovers returns the indices of the concepts covering i, ascending.
func (l *Lattice) UpperCovers(i int) []int { return ids(l.graph.From(int64(i))) }

// LowerCovers returns the indices of the concepts covered by i, ascending.
func (l *Lattice) LowerCovers(i int) []int { return ids(l.graph.To(int64(i))) }

func ids(it graph.Nodes) []int {
	out := make([]int, 0, it.Len())
	for it.Next() {
		out = append(out, int(it.Node().ID()))
	}
	slices.Sort(out)
	return out
}

// Edges returns the covering relation ordered by lower, then upper index.
func (l *Lattice) Edges() []Edge {
	var edges []Edge
	for i := range l.concepts {
		for _, j := range l.UpperCovers(i) {
			edges = append(edges, Edge{Lower: i, Upper: j})
		}
	}
	return edges
}

// Levels groups concept indices by extent size, smallest extents first.
func (l *Lattice) Levels() [][]int {
	bySize := make(map[int][]int)
	for i, c := range l.concepts {
		bySize[c.Extent().Len()] = append(bySize[c.Extent().Len()], i)
	}
	sizes := make([]int, 0, len(bySize))
	for size := range bySize {
		sizes = append(sizes, size)
	}
	slices.Sort(sizes)

	levels := make([][]int, len(sizes))
	for k, size := range sizes {
		levels[k] = bySize[size]
	}
	return levels
}

// LinearExtension returns all concept indices ordered so that every concept
// precedes its upper covers. Ties are broken by index.
func (l *Lattice) LinearExtension() ([]int, error) {
	sorted, err := topo.SortStabilized(l.graph, func(nodes []graph.Node) {
		slices.SortFunc(nodes, func(a, b graph.Node) int {
			return int(a.ID() - b.ID())
		})
	})
	if err != nil {
		return nil, errors.Wrap(err, "linear extension")
	}
	order := make([]int, len(sorted))
	for k, n := range sorted {
		order[k] = int(n.ID())
	}
	return order, nil
}

// Meet returns the infimum of concepts i and j: the concept whose extent is
// the intersection of their extents.
func (l *Lattice) Meet(i, j int) (int, bool) {
	k, ok := l.byExtent[l.concepts[i].Extent().Intersect(l.concepts[j].Extent()).Key()]
	return k, ok
}

// Join returns the supremum of concepts i and j: the concept whose intent is
// the intersection of their intents.
func (l *Lattice) Join(i, j int) (int, bool) {
	k, ok := l.byIntent[l.concepts[i].Intent().Intersect(l.concepts[j].Intent()).Key()]
	return k, ok
}

// Find returns the index of the concept with the given extent.
func (l *Lattice) Find(extent indexset.Set) (int, bool) {
	k, ok := l.byExtent[extent.Key()]
	return k, ok
}
