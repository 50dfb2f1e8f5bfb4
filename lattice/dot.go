package lattice

import (
	"strconv"

	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/YuminosukeSato/gofca/fca"
	"github.com/YuminosukeSato/gofca/pkg/errors"
)

type dotNode struct {
	id    int64
	label string
}

func (n dotNode) ID() int64 { return n.id }
func (n dotNode) DOTID() string { return "c" + strconv.FormatInt(n.id, 10) }
func (n dotNode) Attributes() []encoding.Attribute {
	return []encoding.Attribute{{Key: "label", Value: n.label}}
}

// MarshalDOT renders the Hasse diagram in Graphviz DOT format with edges
// pointing upwards. label formats each concept; nil uses Concept.String.
func (l *Lattice) MarshalDOT(name string, label func(fca.Concept) string) ([]byte, error) {
	if label == nil {
		label = fca.Concept.String
	}

	g := simple.NewDirectedGraph()
	for i, c := range l.concepts {
		g.AddNode(dotNode{id: int64(i), label: label(c)})
	}
	for _, e := range l.Edges() {
		g.SetEdge(g.NewEdge(g.Node(int64(e.Lower)), g.Node(int64(e.Upper))))
	}

	out, err := dot.Marshal(g, name, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "marshal lattice")
	}
	return out, nil
}
