package fca_test

import (
	"github.com/YuminosukeSato/gofca/fca"
)

type pair struct {
	Extent []int
	Intent []int
}

func pairs(concepts []fca.Concept) []pair {
	out := make([]pair, len(concepts))
	for i, c := range concepts {
		out[i] = pair{Extent: c.Extent().Indices(), Intent: c.Intent().Indices()}
	}
	return out
}

func mustContext(objects, attributes []string, rows [][]int) *fca.FormalContext {
	c, err := fca.NewFormalContextFromInts(objects, attributes, rows)
	if err != nil {
		panic(err)
	}
	return c
}

// saturated has one attribute shared by every object, so Closure(∅) = G.
func saturated() *fca.FormalContext {
	return mustContext([]string{"a", "b"}, []string{"x"}, [][]int{{1}, {1}})
}

func labels(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = prefix + string(rune('a'+i))
	}
	return out
}
