package fca

import (
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Statistics summarizes a context and its concepts.
type Statistics struct {
	Objects    int     `json:"objects" yaml:"objects"`
	Attributes int     `json:"attributes" yaml:"attributes"`
	Density    float64 `json:"density" yaml:"density"`
	Concepts   int     `json:"concepts" yaml:"concepts"`

	MeanExtent float64 `json:"mean_extent" yaml:"mean_extent"`
	MeanIntent float64 `json:"mean_intent" yaml:"mean_intent"`
	MaxExtent  int     `json:"max_extent" yaml:"max_extent"`
	MaxIntent  int     `json:"max_intent" yaml:"max_intent"`

	// ExtentSizes maps an extent size to the number of concepts with that
	// size; IntentSizes likewise.
	ExtentSizes map[int]int `json:"extent_sizes" yaml:"extent_sizes"`
	IntentSizes map[int]int `json:"intent_sizes" yaml:"intent_sizes"`
}

// Summarize computes Statistics for concepts of c.
func Summarize(c *FormalContext, concepts []Concept) Statistics {
	s := Statistics{
		Objects:     c.NumObjects(),
		Attributes:  c.NumAttributes(),
		Density:     c.Density(),
		Concepts:    len(concepts),
		ExtentSizes: make(map[int]int),
		IntentSizes: make(map[int]int),
	}
	if len(concepts) == 0 {
		return s
	}

	extents := make([]float64, len(concepts))
	intents := make([]float64, len(concepts))
	for i, concept := range concepts {
		e, n := concept.extent.Len(), concept.intent.Len()
		extents[i], intents[i] = float64(e), float64(n)
		s.ExtentSizes[e]++
		s.IntentSizes[n]++
	}
	s.MeanExtent = stat.Mean(extents, nil)
	s.MeanIntent = stat.Mean(intents, nil)
	s.MaxExtent = int(floats.Max(extents))
	s.MaxIntent = int(floats.Max(intents))
	return s
}

// Distribution returns the sizes present in hist in ascending order together
// with their counts.
func Distribution(hist map[int]int) (sizes, counts []int) {
	for size := range hist {
		sizes = append(sizes, size)
	}
	slices.Sort(sizes)
	counts = make([]int, len(sizes))
	for i, size := range sizes {
		counts[i] = hist[size]
	}
	return sizes, counts
}
