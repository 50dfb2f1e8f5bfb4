package fca

import (
	"github.com/YuminosukeSato/gofca/core/indexset"
)

// ClosureSample records the Galois operators applied to one object set.
type ClosureSample struct {
	Set     indexset.Set
	Up      indexset.Set
	Closure indexset.Set
	Closed  bool
}

// SampleClosures evaluates Up, Closure and IsClosed for each set.
func (c *FormalContext) SampleClosures(sets ...indexset.Set) []ClosureSample {
	out := make([]ClosureSample, 0, len(sets))
	for _, s := range sets {
		up := c.Up(s)
		closure := c.Down(up)
		out = append(out, ClosureSample{
			Set:     s,
			Up:      up,
			Closure: closure,
			Closed:  closure.Equal(s),
		})
	}
	return out
}

// DefaultSamples returns the demonstration sets ∅, {0}, {1}, {0, 1}, {0, 2}
// and G, dropping those that reference objects c does not have.
func DefaultSamples(c *FormalContext) []indexset.Set {
	candidates := []indexset.Set{
		{},
		indexset.New(0),
		indexset.New(1),
		indexset.New(0, 1),
		indexset.New(0, 2),
		c.AllObjects(),
	}
	out := candidates[:0]
	for _, s := range candidates {
		if c.CheckObjects(s) == nil {
			out = append(out, s)
		}
	}
	return out
}
