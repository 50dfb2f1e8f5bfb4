package fca

import (
	"fmt"
	"strings"

	"github.com/YuminosukeSato/gofca/core/indexset"
)

// Concept is a formal concept (extent, intent). Concepts are only produced by
// a FormalContext or an enumerator, so every value satisfies
// Up(extent) = intent and Down(intent) = extent for the context it came from.
type Concept struct {
	extent indexset.Set
	intent indexset.Set
}

// Extent returns the object set of the concept.
func (c Concept) Extent() indexset.Set { return c.extent }

// Intent returns the attribute set of the concept.
func (c Concept) Intent() indexset.Set { return c.intent }

// Key identifies a concept by value and is suitable as a map key.
func (c Concept) Key() string {
	return c.extent.Key() + "|" + c.intent.Key()
}

// Equal reports whether both extents and both intents are equal.
func (c Concept) Equal(o Concept) bool {
	return c.extent.Equal(o.extent) && c.intent.Equal(o.intent)
}

func (c Concept) String() string {
	return fmt.Sprintf("(%s, %s)", c.extent, c.intent)
}

// LabeledConcept is a Concept with indices resolved to labels.
type LabeledConcept struct {
	Extent []string `json:"extent" yaml:"extent"`
	Intent []string `json:"intent" yaml:"intent"`
}

func (l LabeledConcept) String() string {
	return "({" + strings.Join(l.Extent, ", ") + "}, {" + strings.Join(l.Intent, ", ") + "})"
}

// Label resolves the indices of concept against this context's labels.
func (c *FormalContext) Label(concept Concept) LabeledConcept {
	return LabeledConcept{
		Extent: c.ObjectLabels(concept.extent),
		Intent: c.AttributeLabels(concept.intent),
	}
}

// Duplicates returns every concept that occurs in concepts more than once,
// reported once per extra occurrence in input order.
func Duplicates(concepts []Concept) []Concept {
	seen := make(map[string]struct{}, len(concepts))
	var dups []Concept
	for _, c := range concepts {
		k := c.Key()
		if _, ok := seen[k]; ok {
			dups = append(dups, c)
			continue
		}
		seen[k] = struct{}{}
	}
	return dups
}

// ReducedLabel returns the labels introduced at concept in the lattice
// diagram: the objects g with Closure({g}) equal to the extent and the
// attributes m with Down({m}) equal to the extent.
func (c *FormalContext) ReducedLabel(concept Concept) LabeledConcept {
	var out LabeledConcept
	for g := range concept.extent.All() {
		if c.Down(c.rows[g]).Equal(concept.extent) {
			out.Extent = append(out.Extent, c.objects[g])
		}
	}
	for m := range concept.intent.All() {
		if c.cols[m].Equal(concept.extent) {
			out.Intent = append(out.Intent, c.attributes[m])
		}
	}
	return out
}
