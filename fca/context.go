package fca

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/gofca/core/indexset"
	"github.com/YuminosukeSato/gofca/pkg/errors"
)

// FormalContext is the triple (G, M, I). It is immutable after construction.
type FormalContext struct {
	objects    []string
	attributes []string

	// rows[g] is the set of attributes of object g; cols[m] the set of
	// objects having attribute m.
	rows []indexset.Set
	cols []indexset.Set

	allObjects    indexset.Set
	allAttributes indexset.Set

	incidence *mat.Dense
	ones      int
}

// NewFormalContext builds a context from labels and a row-major boolean
// incidence matrix with one row per object and one column per attribute.
//
// Errors wrap errors.ErrInvalidContext when the matrix shape does not match
// the label lists or when a label is repeated.
func NewFormalContext(objects, attributes []string, incidence [][]bool) (*FormalContext, error) {
	const op = "NewFormalContext"
	if err := checkShape(op, len(objects), len(attributes), len(incidence), func(g int) int { return len(incidence[g]) }); err != nil {
		return nil, err
	}
	return build(op, objects, attributes, func(g, m int) (bool, error) {
		return incidence[g][m], nil
	})
}

// NewFormalContextFromInts is NewFormalContext for 0/1 integer matrices, the
// form used by context files. Any entry other than 0 or 1 is rejected.
func NewFormalContextFromInts(objects, attributes []string, incidence [][]int) (*FormalContext, error) {
	const op = "NewFormalContextFromInts"
	if err := checkShape(op, len(objects), len(attributes), len(incidence), func(g int) int { return len(incidence[g]) }); err != nil {
		return nil, err
	}
	return build(op, objects, attributes, func(g, m int) (bool, error) {
		switch v := incidence[g][m]; v {
		case 0:
			return false, nil
		case 1:
			return true, nil
		default:
			return false, errors.NewInvalidCellError(op, fmt.Sprintf("entry %d is not boolean", v), g, m)
		}
	})
}

// NewFormalContextFromMatrix builds a context from a |G|×|M| gonum matrix
// whose entries must be exactly 0 or 1.
func NewFormalContextFromMatrix(objects, attributes []string, m mat.Matrix) (*FormalContext, error) {
	const op = "NewFormalContextFromMatrix"
	if m == nil {
		return nil, errors.NewInvalidContextError(op, "nil incidence matrix")
	}
	r, c := m.Dims()
	if r != len(objects) {
		return nil, errors.WrapInvalidContext(op, "incidence rows do not match objects",
			errors.NewDimensionError(op, len(objects), r, 0))
	}
	if c != len(attributes) {
		return nil, errors.WrapInvalidContext(op, "incidence columns do not match attributes",
			errors.NewDimensionError(op, len(attributes), c, 1))
	}
	return build(op, objects, attributes, func(g, a int) (bool, error) {
		switch v := m.At(g, a); v {
		case 0:
			return false, nil
		case 1:
			return true, nil
		default:
			return false, errors.NewInvalidCellError(op, fmt.Sprintf("entry %g is not boolean", v), g, a)
		}
	})
}

func checkShape(op string, nObjects, nAttributes, nRows int, rowLen func(g int) int) error {
	if nRows != nObjects {
		return errors.WrapInvalidContext(op, "incidence rows do not match objects",
			errors.NewDimensionError(op, nObjects, nRows, 0))
	}
	for g := 0; g < nRows; g++ {
		if n := rowLen(g); n != nAttributes {
			return errors.WrapInvalidContext(op, fmt.Sprintf("row %d does not match attributes", g),
				errors.NewDimensionError(op, nAttributes, n, 1))
		}
	}
	return nil
}

func build(op string, objects, attributes []string, cell func(g, m int) (bool, error)) (*FormalContext, error) {
	if err := checkLabels(op, "object", objects); err != nil {
		return nil, err
	}
	if err := checkLabels(op, "attribute", attributes); err != nil {
		return nil, err
	}

	nG, nM := len(objects), len(attributes)
	rows := make([][]int, nG)
	cols := make([][]int, nM)
	var dense *mat.Dense
	if nG > 0 && nM > 0 {
		dense = mat.NewDense(nG, nM, nil)
	}

	ones := 0
	for g := 0; g < nG; g++ {
		for m := 0; m < nM; m++ {
			has, err := cell(g, m)
			if err != nil {
				return nil, err
			}
			if !has {
				continue
			}
			rows[g] = append(rows[g], m)
			cols[m] = append(cols[m], g)
			dense.Set(g, m, 1)
			ones++
		}
	}

	c := &FormalContext{
		objects:       append([]string(nil), objects...),
		attributes:    append([]string(nil), attributes...),
		rows:          make([]indexset.Set, nG),
		cols:          make([]indexset.Set, nM),
		allObjects:    indexset.Range(nG),
		allAttributes: indexset.Range(nM),
		incidence:     dense,
		ones:          ones,
	}
	for g := range rows {
		c.rows[g] = indexset.New(rows[g]...)
	}
	for m := range cols {
		c.cols[m] = indexset.New(cols[m]...)
	}
	return c, nil
}

func checkLabels(op, kind string, labels []string) error {
	seen := make(map[string]int, len(labels))
	for i, l := range labels {
		if j, dup := seen[l]; dup {
			return errors.NewInvalidContextError(op,
				fmt.Sprintf("duplicate %s label %q at %d and %d", kind, l, j, i))
		}
		seen[l] = i
	}
	return nil
}

// Objects returns a copy of the object labels G.
func (c *FormalContext) Objects() []string { return append([]string(nil), c.objects...) }

// Attributes returns a copy of the attribute labels M.
func (c *FormalContext) Attributes() []string { return append([]string(nil), c.attributes...) }

// NumObjects returns |G|.
func (c *FormalContext) NumObjects() int { return len(c.objects) }

// NumAttributes returns |M|.
func (c *FormalContext) NumAttributes() int { return len(c.attributes) }

// AllObjects returns G as an index set.
func (c *FormalContext) AllObjects() indexset.Set { return c.allObjects }

// AllAttributes returns M as an index set.
func (c *FormalContext) AllAttributes() indexset.Set { return c.allAttributes }

// Incident reports whether (g, m) ∈ I.
func (c *FormalContext) Incident(g, m int) bool { return c.rows[g].Contains(m) }

// Row returns the attributes of object g, i.e. Up({g}).
func (c *FormalContext) Row(g int) indexset.Set { return c.rows[g] }

// Column returns the objects having attribute m, i.e. Down({m}).
func (c *FormalContext) Column(m int) indexset.Set { return c.cols[m] }

// Matrix returns the incidence relation as a 0/1 matrix. It returns nil when
// G or M is empty since gonum has no zero-sized dense matrices.
func (c *FormalContext) Matrix() mat.Matrix {
	if c.incidence == nil {
		return nil
	}
	return mat.DenseCopyOf(c.incidence)
}

// Density returns |I| / (|G|·|M|), or 0 for an empty context.
func (c *FormalContext) Density() float64 {
	cells := len(c.objects) * len(c.attributes)
	if cells == 0 {
		return 0
	}
	return float64(c.ones) / float64(cells)
}

// Up returns the attributes shared by every object in a. Up(∅) = M.
// Members of a must be valid object indices.
func (c *FormalContext) Up(a indexset.Set) indexset.Set {
	return intersectAll(a, c.rows, c.allAttributes)
}

// Down returns the objects having every attribute in b. Down(∅) = G.
// Members of b must be valid attribute indices.
func (c *FormalContext) Down(b indexset.Set) indexset.Set {
	return intersectAll(b, c.cols, c.allObjects)
}

func intersectAll(s indexset.Set, sets []indexset.Set, universe indexset.Set) indexset.Set {
	result := universe
	for i := range s.All() {
		result = result.Intersect(sets[i])
		if result.IsEmpty() {
			break
		}
	}
	return result
}

// Closure returns Down(Up(a)), the smallest closed object set containing a.
func (c *FormalContext) Closure(a indexset.Set) indexset.Set {
	return c.Down(c.Up(a))
}

// AttributeClosure returns Up(Down(b)), the dual closure on attribute sets.
func (c *FormalContext) AttributeClosure(b indexset.Set) indexset.Set {
	return c.Up(c.Down(b))
}

// IsClosed reports whether a = Closure(a).
func (c *FormalContext) IsClosed(a indexset.Set) bool {
	return a.Equal(c.Closure(a))
}

// IsFormalConcept reports whether Up(a) = b and Down(b) = a.
func (c *FormalContext) IsFormalConcept(a, b indexset.Set) bool {
	return c.Up(a).Equal(b) && c.Down(b).Equal(a)
}

// ConceptOf returns the concept generated by a: (Closure(a), Up(a)).
func (c *FormalContext) ConceptOf(a indexset.Set) Concept {
	b := c.Up(a)
	return Concept{extent: c.Down(b), intent: b}
}

// CheckObjects returns a ValidationError if a holds an index outside G.
func (c *FormalContext) CheckObjects(a indexset.Set) error {
	return checkIndices("objects", a, len(c.objects))
}

// CheckAttributes returns a ValidationError if b holds an index outside M.
func (c *FormalContext) CheckAttributes(b indexset.Set) error {
	return checkIndices("attributes", b, len(c.attributes))
}

func checkIndices(param string, s indexset.Set, n int) error {
	for i := range s.All() {
		if i >= n {
			return errors.NewValidationError(param, fmt.Sprintf("index out of range [0, %d)", n), i)
		}
	}
	return nil
}

// ObjectLabels resolves a to labels in ascending index order.
func (c *FormalContext) ObjectLabels(a indexset.Set) []string {
	return resolve(a, c.objects)
}

// AttributeLabels resolves b to labels in ascending index order.
func (c *FormalContext) AttributeLabels(b indexset.Set) []string {
	return resolve(b, c.attributes)
}

func resolve(s indexset.Set, labels []string) []string {
	out := make([]string, 0, s.Len())
	for i := range s.All() {
		out = append(out, labels[i])
	}
	return out
}

// ObjectSet looks up object labels and returns their index set.
func (c *FormalContext) ObjectSet(labels ...string) (indexset.Set, error) {
	return lookup("objects", labels, c.objects)
}

// AttributeSet looks up attribute labels and returns their index set.
func (c *FormalContext) AttributeSet(labels ...string) (indexset.Set, error) {
	return lookup("attributes", labels, c.attributes)
}

func lookup(param string, want, labels []string) (indexset.Set, error) {
	idx := make([]int, 0, len(want))
	for _, w := range want {
		found := -1
		for i, l := range labels {
			if l == w {
				found = i
				break
			}
		}
		if found < 0 {
			return indexset.Set{}, errors.NewValidationError(param, "unknown label", w)
		}
		idx = append(idx, found)
	}
	return indexset.New(idx...), nil
}
