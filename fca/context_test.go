package fca_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/gofca/core/indexset"
	"github.com/YuminosukeSato/gofca/datasets"
	"github.com/YuminosukeSato/gofca/fca"
	"github.com/YuminosukeSato/gofca/pkg/errors"
)

func TestNewFormalContextErrors(t *testing.T) {
	tests := []struct {
		name       string
		objects    []string
		attributes []string
		incidence  [][]bool
	}{
		{"too few rows", []string{"a", "b"}, []string{"x"}, [][]bool{{true}}},
		{"too many rows", []string{"a"}, []string{"x"}, [][]bool{{true}, {false}}},
		{"ragged row", []string{"a", "b"}, []string{"x", "y"}, [][]bool{{true, false}, {true}}},
		{"duplicate object", []string{"a", "a"}, []string{"x"}, [][]bool{{true}, {false}}},
		{"duplicate attribute", []string{"a"}, []string{"x", "x"}, [][]bool{{true, false}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := fca.NewFormalContext(tt.objects, tt.attributes, tt.incidence)
			require.Error(t, err)
			assert.Nil(t, c)
			assert.ErrorIs(t, err, errors.ErrInvalidContext)

			var icErr *errors.InvalidContextError
			require.True(t, errors.As(err, &icErr))
			assert.Equal(t, "NewFormalContext", icErr.Op)
		})
	}
}

func TestNewFormalContextDimensionCause(t *testing.T) {
	_, err := fca.NewFormalContext([]string{"a"}, []string{"x", "y"}, [][]bool{{true}})
	require.Error(t, err)

	var dimErr *errors.DimensionError
	require.True(t, errors.As(err, &dimErr))
	assert.Equal(t, 2, dimErr.Expected)
	assert.Equal(t, 1, dimErr.Got)
	assert.Equal(t, 1, dimErr.Axis)
}

func TestNewFormalContextFromInts(t *testing.T) {
	c, err := fca.NewFormalContextFromInts([]string{"a", "b"}, []string{"x", "y"}, [][]int{{1, 0}, {1, 1}})
	require.NoError(t, err)
	assert.True(t, c.Incident(1, 1))
	assert.False(t, c.Incident(0, 1))

	_, err = fca.NewFormalContextFromInts([]string{"a"}, []string{"x", "y"}, [][]int{{1, -1}})
	require.Error(t, err)
	var icErr *errors.InvalidContextError
	require.True(t, errors.As(err, &icErr))
	assert.Equal(t, 0, icErr.Row)
	assert.Equal(t, 1, icErr.Col)
}

func TestNewFormalContextFromMatrix(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	c, err := fca.NewFormalContextFromMatrix([]string{"a", "b"}, []string{"x", "y"}, m)
	require.NoError(t, err)
	assert.True(t, c.Row(0).Equal(indexset.New(0)))
	assert.True(t, c.Column(1).Equal(indexset.New(1)))
	assert.True(t, mat.Equal(m, c.Matrix()))

	_, err = fca.NewFormalContextFromMatrix([]string{"a", "b"}, []string{"x", "y"}, mat.NewDense(2, 2, []float64{1, 0.5, 0, 1}))
	assert.ErrorIs(t, err, errors.ErrInvalidContext)

	_, err = fca.NewFormalContextFromMatrix([]string{"a"}, []string{"x", "y"}, m)
	assert.ErrorIs(t, err, errors.ErrInvalidContext)

	_, err = fca.NewFormalContextFromMatrix([]string{"a"}, []string{"x"}, nil)
	assert.ErrorIs(t, err, errors.ErrInvalidContext)
}

func TestEmptyContext(t *testing.T) {
	c, err := fca.NewFormalContext(nil, nil, nil)
	require.NoError(t, err)
	assert.Zero(t, c.Density())
	assert.Nil(t, c.Matrix())
	assert.True(t, c.Up(indexset.Set{}).IsEmpty())
	assert.True(t, c.Closure(indexset.Set{}).IsEmpty())
}

func TestContextIsImmutable(t *testing.T) {
	objects := []string{"a", "b"}
	incidence := [][]bool{{true}, {false}}
	c, err := fca.NewFormalContext(objects, []string{"x"}, incidence)
	require.NoError(t, err)

	objects[0] = "changed"
	incidence[1][0] = true
	c.Objects()[1] = "changed"

	assert.Equal(t, []string{"a", "b"}, c.Objects())
	assert.False(t, c.Incident(1, 0))
}

func TestGaloisOperatorsAnimals(t *testing.T) {
	c := datasets.Animals()

	t.Run("up of empty set is M", func(t *testing.T) {
		assert.True(t, c.Up(indexset.Set{}).Equal(c.AllAttributes()))
	})
	t.Run("down of empty set is G", func(t *testing.T) {
		assert.True(t, c.Down(indexset.Set{}).Equal(c.AllObjects()))
	})
	t.Run("mammals", func(t *testing.T) {
		assert.Equal(t, []int{0}, c.Up(indexset.New(0, 1, 2)).Indices())
	})
	t.Run("predators", func(t *testing.T) {
		assert.Equal(t, []int{0, 2, 3, 4}, c.Down(indexset.New(4)).Indices())
	})
	t.Run("up of G", func(t *testing.T) {
		assert.True(t, c.Up(c.AllObjects()).IsEmpty())
	})
	t.Run("attribute closure", func(t *testing.T) {
		// Has_Fur implies Mammal.
		assert.Equal(t, []int{0, 2}, c.AttributeClosure(indexset.New(2)).Indices())
	})
}

func TestSampleClosuresAnimals(t *testing.T) {
	c := datasets.Animals()
	samples := c.SampleClosures(fca.DefaultSamples(c)...)
	require.Len(t, samples, 6)

	wantUp := [][]int{{0, 1, 2, 3, 4}, {0, 2, 4}, {0, 1, 2}, {0, 2}, {0, 4}, {}}
	for i, s := range samples {
		assert.True(t, s.Closed, "sample %s", s.Set)
		assert.True(t, s.Closure.Equal(s.Set))
		assert.Equal(t, wantUp[i], s.Up.Indices(), "up %s", s.Set)
	}
}

func TestSampleClosuresProgrammingLanguages(t *testing.T) {
	c := datasets.ProgrammingLanguages()

	samples := c.SampleClosures(indexset.New(0), indexset.New(0, 1), indexset.New(0, 2))
	require.Len(t, samples, 3)

	// Python and JavaScript have the same attributes.
	assert.Equal(t, []int{0, 3}, samples[0].Closure.Indices())
	assert.False(t, samples[0].Closed)

	assert.Equal(t, []int{0, 1, 3}, samples[1].Closure.Indices())
	assert.False(t, samples[1].Closed)

	assert.True(t, samples[2].Closure.Equal(c.AllObjects()))
	assert.True(t, samples[2].Up.IsEmpty())
}

func TestDefaultSamplesSmallContext(t *testing.T) {
	c, err := fca.NewFormalContext([]string{"a", "b"}, []string{"x"}, [][]bool{{true}, {true}})
	require.NoError(t, err)

	// {0, 2} does not fit into a two-object context.
	assert.Len(t, fca.DefaultSamples(c), 5)
}

func TestLabels(t *testing.T) {
	c := datasets.Animals()

	assert.Equal(t, []string{"Cat", "Dolphin"}, c.ObjectLabels(indexset.New(2, 0)))
	assert.Equal(t, []string{"Mammal", "Predator"}, c.AttributeLabels(indexset.New(0, 4)))

	a, err := c.ObjectSet("Shark", "Cat")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 4}, a.Indices())

	b, err := c.AttributeSet("Can_Fly")
	require.NoError(t, err)
	assert.Equal(t, []int{3}, b.Indices())

	_, err = c.ObjectSet("Unicorn")
	var verr *errors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "Unicorn", verr.Value)
}

func TestCheckIndices(t *testing.T) {
	c := datasets.Animals()
	assert.NoError(t, c.CheckObjects(indexset.New(0, 4)))
	assert.Error(t, c.CheckObjects(indexset.New(5)))
	assert.NoError(t, c.CheckAttributes(indexset.Set{}))
	assert.Error(t, c.CheckAttributes(indexset.New(1, 7)))
}

func TestIsFormalConcept(t *testing.T) {
	c := datasets.Animals()

	assert.True(t, c.IsFormalConcept(indexset.New(0, 2), indexset.New(0, 4)))
	assert.False(t, c.IsFormalConcept(indexset.New(0, 2), indexset.New(0)))
	assert.False(t, c.IsFormalConcept(indexset.New(0), indexset.New(0, 4)))

	concept := c.ConceptOf(indexset.New(3))
	assert.True(t, c.IsFormalConcept(concept.Extent(), concept.Intent()))
	assert.Equal(t, fca.LabeledConcept{Extent: []string{"Eagle"}, Intent: []string{"Can_Fly", "Predator"}}, c.Label(concept))
}

func TestReducedLabel(t *testing.T) {
	c := datasets.Animals()

	top := c.ConceptOf(c.AllObjects())
	assert.Empty(t, c.ReducedLabel(top).Extent)
	assert.Empty(t, c.ReducedLabel(top).Intent)

	predators := c.ConceptOf(indexset.New(0, 2, 3, 4))
	assert.Equal(t, fca.LabeledConcept{Intent: []string{"Predator"}}, c.ReducedLabel(predators))

	cat := c.ConceptOf(indexset.New(0))
	assert.Equal(t, []string{"Cat"}, c.ReducedLabel(cat).Extent)
	assert.Empty(t, c.ReducedLabel(cat).Intent)
}
