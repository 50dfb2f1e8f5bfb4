package fca

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/gofca/core/indexset"
	"github.com/YuminosukeSato/gofca/pkg/errors"
	"github.com/YuminosukeSato/gofca/pkg/log"
)

// lossyEnumerator drops the last concept of the wrapped enumerator.
type lossyEnumerator struct {
	Enumerator
}

func (l lossyEnumerator) Name() string { return "lossy" }

func (l lossyEnumerator) Enumerate() ([]Concept, error) {
	concepts, err := l.Enumerator.Enumerate()
	if err != nil || len(concepts) == 0 {
		return concepts, err
	}
	return concepts[:len(concepts)-1], nil
}

// forgingEnumerator returns a pair that is not a concept.
type forgingEnumerator struct{}

func (forgingEnumerator) Name() string { return "forging" }

func (forgingEnumerator) Enumerate() ([]Concept, error) {
	return []Concept{{extent: indexset.New(0), intent: indexset.Set{}}}, nil
}

// panickingEnumerator panics instead of returning.
type panickingEnumerator struct{}

func (panickingEnumerator) Name() string { return "panicking" }

func (panickingEnumerator) Enumerate() ([]Concept, error) {
	panic("enumerator failure")
}

func animals(t *testing.T) *FormalContext {
	t.Helper()
	c, err := NewFormalContextFromInts(
		[]string{"Cat", "Dog", "Dolphin", "Eagle", "Shark"},
		[]string{"Mammal", "Can_Swim", "Has_Fur", "Can_Fly", "Predator"},
		[][]int{
			{1, 0, 1, 0, 1},
			{1, 1, 1, 0, 0},
			{1, 1, 0, 0, 1},
			{0, 0, 0, 1, 1},
			{0, 1, 0, 0, 1},
		},
	)
	require.NoError(t, err)
	return c
}

func TestAnalyzeReportsViolation(t *testing.T) {
	c := animals(t)
	logger, _ := log.NewTestLogger(log.LevelInfo)

	var warned []error
	errors.SetWarningHandler(func(w error) { warned = append(warned, w) })
	defer errors.SetWarningHandler(nil)

	o := newOptions([]Option{WithLogger(logger)})
	left := NewBruteForceEnumerator(c, WithLogger(log.Nop()))
	right := lossyEnumerator{NewNextClosureEnumerator(c, WithLogger(log.Nop()))}

	a, err := analyze(c, left, right, o)
	require.NoError(t, err)
	require.NotNil(t, a)

	assert.False(t, a.Report.Equal)
	assert.Equal(t, 13, a.Report.LeftCount)
	assert.Equal(t, 12, a.Report.RightCount)
	assert.Len(t, a.Report.Missing, 1)

	require.Len(t, warned, 1)
	var violation *errors.ConsistencyViolation
	assert.True(t, errors.As(warned[0], &violation))

	assert.True(t, logger.ContainsMessage("enumerators disagree"))
	assert.True(t, logger.ContainsField(log.ErrorCodeKey, log.ErrorConsistencyViolation))
}

func TestAnalyzeStrictReturnsViolation(t *testing.T) {
	c := animals(t)
	errors.SetWarningHandler(func(error) {})
	defer errors.SetWarningHandler(nil)

	o := newOptions([]Option{WithLogger(log.Nop()), WithStrictConsistency(true)})
	left := NewBruteForceEnumerator(c, WithLogger(log.Nop()))
	right := lossyEnumerator{NewNextClosureEnumerator(c, WithLogger(log.Nop()))}

	a, err := analyze(c, left, right, o)
	require.Error(t, err)
	assert.NotNil(t, a, "analysis is returned with the violation")

	var violation *errors.ConsistencyViolation
	require.True(t, errors.As(err, &violation))
	assert.Equal(t, "lossy", violation.Right)
}

func TestAnalyzeForgedConceptIsDetected(t *testing.T) {
	c := animals(t)
	errors.SetWarningHandler(func(error) {})
	defer errors.SetWarningHandler(nil)

	o := newOptions([]Option{WithLogger(log.Nop()), WithStrictConsistency(true)})
	_, err := analyze(c, NewNextClosureEnumerator(c, WithLogger(log.Nop())), forgingEnumerator{}, o)
	assert.Error(t, err)
}

func TestAnalyzeConcurrentRecoversPanic(t *testing.T) {
	c := animals(t)
	o := newOptions([]Option{WithLogger(log.Nop()), WithConcurrentRun(true)})

	var (
		a   *Analysis
		err error
	)
	assert.NotPanics(t, func() {
		a, err = analyze(c, NewNextClosureEnumerator(c, WithLogger(log.Nop())), panickingEnumerator{}, o)
	})
	assert.Nil(t, a)
	require.Error(t, err)

	var perr *errors.PanicError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "enumerator failure", perr.PanicValue)
	assert.Contains(t, err.Error(), "panicking")
}

func TestBruteForceChunkPanicBecomesError(t *testing.T) {
	broken := *animals(t)
	broken.rows = nil

	var err error
	assert.NotPanics(t, func() {
		_, err = NewBruteForceEnumerator(&broken,
			WithLogger(log.Nop()),
			WithParallelThreshold(0),
			WithWorkers(4),
		).Enumerate()
	})
	require.Error(t, err)

	var perr *errors.PanicError
	assert.True(t, errors.As(err, &perr))
}

func TestOptions(t *testing.T) {
	o := newOptions([]Option{
		WithWorkers(-1),
		WithMaxBruteForceObjects(100),
		WithLogger(nil),
	})
	assert.Positive(t, o.workers)
	assert.Equal(t, MaxBruteForceObjects, o.maxObjects)
	assert.Equal(t, log.Nop(), o.logger)
	assert.Equal(t, DefaultParallelThreshold, o.parallelThreshold)

	o = newOptions([]Option{WithMaxBruteForceObjects(-1)})
	assert.Equal(t, DefaultMaxBruteForceObjects, o.maxObjects)

	o = newOptions([]Option{WithMaxBruteForceObjects(0)})
	assert.Equal(t, 0, o.maxObjects)
}
