package fca

import (
	"context"
	"time"

	"github.com/YuminosukeSato/gofca/core/indexset"
	"github.com/YuminosukeSato/gofca/pkg/errors"
	"github.com/YuminosukeSato/gofca/pkg/log"
)

// NextClosureEnumerator implements Ganter's Next-Closure algorithm. It visits
// each closed object set exactly once, in lectic order, starting from
// Closure(∅).
type NextClosureEnumerator struct {
	ctx    *FormalContext
	logger log.Logger
}

// NewNextClosureEnumerator returns a Next-Closure enumerator over c.
func NewNextClosureEnumerator(c *FormalContext, opts ...Option) *NextClosureEnumerator {
	o := newOptions(opts)
	return &NextClosureEnumerator{
		ctx: c,
		logger: o.logger.With(
			log.ComponentKey, "fca",
			log.AlgorithmKey, log.AlgorithmNextClosure,
		),
	}
}

// Name returns "next-closure".
func (e *NextClosureEnumerator) Name() string { return log.AlgorithmNextClosure }

// First returns the lectically smallest closed set, Closure(∅).
func (e *NextClosureEnumerator) First() indexset.Set {
	return e.ctx.Closure(indexset.Set{})
}

// Next returns the lectically next closed set after a. The second result is
// false when a is the last one and no successor exists.
//
// For i from |G|-1 down to 0 with i ∉ a, the candidate
// C = Closure((a ∩ {0, …, i-1}) ∪ {i}) is accepted when the smallest element
// of C that is not in a ∩ {0, …, i-1} is i itself. a should be closed;
// otherwise the result is still closed but sets between a and it may be
// skipped.
func (e *NextClosureEnumerator) Next(a indexset.Set) (indexset.Set, bool) {
	working := a
	for i := e.ctx.NumObjects() - 1; i >= 0; i-- {
		if working.Contains(i) {
			working = working.Remove(i)
			continue
		}
		candidate := e.ctx.Closure(working.Add(i))
		if first, ok := candidate.Difference(working).Min(); ok && first == i {
			return candidate, true
		}
	}
	return indexset.Set{}, false
}

// Enumerate runs Next from First until no successor exists and pairs every
// closed set with its intent.
func (e *NextClosureEnumerator) Enumerate() ([]Concept, error) {
	start := time.Now()
	e.logger.Debug("enumeration started",
		log.OperationKey, log.OperationEnumerate,
		log.ObjectsKey, e.ctx.NumObjects(),
	)

	var concepts []Concept
	a := e.First()
	for step := 0; ; step++ {
		b := e.ctx.Up(a)
		if !e.ctx.IsFormalConcept(a, b) {
			return nil, errors.NewConceptInvariantError(e.Name(), a, b)
		}
		concepts = append(concepts, Concept{extent: a, intent: b})
		if e.logger.Enabled(context.Background(), log.LevelDebug) {
			e.logger.Debug("closed set", log.StepKey, step, log.ExtentKey, a.String())
		}

		next, ok := e.Next(a)
		if !ok {
			break
		}
		if !indexset.LecticLess(a, next) {
			return nil, errors.NewValueError(e.Name(),
				"successor "+next.String()+" does not follow "+a.String()+" in lectic order")
		}
		a = next
	}

	e.logger.Info("enumeration finished",
		log.OperationKey, log.OperationEnumerate,
		log.ConceptsKey, len(concepts),
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return concepts, nil
}
