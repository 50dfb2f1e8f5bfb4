package fca

import (
	"fmt"
	"time"

	"github.com/YuminosukeSato/gofca/core/indexset"
	"github.com/YuminosukeSato/gofca/core/parallel"
	"github.com/YuminosukeSato/gofca/pkg/errors"
	"github.com/YuminosukeSato/gofca/pkg/log"
)

// BruteForceEnumerator finds all concepts by testing every subset of G for
// closedness. It costs O(2^|G|) closure computations.
type BruteForceEnumerator struct {
	ctx    *FormalContext
	opts   options
	logger log.Logger
}

// NewBruteForceEnumerator returns a brute-force enumerator over c.
func NewBruteForceEnumerator(c *FormalContext, opts ...Option) *BruteForceEnumerator {
	o := newOptions(opts)
	return &BruteForceEnumerator{
		ctx:  c,
		opts: o,
		logger: o.logger.With(
			log.ComponentKey, "fca",
			log.AlgorithmKey, log.AlgorithmBruteForce,
		),
	}
}

// Name returns "brute-force".
func (e *BruteForceEnumerator) Name() string { return log.AlgorithmBruteForce }

// Enumerate walks the subset masks 0 … 2^|G|-1, keeps the closed ones and
// pairs each with its intent. Concepts are returned in mask order.
//
// Contexts with more than the configured maximum of objects are rejected with
// a ValidationError instead of running for an unbounded time.
func (e *BruteForceEnumerator) Enumerate() ([]Concept, error) {
	n := e.ctx.NumObjects()
	if n > e.opts.maxObjects {
		return nil, errors.NewValidationError("objects",
			fmt.Sprintf("brute-force enumeration is limited to %d objects", e.opts.maxObjects), n)
	}

	start := time.Now()
	total := 1 << n
	e.logger.Debug("enumeration started",
		log.OperationKey, log.OperationEnumerate,
		log.ObjectsKey, n,
		log.SubsetsKey, total,
	)

	ranges := parallel.SplitWithThreshold(total, e.opts.parallelThreshold, e.opts.workers)
	found := make([][]Concept, len(ranges))
	failures := make([]error, len(ranges))
	parallel.ForEach(ranges, func(r parallel.Range) {
		failures[r.Chunk] = errors.SafeExecute("fca.BruteForceEnumerator.scan", func() error {
			var err error
			found[r.Chunk], err = e.scan(r)
			return err
		})
	})

	var concepts []Concept
	for i := range ranges {
		if failures[i] != nil {
			return nil, failures[i]
		}
		concepts = append(concepts, found[i]...)
	}

	e.logger.Info("enumeration finished",
		log.OperationKey, log.OperationEnumerate,
		log.ConceptsKey, len(concepts),
		log.WorkersKey, len(ranges),
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return concepts, nil
}

func (e *BruteForceEnumerator) scan(r parallel.Range) ([]Concept, error) {
	var out []Concept
	for mask := r.Start; mask < r.End; mask++ {
		a := indexset.FromMask(uint64(mask))
		if !e.ctx.IsClosed(a) {
			continue
		}
		b := e.ctx.Up(a)
		if !e.ctx.IsFormalConcept(a, b) {
			return nil, errors.NewConceptInvariantError(e.Name(), a, b)
		}
		out = append(out, Concept{extent: a, intent: b})
	}
	return out, nil
}
