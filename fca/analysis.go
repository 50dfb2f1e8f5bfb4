package fca

import (
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/YuminosukeSato/gofca/pkg/errors"
	"github.com/YuminosukeSato/gofca/pkg/log"
)

// Analysis is the result of running both enumerators on one context.
type Analysis struct {
	Context *FormalContext

	// Concepts is the Next-Closure output, in lectic order of extents.
	Concepts []Concept

	BruteForce  []Concept
	NextClosure []Concept

	Report     Report
	Statistics Statistics
}

// Analyze enumerates the concepts of c with brute force and Next-Closure,
// compares the results and summarizes them.
//
// A disagreement between the enumerators is reported through
// Analysis.Report, logged at warn level and passed to errors.Warn. With
// WithStrictConsistency it is also returned as a *errors.ConsistencyViolation
// together with the analysis.
func Analyze(c *FormalContext, opts ...Option) (a *Analysis, err error) {
	defer errors.Recover(&err, "fca.Analyze")

	if c == nil {
		return nil, errors.NewValueError("fca.Analyze", "nil context")
	}

	o := newOptions(opts)
	return analyze(c, NewBruteForceEnumerator(c, opts...), NewNextClosureEnumerator(c, opts...), o)
}

// analyze runs the reference enumerator left and the production enumerator
// right; the analysis reports the concepts of right.
func analyze(c *FormalContext, left, right Enumerator, o options) (*Analysis, error) {
	logger := o.logger.With(log.ComponentKey, "fca", log.OperationKey, log.OperationAnalyze)
	start := time.Now()
	logger.Info("analysis started",
		log.ObjectsKey, c.NumObjects(),
		log.AttributesKey, c.NumAttributes(),
		log.DensityKey, c.Density(),
	)

	var leftConcepts, rightConcepts []Concept
	if o.concurrent {
		var g errgroup.Group
		g.Go(func() error {
			err := errors.SafeExecute(left.Name(), func() error {
				var err error
				leftConcepts, err = left.Enumerate()
				return err
			})
			return errors.Wrap(err, left.Name())
		})
		g.Go(func() error {
			err := errors.SafeExecute(right.Name(), func() error {
				var err error
				rightConcepts, err = right.Enumerate()
				return err
			})
			return errors.Wrap(err, right.Name())
		})
		if err := g.Wait(); err != nil {
			logger.Error("enumeration failed", failureFields(err)...)
			return nil, err
		}
	} else {
		var err error
		if leftConcepts, err = left.Enumerate(); err != nil {
			logger.Error("enumeration failed", failureFields(err)...)
			return nil, errors.Wrap(err, left.Name())
		}
		if rightConcepts, err = right.Enumerate(); err != nil {
			logger.Error("enumeration failed", failureFields(err)...)
			return nil, errors.Wrap(err, right.Name())
		}
	}

	report := Check(left.Name(), leftConcepts, right.Name(), rightConcepts)
	a := &Analysis{
		Context:     c,
		Concepts:    rightConcepts,
		BruteForce:  leftConcepts,
		NextClosure: rightConcepts,
		Report:      report,
		Statistics:  Summarize(c, rightConcepts),
	}

	if violation := report.Err(); violation != nil {
		logger.Warn("enumerators disagree",
			log.ConsistentKey, false,
			log.ErrorCodeKey, log.ErrorConsistencyViolation,
			log.ErrAttrKey, violation,
		)
		errors.Warn(violation)
		if o.strict {
			return a, violation
		}
		return a, nil
	}

	logger.Info("analysis finished",
		log.ConceptsKey, len(rightConcepts),
		log.ConsistentKey, true,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return a, nil
}

func failureFields(err error) []any {
	fields := []any{log.ErrAttrKey, err}
	var inv *errors.ConceptInvariantError
	if errors.As(err, &inv) {
		fields = append(fields,
			log.ErrorCodeKey, log.ErrorConceptInvariant,
			log.ExtentKey, inv.Extent,
			log.IntentKey, inv.Intent,
		)
	}
	return fields
}
