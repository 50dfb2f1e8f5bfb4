package main

import (
	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/gofca/fca"
	"github.com/YuminosukeSato/gofca/lattice"
	"github.com/YuminosukeSato/gofca/pkg/errors"
	"github.com/YuminosukeSato/gofca/pkg/log"
	"github.com/YuminosukeSato/gofca/report"
)

type analyzeFlags struct {
	source
	concurrent bool
	workers    int
	maxObjects int
	threshold  int
	plots      string
	noLattice  bool
	noSamples  bool
}

func newAnalyzeCmd(a *app) *cobra.Command {
	var f analyzeFlags
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Enumerate, verify and print all formal concepts of a context",
		Long: `analyze runs brute force and Next-Closure on the selected context and
compares their concept sets. The exit status is 2 when they disagree.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.config.Analysis
			overrideBool(cmd, "concurrent", &f.concurrent, cfg.Concurrent)
			overrideInt(cmd, "workers", &f.workers, cfg.Workers)
			overrideInt(cmd, "max-objects", &f.maxObjects, cfg.MaxObjects)
			overrideInt(cmd, "parallel-threshold", &f.threshold, cfg.ParallelThreshold)
			overrideString(cmd, "plots", &f.plots, cfg.Plots)
			return runAnalyze(cmd, a, f)
		},
	}
	f.source.register(cmd)
	cmd.Flags().BoolVar(&f.concurrent, "concurrent", false, "run both enumerators concurrently")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "brute-force goroutines (0: one per CPU)")
	cmd.Flags().IntVar(&f.maxObjects, "max-objects", fca.DefaultMaxBruteForceObjects, "largest context accepted by brute force")
	cmd.Flags().IntVar(&f.threshold, "parallel-threshold", fca.DefaultParallelThreshold, "subset count below which brute force stays sequential")
	cmd.Flags().StringVar(&f.plots, "plots", "", "directory to write PNG charts into")
	cmd.Flags().BoolVar(&f.noLattice, "no-lattice", false, "skip the concept lattice")
	cmd.Flags().BoolVar(&f.noSamples, "no-samples", false, "skip the closure operator samples")
	return cmd
}

func runAnalyze(cmd *cobra.Command, a *app, f analyzeFlags) error {
	d, err := f.load(a.logger)
	if err != nil {
		return err
	}
	c := d.Context

	analysis, err := fca.Analyze(c, append(newFCAOptions(a),
		fca.WithConcurrentRun(f.concurrent),
		fca.WithWorkers(f.workers),
		fca.WithMaxBruteForceObjects(f.maxObjects),
		fca.WithParallelThreshold(f.threshold),
		fca.WithStrictConsistency(true),
	)...)
	var violation *errors.ConsistencyViolation
	if err != nil && !errors.As(err, &violation) {
		return err
	}

	var l *lattice.Lattice
	if !f.noLattice {
		if l, err = buildLattice(a.logger, analysis.Concepts, violation); err != nil {
			return err
		}
	}

	var samples []fca.ClosureSample
	if !f.noSamples {
		samples = c.SampleClosures(fca.DefaultSamples(c)...)
	}

	p := report.NewPrinter(cmd.OutOrStdout())
	p.Analysis(analysis, samples, l)
	if err := p.Err(); err != nil {
		return errors.Wrap(err, "write report")
	}

	if f.plots != "" {
		paths, err := report.SavePlots(f.plots, analysis, l)
		if err != nil {
			return err
		}
		for _, path := range paths {
			p.Line("wrote %s", path)
		}
		a.logger.Info("plots written", log.OperationKey, log.OperationRender, "count", len(paths))
	}

	a.logger.Info("verification",
		log.OperationKey, log.OperationVerify,
		log.ConsistentKey, analysis.Report.Equal,
		log.ConceptsKey, len(analysis.Concepts),
	)
	if violation != nil {
		return violation
	}
	return nil
}

// buildLattice builds the lattice of concepts. When the enumerators disagreed
// the concept set may not form a lattice; the lattice is then skipped so the
// violation stays the reported error.
func buildLattice(logger log.Logger, concepts []fca.Concept, violation *errors.ConsistencyViolation) (*lattice.Lattice, error) {
	l, err := lattice.Build(concepts)
	if err != nil {
		if violation != nil {
			logger.Warn("lattice skipped",
				log.OperationKey, log.OperationBuildLattice,
				log.ErrAttrKey, err,
			)
			return nil, nil
		}
		return nil, err
	}
	logger.Debug("lattice built",
		log.OperationKey, log.OperationBuildLattice,
		log.EdgesKey, len(l.Edges()),
	)
	return l, nil
}
