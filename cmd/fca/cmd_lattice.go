package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/gofca/fca"
	"github.com/YuminosukeSato/gofca/lattice"
	"github.com/YuminosukeSato/gofca/pkg/errors"
	"github.com/YuminosukeSato/gofca/pkg/log"
	"github.com/YuminosukeSato/gofca/report"
)

func newLatticeCmd(a *app) *cobra.Command {
	var (
		src    source
		format string
	)
	cmd := &cobra.Command{
		Use:   "lattice",
		Short: "Print the covering relation of the concept lattice",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := src.load(a.logger)
			if err != nil {
				return err
			}
			c := d.Context

			concepts, err := fca.NewNextClosureEnumerator(c, newFCAOptions(a)...).Enumerate()
			if err != nil {
				return err
			}
			l, err := lattice.Build(concepts)
			if err != nil {
				return err
			}
			a.logger.Debug("lattice built",
				log.OperationKey, log.OperationBuildLattice,
				log.ConceptsKey, l.Len(),
				log.EdgesKey, len(l.Edges()),
			)

			out := cmd.OutOrStdout()
			switch format {
			case "table":
				p := report.NewPrinter(out)
				p.Section("Concept lattice", report.LatticeTable(c, l))
				return p.Err()
			case "dot":
				raw, err := l.MarshalDOT(d.Name, func(concept fca.Concept) string {
					lc := c.ReducedLabel(concept)
					return strings.Join(append(lc.Intent, lc.Extent...), "\n")
				})
				if err != nil {
					return err
				}
				_, err = out.Write(append(raw, '\n'))
				return errors.WithStack(err)
			default:
				return errors.NewValidationError("format", "expected table or dot", format)
			}
		},
	}
	src.register(cmd)
	cmd.Flags().StringVar(&format, "format", "table", "output format: table or dot")
	return cmd
}
