package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/gofca/report"
)

func newClosureCmd(a *app) *cobra.Command {
	var (
		src        source
		attributes bool
	)
	cmd := &cobra.Command{
		Use:   "closure [OBJECT...]",
		Short: "Apply the closure operator to a set of objects or attributes",
		Long: `closure prints Up(A), Closure(A) = Down(Up(A)) and whether A is closed
for the objects given by label or index. With --attributes the arguments
are attributes and the dual operators are applied.`,
		Example: `  fca closure Cat Dog
  fca closure -d programming_languages 0
  fca closure --attributes Has_Fur`,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := src.load(a.logger)
			if err != nil {
				return err
			}
			c := d.Context
			out := cmd.OutOrStdout()

			if attributes {
				b, err := parseSet(args, c.AttributeSet, c.CheckAttributes)
				if err != nil {
					return err
				}
				down := c.Down(b)
				closure := c.Up(down)
				fmt.Fprintf(out, "B          = {%s}\n", strings.Join(c.AttributeLabels(b), ", "))
				fmt.Fprintf(out, "Down(B)    = {%s}\n", strings.Join(c.ObjectLabels(down), ", "))
				fmt.Fprintf(out, "Closure(B) = {%s}\n", strings.Join(c.AttributeLabels(closure), ", "))
				fmt.Fprintf(out, "closed     = %t\n", closure.Equal(b))
				return nil
			}

			set, err := parseSet(args, c.ObjectSet, c.CheckObjects)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, report.SamplesTable(c, c.SampleClosures(set)))
			return nil
		},
	}
	src.register(cmd)
	cmd.Flags().BoolVar(&attributes, "attributes", false, "treat arguments as attributes")
	return cmd
}
