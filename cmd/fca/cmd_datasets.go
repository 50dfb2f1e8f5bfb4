package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/gofca/datasets"
	"github.com/YuminosukeSato/gofca/report"
)

func newDatasetsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "datasets",
		Short: "List the built-in contexts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, name := range datasets.Names() {
				d, err := datasets.Load(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%-24s %d×%d  %s\n", name,
					d.Context.NumObjects(), d.Context.NumAttributes(), report.Styles.Muted.Render(d.Description))
			}
			return nil
		},
	}
	cmd.AddCommand(newExportCmd(a))
	return cmd
}

func newExportCmd(a *app) *cobra.Command {
	var src source
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a context in the YAML file format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := src.load(a.logger)
			if err != nil {
				return err
			}
			return datasets.Encode(cmd.OutOrStdout(), d)
		},
	}
	src.register(cmd)
	return cmd
}
