package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algonotes/internal/config"
	"github.com/katalvlaran/algonotes/measure"
)

type workloadRow struct {
	Name        string `yaml:"name"`
	Expected    string `yaml:"expected"`
	Catalog     string `yaml:"catalog"`
	Description string `yaml:"description"`
}

func (a *app) workloadsCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "workloads",
		Short: "List the workloads measure can run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			var rows []workloadRow
			for _, w := range measure.Workloads() {
				rows = append(rows, workloadRow{w.Name, w.Expected.String(), w.Catalog, w.Description})
			}
			if format == "yaml" {
				return writeYAML(cmd.OutOrStdout(), rows)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "WORKLOAD\tEXPECTED\tCATALOG\tDESCRIPTION")
			for _, r := range rows {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Name, r.Expected, r.Catalog, r.Description)
			}
			return tw.Flush()
		},
	}
	addFormatFlag(cmd, &format)

	return cmd
}

func (a *app) measureCmd() *cobra.Command {
	var (
		format string
		strict bool
	)
	d := config.Defaults()
	cmd := &cobra.Command{
		Use:   "measure <workload>...",
		Short: "Count operations at several input sizes and fit a complexity class",
		Long: `measure runs each named workload at every configured size, counts its basic
operations and reports the best-fitting complexity class next to the class
the notes predict. The tsp workloads always run at their own small sizes.
With --strict a mismatch makes the command fail.`,
		Args: cobra.MinimumNArgs(1),
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			var names []string
			for _, w := range measure.Workloads() {
				names = append(names, w.Name)
			}
			return names, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.Measure.Timeout)
			defer cancel()

			reports := make([]*measure.Report, 0, len(args))
			for _, name := range args {
				w, err := measure.Lookup(name)
				if err != nil {
					return err
				}
				rep, err := measure.Run(ctx, w, a.cfg.Measure.Sizes,
					measure.WithWorkers(a.cfg.Measure.Workers),
					measure.WithLogger(a.log),
				)
				if err != nil {
					return err
				}
				reports = append(reports, rep)
			}

			var err error
			if format == "yaml" {
				err = writeYAML(cmd.OutOrStdout(), reports)
			} else {
				err = writeReports(cmd.OutOrStdout(), reports)
			}
			if err != nil {
				return err
			}

			if strict {
				var bad []string
				for _, r := range reports {
					if !r.Match {
						bad = append(bad, r.Workload)
					}
				}
				if len(bad) > 0 {
					return fmt.Errorf("%w: %s", errMismatch, strings.Join(bad, ", "))
				}
			}
			return nil
		},
	}
	addFormatFlag(cmd, &format)
	fs := cmd.Flags()
	fs.IntSlice("sizes", d.Measure.Sizes, "input sizes to measure at (at least 3); ignored by workloads with fixed sizes")
	fs.Int("workers", d.Measure.Workers, "sizes measured concurrently")
	fs.Duration("timeout", d.Measure.Timeout, "overall time limit")
	fs.BoolVar(&strict, "strict", false, "fail when a measured class differs from the expected one")

	return cmd
}

func writeReports(w io.Writer, reports []*measure.Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "WORKLOAD\tEXPECTED\tMEASURED\tSPREAD\tMATCH\tSAMPLES")
	for _, r := range reports {
		samples := make([]string, len(r.Samples))
		for i, s := range r.Samples {
			samples[i] = fmt.Sprintf("%d:%d", s.N, s.Ops)
		}
		match := "yes"
		if !r.Match {
			match = "NO"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.4f\t%s\t%s\n",
			r.Workload, r.Expected, r.Estimate.Class, r.Estimate.Spread, match, strings.Join(samples, " "))
	}

	return tw.Flush()
}
