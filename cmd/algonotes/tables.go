package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algonotes/complexity"
)

type classRow struct {
	Notation string    `yaml:"notation"`
	Name     string    `yaml:"name"`
	Rating   string    `yaml:"rating"`
	Growth   []float64 `yaml:"growth_at_8_16_32"`
}

func (a *app) classesCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "classes",
		Short: "List the complexity classes from fastest to slowest growing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			rows := make([]classRow, 0, len(complexity.Classes()))
			for _, c := range complexity.Classes() {
				rows = append(rows, classRow{
					Notation: c.String(),
					Name:     c.Name(),
					Rating:   c.Rating().String(),
					Growth:   []float64{c.Growth(8), c.Growth(16), c.Growth(32)},
				})
			}
			if format == "yaml" {
				return writeYAML(cmd.OutOrStdout(), rows)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "CLASS\tNAME\tRATING\tn=8\tn=16\tn=32")
			for _, r := range rows {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%.4g\t%.4g\t%.4g\n", r.Notation, r.Name, r.Rating, r.Growth[0], r.Growth[1], r.Growth[2])
			}
			return tw.Flush()
		},
	}
	addFormatFlag(cmd, &format)

	return cmd
}

func (a *app) catalogCmd() *cobra.Command {
	var format, kind string
	cmd := &cobra.Command{
		Use:   "catalog [name]",
		Short: "Print the data-structure and algorithm reference tables",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			var entries []complexity.Entry
			switch {
			case len(args) == 1:
				e, err := complexity.Lookup(args[0])
				if err != nil {
					return err
				}
				entries = []complexity.Entry{e}
			case kind != "":
				k, err := complexity.ParseKind(kind)
				if err != nil {
					return err
				}
				entries = complexity.EntriesOf(k)
			default:
				entries = complexity.Entries()
			}

			if format == "yaml" {
				return writeYAML(cmd.OutOrStdout(), entries)
			}
			return writeCatalog(cmd.OutOrStdout(), entries)
		},
	}
	addFormatFlag(cmd, &format)
	cmd.Flags().StringVarP(&kind, "kind", "k", "", "only rows of this kind (data-structure, sorting, searching, graph)")

	return cmd
}

func writeCatalog(w io.Writer, entries []complexity.Entry) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tKIND\tOPERATION\tBEST\tAVERAGE\tWORST\tSPACE\tPACKAGE")
	for _, e := range entries {
		pkg := e.Package
		if pkg == "" {
			pkg = "-"
		}
		for i, op := range e.Operations {
			name, kind, space := e.Name, e.Kind.String(), e.Space.String()
			if i > 0 {
				name, kind, space, pkg = "", "", "", ""
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				name, kind, op.Name, op.Best, op.Average, op.Worst, space, pkg)
		}
	}

	return tw.Flush()
}

func (a *app) problemsCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "problems",
		Short: "Print the P vs NP and NP-Complete vs NP-Hard tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			tables := []complexity.Table{complexity.ProblemTable(), complexity.HardnessTable()}
			if format == "yaml" {
				return writeYAML(cmd.OutOrStdout(), tables)
			}

			out := cmd.OutOrStdout()
			for i, t := range tables {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintln(out, t.Title)
				tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
				fmt.Fprintf(tw, "\t%s\t%s\n", strings.ToUpper(t.Left), strings.ToUpper(t.Right))
				for _, r := range t.Rows {
					fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Aspect, r.Left, r.Right)
				}
				if err := tw.Flush(); err != nil {
					return err
				}
			}
			return nil
		},
	}
	addFormatFlag(cmd, &format)

	return cmd
}
