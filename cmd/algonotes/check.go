package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algonotes/notes"
)

type checkResult struct {
	Path     string          `yaml:"path"`
	Problems []notes.Problem `yaml:"problems"`
}

func (a *app) checkCmd() *cobra.Command {
	var (
		format string
		watch  bool
		root   string
	)
	cmd := &cobra.Command{
		Use:   "check <file.md>...",
		Short: "Verify anchors, relative files, images and (optionally) external links",
		Long: `check parses each markdown file and reports every fragment that names no
heading, every relative file or image that does not exist and, with
--external, every http(s) link that fails. The command fails when any
problem is found. With --watch a single file is re-checked on every save
until interrupted.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			cc := a.cfg.Check
			checker, err := notes.NewChecker(
				notes.WithExternal(cc.External),
				notes.WithWorkers(cc.Workers),
				notes.WithTimeout(cc.Timeout),
				notes.WithUserAgent(cc.UserAgent),
				notes.WithRoot(root),
				notes.WithLogger(a.log.WithComponent("check")),
			)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if watch {
				if len(args) != 1 {
					return errors.New("--watch takes exactly one file")
				}
				return checker.Watch(ctx, args[0], func(probs []notes.Problem, err error) {
					if err != nil {
						a.log.Error(ctx, err, "check failed", "path", args[0])
						return
					}
					if werr := writeCheck(out, format, []checkResult{{args[0], probs}}); werr != nil {
						a.log.Error(ctx, werr, "write results")
					}
				})
			}

			results := make([]checkResult, 0, len(args))
			total := 0
			for _, path := range args {
				probs, err := checker.Check(ctx, path)
				if err != nil {
					return err
				}
				a.log.Info(ctx, "checked", "path", path, "problems", len(probs))
				results = append(results, checkResult{Path: path, Problems: probs})
				total += len(probs)
			}
			if err := writeCheck(out, format, results); err != nil {
				return err
			}
			if total > 0 {
				return fmt.Errorf("%w: %d", errProblemsFound, total)
			}
			return nil
		},
	}
	addFormatFlag(cmd, &format)
	fs := cmd.Flags()
	fs.Bool("external", false, "also request http(s) links")
	fs.BoolVarP(&watch, "watch", "w", false, "re-check the file whenever it changes")
	fs.StringVar(&root, "root", "", "directory that site-absolute links (/path) resolve against")

	return cmd
}

func writeCheck(w io.Writer, format string, results []checkResult) error {
	if format == "yaml" {
		return writeYAML(w, results)
	}
	for _, r := range results {
		if len(r.Problems) == 0 {
			if _, err := fmt.Fprintf(w, "%s: ok\n", r.Path); err != nil {
				return err
			}
			continue
		}
		for _, p := range r.Problems {
			if _, err := fmt.Fprintf(w, "%s:%s\n", r.Path, p); err != nil {
				return err
			}
		}
	}

	return nil
}
