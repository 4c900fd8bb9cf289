package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/algonotes/internal/config"
	"github.com/katalvlaran/algonotes/internal/logging"
)

var (
	errBadFormat     = errors.New("unknown output format")
	errProblemsFound = errors.New("problems found")
	errMismatch      = errors.New("measured class differs from the expected class")
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	log     logging.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New(), log: logging.Nop()}

	root := &cobra.Command{
		Use:   "algonotes",
		Short: "Big O notes with runnable reference tables, growth measurements and a link checker",
		Long: `algonotes accompanies the Big O learning notes in docs/big-o.md.

  algonotes classes                 list the complexity classes
  algonotes catalog --kind sorting  print a reference table
  algonotes problems                print the P/NP comparison tables
  algonotes workloads               list measurable workloads
  algonotes measure sort/merge      fit measured operation counts to a class
  algonotes check docs/big-o.md     verify anchors, files, images and links

Configuration comes from flags, ALGONOTES_<SECTION>_<KEY> environment
variables and an optional .algonotes.yaml, in that order of precedence.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default .algonotes.yaml, or $"+config.ConfigFileEnv+")")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.String("log-format", "text", "log format (text, json)")

	root.AddCommand(
		a.classesCmd(),
		a.catalogCmd(),
		a.problemsCmd(),
		a.workloadsCmd(),
		a.measureCmd(),
		a.checkCmd(),
		a.configCmd(),
	)

	return root
}

// setup loads the configuration and builds the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := config.BindFlags(a.v, cmd.Flags()); err != nil {
		return err
	}
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	lvl, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logging.NewLogger(&logging.LoggerConfig{
		Level:     lvl,
		Format:    cfg.Log.Format,
		Output:    cmd.ErrOrStderr(),
		Component: "cli",
	})
	a.log.Debug(cmd.Context(), "config loaded", "file", a.v.ConfigFileUsed(), "command", cmd.Name())

	return nil
}

// addFormatFlag registers --format on cmd.
func addFormatFlag(cmd *cobra.Command, format *string) {
	cmd.Flags().StringVarP(format, "format", "f", "text", "output format (text, yaml)")
}

// writeYAML encodes v as a YAML document.
func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	return enc.Close()
}

func checkFormat(format string) error {
	switch format {
	case "text", "yaml":
		return nil
	default:
		return fmt.Errorf("%w %q (want text or yaml)", errBadFormat, format)
	}
}

func (a *app) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.cfg.WriteYAML(cmd.OutOrStdout())
		},
	}
}
