// Command svgtiles extracts the tiles of a vector-tiles SVG document into a
// script that assigns their polylines to a global table.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/xerrors"

	"github.com/vasalvit/svgtiles"
)

type options struct {
	output     string
	configPath string
	tolerance  float64
	maxDepth   int
	arcs       string
	strict     bool
	variable   string
	workers    int
	verbose    bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:          "svgtiles [input.svg]",
		Short:        "Convert tile artwork to a polyline table",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := "vector-tiles.svg"
			if len(args) == 1 {
				input = args[0]
			}
			return run(cmd, input, opts)
		},
	}

	defaults := svgtiles.DefaultConfig()
	f := cmd.Flags()
	f.StringVarP(&opts.output, "output", "o", "VectorTilesLib.js", "output script")
	f.StringVarP(&opts.configPath, "config", "c", "", "TOML or YAML config file")
	f.Float64Var(&opts.tolerance, "tolerance", defaults.Tolerance, "curve flatness in tile units")
	f.IntVar(&opts.maxDepth, "max-depth", defaults.MaxDepth, "maximum curve subdivision depth")
	f.StringVar(&opts.arcs, "arc", defaults.Arcs, `elliptical arc handling: "line" or "error"`)
	f.BoolVar(&opts.strict, "strict", defaults.Strict, "fail on invalid path data instead of skipping it")
	f.StringVar(&opts.variable, "var", defaults.Variable, "variable the table is assigned to")
	f.IntVar(&opts.workers, "workers", defaults.Workers, "tiles flattened in parallel")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug diagnostics")
	return cmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}

// loadConfig reads the config file, if any, and applies the flags that were
// set explicitly on top of it.
func loadConfig(cmd *cobra.Command, opts options) (svgtiles.Config, error) {
	cfg := svgtiles.DefaultConfig()
	if opts.configPath != "" {
		var err error
		if cfg, err = svgtiles.ReadConfig(opts.configPath); err != nil {
			return cfg, err
		}
	}
	f := cmd.Flags()
	if f.Changed("tolerance") {
		cfg.Tolerance = opts.tolerance
	}
	if f.Changed("max-depth") {
		cfg.MaxDepth = opts.maxDepth
	}
	if f.Changed("arc") {
		cfg.Arcs = opts.arcs
	}
	if f.Changed("strict") {
		cfg.Strict = opts.strict
	}
	if f.Changed("var") {
		cfg.Variable = opts.variable
	}
	if f.Changed("workers") {
		cfg.Workers = opts.workers
	}
	return cfg, cfg.Validate()
}

func run(cmd *cobra.Command, input string, opts options) error {
	logger, err := newLogger(opts.verbose)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck
	svgtiles.SetLogger(logger)

	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		logger.Error("invalid configuration", zap.Error(err))
		return err
	}

	in, err := os.Open(input)
	if err != nil {
		logger.Error("opening input", zap.Error(err))
		return err
	}
	defer in.Close()

	doc, err := svgtiles.ParseSvgFromReader(in, input, cfg)
	if err != nil {
		logger.Error("reading document", zap.String("input", input), zap.Error(err))
		return err
	}
	logger.Debug("read document", zap.String("input", input), zap.Int("tiles", len(doc.Tiles)))

	tiles, err := svgtiles.Extract(context.Background(), doc, cfg)
	if err != nil {
		logger.Error("extracting tiles", zap.Error(err))
		return err
	}

	out, err := os.Create(opts.output)
	if err != nil {
		logger.Error("creating output", zap.Error(err))
		return err
	}
	if err := svgtiles.WriteTable(out, cfg.Variable, tiles); err != nil {
		out.Close()
		return xerrors.Errorf("writing %s: %w", opts.output, err)
	}
	if err := out.Close(); err != nil {
		return xerrors.Errorf("writing %s: %w", opts.output, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", opts.output)
	return nil
}
