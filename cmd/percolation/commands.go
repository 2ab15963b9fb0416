package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/percolation/config"
	"github.com/katalvlaran/percolation/report"
	"github.com/katalvlaran/percolation/stats"
)

// flags bound on the root and estimate commands.
type flags struct {
	configPath string
	seed       int64
	workers    int
	verify     bool
	csvPath    string
	logLevel   string
	logFormat  string
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	root := &cobra.Command{
		Use:          "percolation",
		Short:        "Estimate the percolation threshold of an N×N grid",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&f.configPath, "config", "", "path to YAML config (empty = embedded defaults)")
	root.PersistentFlags().StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&f.logFormat, "log-format", "", "log format: text or json")

	root.AddCommand(newEstimateCmd(f), newConfigCmd(f))

	return root
}

func newEstimateCmd(f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate [N T]",
		Short: "Run T trials on an N×N grid and print mean, stddev and 95% interval",
		Args:  cobra.MatchAll(cobra.RangeArgs(0, 2), exactlyZeroOrTwo),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := resolve(cmd, f, args)
			if err != nil {
				return err
			}

			return runEstimate(cmd, cfg, log)
		},
	}
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "RNG seed (0 = fixed default)")
	cmd.Flags().IntVar(&f.workers, "workers", 1, "trials run concurrently")
	cmd.Flags().BoolVar(&f.verify, "verify", false, "cross-check every trial with BFS")
	cmd.Flags().StringVar(&f.csvPath, "csv", "", "write per-trial thresholds to this CSV file")

	return cmd
}

func newConfigCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := resolve(cmd, f, nil)
			if err != nil {
				return err
			}

			return cfg.WriteYAML(cmd.OutOrStdout())
		},
	}
}

func exactlyZeroOrTwo(_ *cobra.Command, args []string) error {
	if len(args) == 1 {
		return fmt.Errorf("expected both N and T, got only %q", args[0])
	}

	return nil
}

// resolve loads config, applies positional args and explicitly set flags,
// validates the result and builds the logger.
func resolve(cmd *cobra.Command, f *flags, args []string) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, nil, err
	}
	if len(args) == 2 {
		if cfg.Grid.Size, err = strconv.Atoi(args[0]); err != nil {
			return nil, nil, fmt.Errorf("parsing N: %w", err)
		}
		if cfg.Simulation.Trials, err = strconv.Atoi(args[1]); err != nil {
			return nil, nil, fmt.Errorf("parsing T: %w", err)
		}
	}
	fl := cmd.Flags()
	if fl.Changed("seed") {
		cfg.Simulation.Seed = f.seed
	}
	if fl.Changed("workers") {
		cfg.Simulation.Workers = f.workers
	}
	if fl.Changed("verify") {
		cfg.Simulation.Verify = f.verify
	}
	if fl.Changed("csv") {
		cfg.Output.CSV = f.csvPath
	}
	if fl.Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if fl.Changed("log-format") {
		cfg.Log.Format = f.logFormat
	}

	log := cfg.Logger(cmd.ErrOrStderr())
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	return cfg, log, nil
}

func runEstimate(cmd *cobra.Command, cfg *config.Config, log *slog.Logger) error {
	opts := []stats.Option{
		stats.WithSeed(cfg.Simulation.Seed),
		stats.WithWorkers(cfg.Simulation.Workers),
		stats.WithLogger(log),
	}
	if cfg.Simulation.Verify {
		opts = append(opts, stats.WithVerify())
	}
	est, err := stats.NewEstimator(cfg.Grid.Size, cfg.Simulation.Trials, opts...)
	if err != nil {
		return err
	}

	log.Info("starting estimate", "n", cfg.Grid.Size, "trials", cfg.Simulation.Trials, "workers", cfg.Simulation.Workers)
	res, err := est.Run(cmd.Context())
	if err != nil {
		return fmt.Errorf("estimate: %w", err)
	}

	if cfg.Output.CSV != "" {
		if err := writeCSV(cfg.Output.CSV, res); err != nil {
			return err
		}
		log.Info("wrote trials", "path", cfg.Output.CSV, "rows", len(res.Thresholds))
	}

	return report.WriteSummary(cmd.OutOrStdout(), res)
}

func writeCSV(path string, res *stats.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := report.WriteTrialsCSV(f, res); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
