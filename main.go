package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

var (
	configPath  string // JSON or YAML config file
	engineName  string // dense or delta
	patternName string // built-in seed pattern
	rlePath     string // RLE pattern file, overrides --pattern
	logLevel    string // debug, info, warn, error
	metricsAddr string // serve /metrics on this address when set

	generations int  // generations per trial
	trials      int  // number of trials
	parallel    bool // run trials concurrently

	maxGenerations int // stop watching after this many generations, 0 for no limit
)

var rootCmd = &cobra.Command{
	Use:           "go-life",
	Short:         "Sparse Game of Life engines and throughput benchmark",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure generations per second of an engine",
	Long: `Runs several independent trials of a fixed number of generations from the
seed pattern and prints the throughput of each.

Examples:
  go-life bench                          # delta engine, R-pentomino, 5 x 1000 generations
  go-life bench --engine dense           # full neighbor recount every generation
  go-life bench --rle acorn.rle -n 5000  # custom seed
  go-life bench --parallel               # run trials concurrently`,
	RunE: runBenchCommand,
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Render the simulation in the terminal",
	RunE:  runWatchCommand,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "config file (.json, .yaml)")
	pf.StringVarP(&engineName, "engine", "e", "", "engine: "+strings.Join(model.EngineNames(), ", "))
	pf.StringVarP(&patternName, "pattern", "p", "", "seed pattern: "+strings.Join(model.PatternNames(), ", "))
	pf.StringVar(&rlePath, "rle", "", "seed pattern file in RLE format")
	pf.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")

	benchCmd.Flags().IntVarP(&generations, "generations", "n", 0, "generations per trial")
	benchCmd.Flags().IntVarP(&trials, "trials", "t", 0, "number of trials")
	benchCmd.Flags().BoolVar(&parallel, "parallel", false, "run trials concurrently")

	watchCmd.Flags().IntVar(&maxGenerations, "max-generations", 0, "stop after this many generations")

	rootCmd.AddCommand(benchCmd, watchCmd)
}

// resolveConfig loads the config file if given and applies the flags the user set
func resolveConfig(cmd *cobra.Command) (utils.Config, error) {
	config := utils.DefaultConfig()
	if configPath != "" {
		var err error
		if config, err = utils.LoadConfig(configPath); err != nil {
			return config, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("engine") {
		config.Engine = engineName
	}
	if flags.Changed("pattern") {
		config.Pattern = patternName
	}
	if flags.Changed("rle") {
		config.PatternFile = rlePath
	}
	if flags.Changed("log-level") {
		config.LogLevel = logLevel
	}
	if flags.Changed("metrics-addr") {
		config.MetricsAddr = metricsAddr
	}
	if flags.Changed("generations") {
		config.Generations = generations
	}
	if flags.Changed("trials") {
		config.Trials = trials
	}
	if flags.Changed("parallel") {
		config.Parallel = parallel
	}
	if flags.Changed("max-generations") {
		config.MaxGenerations = maxGenerations
	}

	return config, config.Validate()
}

// setup resolves the config and builds the logger, seed and metrics shared by every command
func setup(ctx context.Context, cmd *cobra.Command) (utils.Config, []model.Coord, *slog.Logger, *utils.Metrics, error) {
	config, err := resolveConfig(cmd)
	if err != nil {
		return config, nil, nil, nil, err
	}

	level, _ := utils.ParseLevel(config.LogLevel)
	logger := utils.NewLogger(os.Stderr, level).With("run_id", uuid.NewString()[:8])

	seed, err := loadSeed(config)
	if err != nil {
		return config, nil, nil, nil, err
	}

	reg := prometheus.NewRegistry()
	metrics := utils.NewMetrics(reg)
	if config.MetricsAddr != "" {
		if err = utils.ServeMetrics(ctx, config.MetricsAddr, reg, logger); err != nil {
			return config, nil, nil, nil, err
		}
	}

	return config, seed, logger, metrics, nil
}

func runBenchCommand(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	config, seed, logger, metrics, err := setup(ctx, cmd)
	if err != nil {
		return err
	}

	logger.Info("starting benchmark",
		"engine", config.Engine,
		"seed_cells", len(seed),
		"generations", config.Generations,
		"trials", config.Trials,
		"parallel", config.Parallel)

	stats, err := runBenchmark(ctx, config, seed, logger, metrics)
	if err != nil {
		return err
	}
	printBenchmark(cmd.OutOrStdout(), config.Engine, stats)
	return nil
}

func runWatchCommand(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	config, seed, logger, metrics, err := setup(ctx, cmd)
	if err != nil {
		return err
	}

	renderer := model.NewTerminalRenderer(cmd.OutOrStdout(), config.Width, config.Height)
	stats, err := runWatch(ctx, config, seed, renderer, logger, metrics)
	if stats != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "Final stats: %d generations, %.1f avg population\n",
			stats.TotalGenerations, stats.AveragePopulation)
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func main() {
	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
