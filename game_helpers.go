package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// now is the clock used to time trials
var now = time.Now

// loadSeed returns the initial live cells, from the RLE file if one is configured
func loadSeed(config utils.Config) ([]model.Coord, error) {
	if config.PatternFile == "" {
		return model.Pattern(config.Pattern)
	}

	f, err := os.Open(config.PatternFile)
	if err != nil {
		return nil, errors.Wrapf(err, "[loadSeed] failed to open pattern file: %+v", config.PatternFile)
	}
	defer f.Close()

	seed, err := model.ParseRLE(f)
	if err != nil {
		return nil, errors.Wrapf(err, "[loadSeed] failed to parse pattern file: %+v", config.PatternFile)
	}
	return seed, nil
}

// runTrial advances a fresh engine from the seed for the given number of generations
func runTrial(
	ctx context.Context,
	engineName string,
	seed []model.Coord,
	generations int,
	metrics *utils.Metrics,
) (utils.TrialResult, error) {
	engine, err := model.NewEngine(engineName)
	if err != nil {
		return utils.TrialResult{}, err
	}

	if err = engine.Reset(seed); err != nil {
		return utils.TrialResult{}, err
	}

	// seeding is setup, only the generations are timed
	start := now()
	for range generations {
		if err = ctx.Err(); err != nil {
			return utils.TrialResult{}, err
		}
		if err = engine.Step(); err != nil {
			return utils.TrialResult{}, errors.Wrapf(err, "generation %d", engine.Generation()+1)
		}
		metrics.ObserveStep(engineName, engine.Examined())
	}

	return utils.TrialResult{
		Generations: generations,
		Elapsed:     now().Sub(start),
		Population:  engine.Live().Len(),
	}, nil
}

// runBenchmark runs every trial, concurrently when configured, and collects the results in trial order
func runBenchmark(
	ctx context.Context,
	config utils.Config,
	seed []model.Coord,
	logger *slog.Logger,
	metrics *utils.Metrics,
) (*utils.Stats, error) {
	var (
		results   = make([]utils.TrialResult, config.Trials)
		eg, egCtx = errgroup.WithContext(ctx)
	)
	if config.Parallel {
		eg.SetLimit(runtime.NumCPU())
	} else {
		eg.SetLimit(1)
	}

	for i := range config.Trials {
		eg.Go(func() error {
			result, err := runTrial(egCtx, config.Engine, seed, config.Generations, metrics)
			if err != nil {
				return errors.Wrapf(err, "trial %d", i+1)
			}
			result.Trial = i + 1
			results[i] = result
			metrics.ObserveTrial(config.Engine, result)
			logger.Debug("trial complete",
				"trial", result.Trial,
				"elapsed", result.Elapsed,
				"population", result.Population)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	stats := utils.NewStats()
	for _, r := range results {
		stats.AddTrial(r)
	}
	return stats, nil
}

// printBenchmark writes one throughput line per trial and a summary
func printBenchmark(w io.Writer, engineName string, stats *utils.Stats) {
	for _, r := range stats.Trials {
		fmt.Fprintf(w, "%.0f generations / sec\n", r.GenerationsPerSecond())
	}
	fmt.Fprintf(w, "engine=%s trials=%d mean=%.0f best=%.0f generations / sec\n",
		engineName, len(stats.Trials), stats.MeanRate(), stats.BestRate())
}

// runWatch renders one simulation frame by frame until a stop condition is reached
func runWatch(
	ctx context.Context,
	config utils.Config,
	seed []model.Coord,
	renderer model.Renderer,
	logger *slog.Logger,
	metrics *utils.Metrics,
) (*utils.Stats, error) {
	engine, err := model.NewEngine(config.Engine)
	if err != nil {
		return nil, err
	}
	if err = engine.Reset(seed); err != nil {
		return nil, err
	}

	var (
		stats         = utils.NewStats()
		history       model.History
		lastFrameTime = time.Now()
		ticker        *time.Ticker
	)
	if config.FrameRate > 0 {
		ticker = time.NewTicker(config.FrameRate)
		defer ticker.Stop()
	}

	for {
		live := engine.Live()
		renderer.Clear()
		renderer.Display(live, model.BBox(live))

		now := time.Now()
		stats.Update(engine.Generation(), live.Len(), now.Sub(lastFrameTime))
		lastFrameTime = now

		if config.MaxGenerations > 0 && engine.Generation() >= config.MaxGenerations {
			logger.Info("reached maximum generations", "generations", engine.Generation())
			return stats, nil
		}
		if config.StopOnStagnant && history.IsStagnant(live) {
			logger.Info("simulation stagnant", "generation", engine.Generation(), "population", live.Len())
			return stats, nil
		}
		history.Update(live)

		if err = engine.Step(); err != nil {
			return stats, errors.Wrapf(err, "generation %d", engine.Generation()+1)
		}
		metrics.ObserveStep(config.Engine, engine.Examined())

		if ticker == nil {
			if err = ctx.Err(); err != nil {
				return stats, err
			}
			continue
		}
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		case <-ticker.C:
		}
	}
}
