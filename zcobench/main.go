package main

import (
	"os"

	"go.uber.org/zap"

	"zco-bench/bench"
	"zco-bench/fixture"
	"zco-bench/logger"
	"zco-bench/timer"
)

func main() {
	log := logger.Default()
	defer func() { _ = log.Sync() }()

	cfg := bench.DefaultConfig()

	// Build fixtures before the first pass so no construction lands in a timed call.
	fixture.Default().Preload(log)

	runner := bench.NewRunner(cfg, timer.New(), os.Stdout, log)
	report := bench.NewReport(cfg, runner, os.Stdout, log)
	if err := report.Run(bench.Passes()); err != nil {
		log.Fatal("Benchmark run aborted", zap.Error(err))
	}
}
