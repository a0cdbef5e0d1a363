// Package bench runs operations under the timer and prints the averaged
// latency of each one.
package bench

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/montanaflynn/stats"
	"go.uber.org/zap"

	"zco-bench/timer"
)

// ErrNoSamples is returned when an operation was measured zero times.
var ErrNoSamples = errors.New("no timing samples")

// Result is the averaged latency of one operation, in microseconds.
type Result struct {
	Name string
	Mean float64
}

// Runner warms up, measures and reports one operation at a time.
type Runner struct {
	warmup int
	timer  *timer.Timer
	out    io.Writer
	logger *zap.Logger

	// sink keeps every result live so no call can be elided.
	sink int64
}

// NewRunner returns a Runner that prints result lines to out.
func NewRunner(cfg Config, t *timer.Timer, out io.Writer, logger *zap.Logger) *Runner {
	return &Runner{
		warmup: cfg.Warmup,
		timer:  t,
		out:    out,
		logger: logger,
	}
}

// Run calls op warmup times untimed, then iterations times under the timer,
// and prints one line with the mean latency. On error nothing is printed.
func (r *Runner) Run(op func() int64, iterations int, name string) (Result, error) {
	for i := 0; i < r.warmup; i++ {
		r.sink += op()
	}

	samples := make(stats.Float64Data, 0, max(iterations, 0))
	for i := 0; i < iterations; i++ {
		micros, res, err := r.timer.Time(op)
		if err != nil {
			return Result{}, fmt.Errorf("op %s: %w", name, err)
		}
		r.sink += res
		samples = append(samples, micros)
	}

	if len(samples) == 0 {
		return Result{}, fmt.Errorf("op %s: %w", name, ErrNoSamples)
	}
	mean, err := stats.Mean(samples)
	if err != nil {
		return Result{}, fmt.Errorf("op %s: mean: %w", name, err)
	}

	r.logger.Debug("Op measured",
		zap.String("op", name),
		zap.Int("warmup", r.warmup),
		zap.Int("iterations", iterations),
		zap.Float64("mean_us", mean),
	)

	result := Result{Name: name, Mean: mean}
	if _, err := fmt.Fprintln(r.out, FormatLine(result)); err != nil {
		return Result{}, fmt.Errorf("op %s: write: %w", name, err)
	}
	return result, nil
}

// FormatLine renders a result the way the report prints it.
func FormatLine(r Result) string {
	return "Op " + r.Name + " took an average of " + strconv.FormatFloat(r.Mean, 'f', -1, 64) + "μs"
}
