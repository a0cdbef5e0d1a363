package bench

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"zco-bench/ops"
)

// Pass is one labelled sweep over every operation in a single variant.
type Pass struct {
	Label string
	Ops   []ops.Op
}

// Passes returns the abstraction-using pass followed by the hand-written pass.
// Both list their operations in ops.Names order.
func Passes() []Pass {
	return []Pass{
		{Label: "Using ZCO:", Ops: ops.UsingAbstraction()},
		{Label: "Hand written:", Ops: ops.HandWritten()},
	}
}

// Report prints a header per pass followed by one line per operation.
type Report struct {
	runner     *Runner
	iterations int
	out        io.Writer
	logger     *zap.Logger
}

func NewReport(cfg Config, runner *Runner, out io.Writer, logger *zap.Logger) *Report {
	return &Report{
		runner:     runner,
		iterations: cfg.Iterations,
		out:        out,
		logger:     logger,
	}
}

// Run executes passes in order and stops at the first failing operation.
func (r *Report) Run(passes []Pass) error {
	for i, pass := range passes {
		sep := ""
		if i > 0 {
			sep = "\n\n"
		}
		if _, err := fmt.Fprintf(r.out, "%s%s\n", sep, pass.Label); err != nil {
			return fmt.Errorf("write header %q: %w", pass.Label, err)
		}

		r.logger.Info("Pass started",
			zap.String("pass", pass.Label),
			zap.Int("ops", len(pass.Ops)),
			zap.Int("iterations", r.iterations),
		)
		for _, op := range pass.Ops {
			if _, err := r.runner.Run(op.Fn, r.iterations, op.Name); err != nil {
				return err
			}
		}
		r.logger.Info("Pass finished", zap.String("pass", pass.Label))
	}
	return nil
}
