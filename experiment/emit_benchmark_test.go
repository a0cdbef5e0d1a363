package experiment_test

import (
	"io"
	"log/slog"
	"strconv"
	"testing"

	"github.com/rs/zerolog"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"zco-bench/bench"
)

// Rendering one result line through a structured logger versus by hand.
// The report prints by hand; these show what a logger would add per line.

var (
	testName = "composing_iterators"
	testMean = 3.1416

	nopLogger = zap.NewNop()
)

func EmitWithSlog(logger *slog.Logger) {
	logger.Info("Op measured",
		slog.String("op", testName),
		slog.Float64("mean_us", testMean),
	)
}

// BenchmarkEmitSlog measures the standard library's slog JSON handler.
func BenchmarkEmitSlog(b *testing.B) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		EmitWithSlog(logger)
	}
}

func EmitWithZerolog(logger *zerolog.Logger) {
	logger.Info().
		Str("op", testName).
		Float64("mean_us", testMean).
		Msg("Op measured")
}

// BenchmarkEmitZerolog measures zerolog's chained event API.
func BenchmarkEmitZerolog(b *testing.B) {
	logger := zerolog.New(io.Discard)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		EmitWithZerolog(&logger)
	}
}

func EmitWithZap(logger *zap.Logger) {
	logger.Info("Op measured",
		zap.String("op", testName),
		zap.Float64("mean_us", testMean),
	)
}

// BenchmarkEmitZap measures zap with the same core the logger package builds.
func BenchmarkEmitZap(b *testing.B) {
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(io.Discard),
		zap.InfoLevel,
	)
	logger := zap.New(core)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		EmitWithZap(logger)
	}
}

// BenchmarkEmitFormatLine measures the report's own line rendering.
func BenchmarkEmitFormatLine(b *testing.B) {
	r := bench.Result{Name: testName, Mean: testMean}
	for i := 0; i < b.N; i++ {
		_, _ = io.WriteString(io.Discard, bench.FormatLine(r))
	}
}

// BenchmarkEmitAppend is the fully hand-written floor: one reused buffer.
func BenchmarkEmitAppend(b *testing.B) {
	buf := make([]byte, 0, 64)
	for i := 0; i < b.N; i++ {
		buf = append(buf[:0], "Op "...)
		buf = append(buf, testName...)
		buf = append(buf, " took an average of "...)
		buf = strconv.AppendFloat(buf, testMean, 'f', -1, 64)
		buf = append(buf, "μs\n"...)
		_, _ = io.Discard.Write(buf)
	}
}

/**
Command: go test -bench Emit -test.benchmem
*/
