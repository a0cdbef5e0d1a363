// Package logger builds the zap logger used for run diagnostics.
// The benchmark report owns stdout, so diagnostics go elsewhere (stderr by default).
package logger

import (
	"io"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a JSON logger writing to w at level and above.
// Every entry carries a run_id unique to this logger.
func New(w io.Writer, level zapcore.Level) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(w),
		level,
	)
	return zap.New(core).With(zap.String("run_id", uuid.NewString()))
}

// Default logs info and above to stderr.
func Default() *zap.Logger {
	return New(os.Stderr, zap.InfoLevel)
}

// Nop discards everything.
func Nop() *zap.Logger {
	return zap.NewNop()
}
