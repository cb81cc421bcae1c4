// Package logging builds the diagnostic logger of a run.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options configures the logger.
type Options struct {
	// Level is a zap level name such as "info" or "debug".
	Level string
	// Format is "console" or "json".
	Format string
	// Writer receives the log stream; stderr when nil.
	Writer io.Writer
	// RunID stamps every entry; a random UUID when empty.
	RunID string
}

// New builds a logger from opts.
func New(opts Options) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if opts.Level != "" {
		lvl, err := zapcore.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level: %w", err)
		}

		level = lvl
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder

	switch opts.Format {
	case "", "console":
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	case "json":
		enc = zapcore.NewJSONEncoder(encCfg)
	default:
		return nil, fmt.Errorf("invalid log format %q", opts.Format)
	}

	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	runID := opts.RunID
	if runID == "" {
		runID = uuid.NewString()
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), level)

	return zap.New(core).With(zap.String("run_id", runID)), nil
}
