// Package obs wires up this planner's observability: a zap sugared logger
// and a per-run correlation id, stamped onto every log line emitted during
// parse, precompute, search, and write.
package obs

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Run bundles a logger already tagged with this invocation's run id.
type Run struct {
	ID     string
	Logger *zap.SugaredLogger
}

// NewRun builds a zap logger at the given level (one of debug/info/warn/
// error) and stamps a fresh run id into every subsequent log line.
func NewRun(levelName string) (*Run, func() error, error) {
	level, err := parseLevel(levelName)
	if err != nil {
		return nil, nil, err
	}

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("obs: building logger: %w", err)
	}

	runID := uuid.New().String()
	sugared := logger.Sugar().With("run_id", runID)

	return &Run{ID: runID, Logger: sugared}, logger.Sync, nil
}

func parseLevel(name string) (zapcore.Level, error) {
	switch name {
	case "", "info":
		return zapcore.InfoLevel, nil
	case "debug":
		return zapcore.DebugLevel, nil
	case "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return 0, fmt.Errorf("obs: unknown log level %q", name)
	}
}
