package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the package-wide SugaredLogger. It defaults to a no-op logger
// so packages can log before Initialize runs.
var Log = zap.NewNop().Sugar()

// Initialize replaces Log with a production logger at the given level.
// The level string is parsed by zapcore ("debug", "info", "warn", ...).
func Initialize(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	l, err := cfg.Build()
	if err != nil {
		return err
	}

	Log = l.Sugar()
	return nil
}

// Sync flushes any buffered log entries. Call it on shutdown.
func Sync() {
	_ = Log.Sync()
}
