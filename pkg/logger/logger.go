package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process-wide logger. Init must be called once during startup;
// the package-level helpers are nil-safe so tests that never call Init do
// not panic.
var Log *zap.Logger

// Init initializes the global logger at the given level ("debug", "info",
// "warn", "error"). An empty or unknown level falls back to info.
func Init(level string) {
	var lv zapcore.Level
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		lv = zapcore.DebugLevel
	case "warn", "warning":
		lv = zapcore.WarnLevel
	case "error":
		lv = zapcore.ErrorLevel
	default:
		lv = zapcore.InfoLevel
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lv)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	l, err := cfg.Build()
	if err != nil {
		// zap's production config cannot fail on valid levels; keep a
		// no-op logger rather than crashing startup over logging.
		l = zap.NewNop()
	}
	Log = l
}

// Sync flushes any buffered log entries.
func Sync() {
	if Log != nil {
		_ = Log.Sync()
	}
}

// Debug logs with loosely typed key/value pairs.
func Debug(msg string, kv ...any) {
	if Log == nil {
		return
	}
	Log.Sugar().Debugw(msg, kv...)
}

// Info logs with loosely typed key/value pairs.
func Info(msg string, kv ...any) {
	if Log == nil {
		return
	}
	Log.Sugar().Infow(msg, kv...)
}

// Warn logs with loosely typed key/value pairs.
func Warn(msg string, kv ...any) {
	if Log == nil {
		return
	}
	Log.Sugar().Warnw(msg, kv...)
}

// Error logs with loosely typed key/value pairs.
func Error(msg string, kv ...any) {
	if Log == nil {
		return
	}
	Log.Sugar().Errorw(msg, kv...)
}
