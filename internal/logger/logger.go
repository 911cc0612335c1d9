package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a sugared logger and installs it as the zap global.
//
// level is "DEVELOPMENT" for console output at debug level, "QUIET" for console
// output at error level; anything else gives JSON at info level. Output goes to stderr so stdio transports stay clean.
func New(level string) *zap.SugaredLogger {
	var (
		encoder zapcore.Encoder
		lvl     zapcore.Level
	)

	switch strings.ToUpper(level) {
	case "DEVELOPMENT":
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(cfg)
		lvl = zapcore.DebugLevel
	case "QUIET":
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		lvl = zapcore.ErrorLevel
	default:
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		lvl = zapcore.InfoLevel
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), lvl)
	log := zap.New(core, zap.AddCaller())
	zap.ReplaceGlobals(log)

	return log.Sugar()
}

// FromEnv reads LOGGING_LEVEL, defaulting to fallback when unset
func FromEnv(fallback string) *zap.SugaredLogger {
	level := os.Getenv("LOGGING_LEVEL")
	if level == "" {
		level = fallback
	}
	return New(level)
}

// OrNop returns log, or a no-op logger when log is nil
func OrNop(log *zap.SugaredLogger) *zap.SugaredLogger {
	if log == nil {
		return zap.NewNop().Sugar()
	}
	return log
}
