package log

import (
	"context"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// zapLogger implements Logger on top of zap.SugaredLogger.
type zapLogger struct {
	sugar *zap.SugaredLogger
}

func newZapLogger(cfg ZapConfig) *zapLogger {
	level := parseLevel(cfg.Level)

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.ColorEnabled && cfg.Encoding != "json" {
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	var encoder zapcore.Encoder
	if cfg.Encoding == "json" {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level)

	opts := []zap.Option{zap.AddCallerSkip(1)}
	if cfg.Mode == "debug" {
		opts = append(opts, zap.AddCaller(), zap.Development())
	} else {
		opts = append(opts, zap.AddCaller())
	}

	return &zapLogger{sugar: zap.New(core, opts...).Sugar()}
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func (l *zapLogger) Debug(_ context.Context, args ...any) { l.sugar.Debug(args...) }
func (l *zapLogger) Debugf(_ context.Context, format string, args ...any) {
	l.sugar.Debugf(format, args...)
}
func (l *zapLogger) Info(_ context.Context, args ...any) { l.sugar.Info(args...) }
func (l *zapLogger) Infof(_ context.Context, format string, args ...any) {
	l.sugar.Infof(format, args...)
}
func (l *zapLogger) Warn(_ context.Context, args ...any) { l.sugar.Warn(args...) }
func (l *zapLogger) Warnf(_ context.Context, format string, args ...any) {
	l.sugar.Warnf(format, args...)
}
func (l *zapLogger) Error(_ context.Context, args ...any) { l.sugar.Error(args...) }
func (l *zapLogger) Errorf(_ context.Context, format string, args ...any) {
	l.sugar.Errorf(format, args...)
}
func (l *zapLogger) Fatal(_ context.Context, args ...any) { l.sugar.Fatal(args...) }
func (l *zapLogger) Fatalf(_ context.Context, format string, args ...any) {
	l.sugar.Fatalf(format, args...)
}
