package log

import "context"

// Logger is the logging interface used across the service.
// The context is accepted on every call so request-scoped fields
// can be attached later without changing call sites.
type Logger interface {
	Debug(ctx context.Context, args ...any)
	Debugf(ctx context.Context, format string, args ...any)
	Info(ctx context.Context, args ...any)
	Infof(ctx context.Context, format string, args ...any)
	Warn(ctx context.Context, args ...any)
	Warnf(ctx context.Context, format string, args ...any)
	Error(ctx context.Context, args ...any)
	Errorf(ctx context.Context, format string, args ...any)
	Fatal(ctx context.Context, args ...any)
	Fatalf(ctx context.Context, format string, args ...any)
}

// ZapConfig is the configuration for the zap-backed logger.
type ZapConfig struct {
	Level        string // debug, info, warn, error
	Mode         string // debug or production
	Encoding     string // console or json
	ColorEnabled bool
}

// Init builds the zap-backed Logger. Falls back to sane defaults when
// the config is empty so early startup logging always works.
func Init(cfg ZapConfig) Logger {
	return newZapLogger(cfg)
}
