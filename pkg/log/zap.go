package log

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapConfig configures the zap-backed logger.
type ZapConfig struct {
	Level        string
	Mode         string // "production" or anything else for development
	Encoding     string // "json" or "console"
	ColorEnabled bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// Init builds the process-wide Logger from config.
func Init(cfg ZapConfig) Logger {
	level := zapcore.InfoLevel
	if err := level.Set(cfg.Level); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Mode == "production" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)
	if cfg.Encoding != "" {
		zapCfg.Encoding = cfg.Encoding
	}
	if cfg.ColorEnabled && zapCfg.Encoding == "console" {
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	logger, err := zapCfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		logger = zap.NewNop()
	}

	return &zapLogger{sugar: logger.Sugar()}
}

func (l *zapLogger) Debug(ctx context.Context, args ...any)  { l.sugar.Debug(args...) }
func (l *zapLogger) Info(ctx context.Context, args ...any)   { l.sugar.Info(args...) }
func (l *zapLogger) Warn(ctx context.Context, args ...any)   { l.sugar.Warn(args...) }
func (l *zapLogger) Error(ctx context.Context, args ...any)  { l.sugar.Error(args...) }
func (l *zapLogger) DPanic(ctx context.Context, args ...any) { l.sugar.DPanic(args...) }
func (l *zapLogger) Panic(ctx context.Context, args ...any)  { l.sugar.Panic(args...) }
func (l *zapLogger) Fatal(ctx context.Context, args ...any)  { l.sugar.Fatal(args...) }

func (l *zapLogger) Debugf(ctx context.Context, format string, args ...any) {
	l.sugar.Debugf(format, args...)
}

func (l *zapLogger) Infof(ctx context.Context, format string, args ...any) {
	l.sugar.Infof(format, args...)
}

func (l *zapLogger) Warnf(ctx context.Context, format string, args ...any) {
	l.sugar.Warnf(format, args...)
}

func (l *zapLogger) Errorf(ctx context.Context, format string, args ...any) {
	l.sugar.Errorf(format, args...)
}

func (l *zapLogger) DPanicf(ctx context.Context, format string, args ...any) {
	l.sugar.DPanicf(format, args...)
}

func (l *zapLogger) Panicf(ctx context.Context, format string, args ...any) {
	l.sugar.Panicf(format, args...)
}

func (l *zapLogger) Fatalf(ctx context.Context, format string, args ...any) {
	l.sugar.Fatalf(format, args...)
}
