package logger

import (
	"context"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var global = &Logger{z: zap.NewNop()}

// Logger wraps zap with context-aware methods so call sites can carry
// the request id without threading fields manually.
type Logger struct {
	z *zap.Logger
}

func Init(level string, asJSON bool) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	if !asJSON {
		cfg.Encoding = "console"
		cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}

	z, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}

	global = &Logger{z: z}

	return nil
}

// L exposes the underlying zap logger for collaborators that take one.
func L() *zap.Logger { return global.z }

func With(fields ...Field) *Logger {
	return &Logger{z: global.z.With(fields...)}
}

func (l *Logger) Debug(ctx context.Context, msg string, fields ...Field) {
	l.z.Debug(msg, withRequestID(ctx, fields)...)
}

func (l *Logger) Info(ctx context.Context, msg string, fields ...Field) {
	l.z.Info(msg, withRequestID(ctx, fields)...)
}

func (l *Logger) Warn(ctx context.Context, msg string, fields ...Field) {
	l.z.Warn(msg, withRequestID(ctx, fields)...)
}

func (l *Logger) Error(ctx context.Context, msg string, fields ...Field) {
	l.z.Error(msg, withRequestID(ctx, fields)...)
}

func Debug(ctx context.Context, msg string, fields ...Field) {
	global.Debug(ctx, msg, fields...)
}

func Info(ctx context.Context, msg string, fields ...Field) {
	global.Info(ctx, msg, fields...)
}

func Warn(ctx context.Context, msg string, fields ...Field) {
	global.Warn(ctx, msg, fields...)
}

func Error(ctx context.Context, msg string, fields ...Field) {
	global.Error(ctx, msg, fields...)
}

func withRequestID(ctx context.Context, fields []Field) []Field {
	if reqID := middleware.GetReqID(ctx); reqID != "" {
		return append(fields, zap.String("request_id", reqID))
	}

	return fields
}
