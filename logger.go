// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// logger.go — Logger interface used internally by the cache manager, a noop
// implementation, and a zap-backed adapter for callers that want structured
// output without writing their own shim.

package sysinfo

import "go.uber.org/zap"

// Logger is the logging interface used internally by the library.
// Implement this to route logs to zap, slog, logrus, etc.
type Logger interface {
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
	Debug(msg string, keysAndValues ...any)
}

type noopLogger struct{}

func (noopLogger) Info(_ string, _ ...any)  {}
func (noopLogger) Warn(_ string, _ ...any)  {}
func (noopLogger) Error(_ string, _ ...any) {}
func (noopLogger) Debug(_ string, _ ...any) {}

// NewZapLogger adapts a *zap.Logger to the Logger interface. Passing nil
// builds a production zap logger.
func NewZapLogger(l *zap.Logger) (Logger, error) {
	if l == nil {
		built, err := zap.NewProduction()
		if err != nil {
			return nil, Errorf(KindConfigurationError, "zap logger init: %v", err)
		}
		l = built
	}
	return &zapLogger{s: l.Sugar()}, nil
}

type zapLogger struct {
	s *zap.SugaredLogger
}

func (z *zapLogger) Info(msg string, kv ...any)  { z.s.Infow(msg, kv...) }
func (z *zapLogger) Warn(msg string, kv ...any)  { z.s.Warnw(msg, kv...) }
func (z *zapLogger) Error(msg string, kv ...any) { z.s.Errorw(msg, kv...) }
func (z *zapLogger) Debug(msg string, kv ...any) { z.s.Debugw(msg, kv...) }
