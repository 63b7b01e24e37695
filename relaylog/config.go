// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

// Package relaylog configures zap for the relay and supplies the logging
// decorators used on both sides of a relayed request.
package relaylog

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config is the unmarshaled logging configuration.
type Config struct {
	// Level is a zap level name, e.g. "debug" or "info".  The default is "info".
	Level string

	// Encoding is either "json" or "console".  The default is "json".
	Encoding string

	// Development enables zap's development mode, which changes stack traces
	// and the behavior of DPanic.
	Development bool

	// OutputPaths are the zap sinks for log entries.  The default is stdout.
	OutputPaths []string

	// ErrorOutputPaths are the zap sinks for zap's own errors.  The default is stderr.
	ErrorOutputPaths []string
}

// NewZapConfig converts this configuration into a zap.Config.
func (c Config) NewZapConfig() (zap.Config, error) {
	zc := zap.NewProductionConfig()
	if c.Development {
		zc = zap.NewDevelopmentConfig()
	}

	if len(c.Level) > 0 {
		var level zapcore.Level
		if err := level.UnmarshalText([]byte(c.Level)); err != nil {
			return zc, fmt.Errorf("invalid log level %q: %w", c.Level, err)
		}

		zc.Level = zap.NewAtomicLevelAt(level)
	}

	switch c.Encoding {
	case "":
	case "json", "console":
		zc.Encoding = c.Encoding

	default:
		return zc, fmt.Errorf("invalid log encoding %q", c.Encoding)
	}

	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if len(c.OutputPaths) > 0 {
		zc.OutputPaths = append([]string{}, c.OutputPaths...)
	}

	if len(c.ErrorOutputPaths) > 0 {
		zc.ErrorOutputPaths = append([]string{}, c.ErrorOutputPaths...)
	}

	return zc, nil
}

// NewLogger builds a *zap.Logger from this configuration.
func (c Config) NewLogger() (*zap.Logger, error) {
	zc, err := c.NewZapConfig()
	if err != nil {
		return nil, err
	}

	return zc.Build()
}

// LoggerIn holds the dependencies for Provide.
type LoggerIn struct {
	fx.In

	Config    Config
	Lifecycle fx.Lifecycle
}

// Provide creates the application logger.  Buffered entries are flushed when
// the app stops.
func Provide(in LoggerIn) (*zap.Logger, error) {
	l, err := in.Config.NewLogger()
	if err != nil {
		return nil, err
	}

	in.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			// Sync reports an error for console sinks on some platforms
			l.Sync()
			return nil
		},
	})

	return l, nil
}

// FxLogger sends fx's lifecycle events to l.  Use it with fx.WithLogger.
func FxLogger(l *zap.Logger) fxevent.Logger {
	return &fxevent.ZapLogger{Logger: l.Named("fx")}
}
