// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package relaytest

import (
	"testing"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

// NewLogger creates a *zap.Logger that writes to the test's log.
func NewLogger(t testing.TB) *zap.Logger {
	return zaptest.NewLogger(t)
}

// Logger supplies a test *zap.Logger to an fx.App and routes fx's own
// events to that same logger.
func Logger(t testing.TB) fx.Option {
	l := NewLogger(t)
	return fx.Options(
		fx.Supply(l),
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.ZapLogger{Logger: l}
		}),
	)
}

// NewApp creates an *fxtest.App with fx's events sent to the test log.
func NewApp(t testing.TB, o ...fx.Option) *fxtest.App {
	return fxtest.New(
		t,
		append(
			[]fx.Option{
				fx.WithLogger(func() fxevent.Logger {
					return &fxevent.ZapLogger{Logger: NewLogger(t)}
				}),
			},
			o...,
		)...,
	)
}

// NewErrApp creates an *fx.App that is expected to fail construction.  The
// returned app is silent, and its Err() is asserted by the caller.
func NewErrApp(o ...fx.Option) *fx.App {
	return fx.New(
		append(o, fx.NopLogger)...,
	)
}
