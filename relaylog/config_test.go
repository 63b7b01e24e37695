// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package relaylog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestConfigNewZapConfig(t *testing.T) {
	testData := []struct {
		config           Config
		expectedLevel    zapcore.Level
		expectedEncoding string
		expectedOutput   []string
	}{
		{
			config:           Config{},
			expectedLevel:    zapcore.InfoLevel,
			expectedEncoding: "json",
			expectedOutput:   []string{"stderr"},
		},
		{
			config: Config{
				Level:       "debug",
				Encoding:    "console",
				OutputPaths: []string{"stdout"},
			},
			expectedLevel:    zapcore.DebugLevel,
			expectedEncoding: "console",
			expectedOutput:   []string{"stdout"},
		},
		{
			config: Config{
				Level:       "warn",
				Development: true,
			},
			expectedLevel:    zapcore.WarnLevel,
			expectedEncoding: "console",
			expectedOutput:   []string{"stderr"},
		},
	}

	for i, record := range testData {
		t.Run(record.expectedLevel.String(), func(t *testing.T) {
			var (
				assert  = assert.New(t)
				require = require.New(t)
			)

			zc, err := record.config.NewZapConfig()
			require.NoError(err, "case %d", i)
			assert.Equal(record.expectedLevel, zc.Level.Level())
			assert.Equal(record.expectedEncoding, zc.Encoding)
			assert.Equal(record.expectedOutput, zc.OutputPaths)
		})
	}
}

func TestConfigInvalid(t *testing.T) {
	for _, c := range []Config{{Level: "loud"}, {Encoding: "xml"}} {
		_, err := c.NewZapConfig()
		assert.Error(t, err)

		l, err := c.NewLogger()
		assert.Error(t, err)
		assert.Nil(t, l)
	}
}

func TestProvide(t *testing.T) {
	var l *zap.Logger
	app := fxtest.New(
		t,
		fx.NopLogger,
		fx.Supply(Config{
			Level:            "error",
			OutputPaths:      []string{"stdout"},
			ErrorOutputPaths: []string{"stderr"},
		}),
		fx.Provide(Provide),
		fx.Populate(&l),
	)

	app.RequireStart()
	require.NotNil(t, l)
	assert.True(t, l.Core().Enabled(zapcore.ErrorLevel))
	assert.False(t, l.Core().Enabled(zapcore.WarnLevel))
	assert.NotNil(t, FxLogger(l))
	app.RequireStop()
}
