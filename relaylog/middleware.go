// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package relaylog

import (
	"net/http"
	"time"

	"github.com/justinas/alice"
	"github.com/xmidt-org/httpaux/observe"
	"github.com/xmidt-org/httpaux/roundtrip"
	"go.uber.org/zap"
)

// AccessLog returns server middleware that logs one entry per request.
func AccessLog(l *zap.Logger) alice.Constructor {
	l = l.Named("access")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
			var (
				start = time.Now()
				ow    = observe.New(response)
			)

			next.ServeHTTP(ow, request)

			// net/http writes a 200 for handlers that write nothing
			status := ow.StatusCode()
			if status == 0 {
				status = http.StatusOK
			}

			l.Info(
				"request",
				zap.String("method", request.Method),
				zap.String("path", request.URL.EscapedPath()),
				zap.String("remoteAddr", request.RemoteAddr),
				zap.Int("status", status),
				zap.Int64("size", ow.ContentLength()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}

// RequestLog returns a roundtrip.Constructor that logs each upstream call.
// Failures are logged at warn level; the error itself is still returned to the caller.
func RequestLog(l *zap.Logger) roundtrip.Constructor {
	l = l.Named("upstream")
	return func(next http.RoundTripper) http.RoundTripper {
		return roundtrip.Func(func(request *http.Request) (*http.Response, error) {
			start := time.Now()
			response, err := next.RoundTrip(request)

			fields := []zap.Field{
				zap.String("method", request.Method),
				zap.String("url", request.URL.String()),
				zap.Duration("duration", time.Since(start)),
			}

			switch {
			case err != nil:
				l.Warn("upstream request failed", append(fields, zap.Error(err))...)

			case response.StatusCode > 299:
				l.Warn("upstream request unsuccessful", append(fields, zap.Int("status", response.StatusCode))...)

			default:
				l.Debug("upstream request", append(fields, zap.Int("status", response.StatusCode))...)
			}

			return response, err
		})
	}
}
