// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package relayhttp

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/justinas/alice"
	"github.com/xmidt-org/httpaux"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// ListenersGroup is the fx value group from which BindServer collects
// ListenerConstructors.
const ListenersGroup = "listeners"

// ServerConfig holds the unmarshaled configuration for the relay's http.Server.
type ServerConfig struct {
	// Network is the tcp network to listen on.  The default is "tcp".
	Network string

	// Address is the bind address.  When empty, the server binds to an available
	// loopback port.
	Address string

	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	MaxHeaderBytes    int

	// KeepAlive corresponds to net.ListenConfig.KeepAlive.
	KeepAlive time.Duration

	// Header is emitted on every response, including errors.  The default
	// configuration uses this for Access-Control-Allow-Origin.
	Header http.Header
}

// ResponseHeaders returns server middleware that sets each of the given headers
// on every response before the next handler runs.
func ResponseHeaders(h http.Header) alice.Constructor {
	header := httpaux.NewHeader(h)
	return func(next http.Handler) http.Handler {
		if header.Len() == 0 {
			return next
		}

		return http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
			header.SetTo(response.Header())
			next.ServeHTTP(response, request)
		})
	}
}

// NewServer creates an http.Server from this configuration.  The handler is decorated
// so that every response carries the configured Header.
func (sc ServerConfig) NewServer(h http.Handler) *http.Server {
	return &http.Server{
		Addr:              sc.Address,
		Handler:           alice.New(ResponseHeaders(sc.Header)).Then(h),
		ReadTimeout:       sc.ReadTimeout,
		ReadHeaderTimeout: sc.ReadHeaderTimeout,
		WriteTimeout:      sc.WriteTimeout,
		IdleTimeout:       sc.IdleTimeout,
		MaxHeaderBytes:    sc.MaxHeaderBytes,
	}
}

// Listen implements ListenerFactory.
func (sc ServerConfig) Listen(ctx context.Context, s *http.Server) (net.Listener, error) {
	network := sc.Network
	if len(network) == 0 {
		network = "tcp"
	}

	if len(s.Addr) == 0 {
		return net.Listen(network, "127.0.0.1:0")
	}

	lc := net.ListenConfig{
		KeepAlive: sc.KeepAlive,
	}

	return lc.Listen(ctx, network, s.Addr)
}

// ServerIn is the set of dependencies for BindServer.
type ServerIn struct {
	fx.In

	Config  ServerConfig
	Handler http.Handler
	Logger  *zap.Logger

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner

	// Listeners are optional decorators for the server's net.Listener.
	Listeners []ListenerConstructor `group:"listeners"`
}

// BindServer creates the relay's http.Server and binds it to the fx.App lifecycle.
// The server starts listening when the app starts and is gracefully shut down when
// the app stops.  If the accept loop exits on its own, the app is shut down.
func BindServer(in ServerIn) *http.Server {
	server := in.Config.NewServer(in.Handler)
	factory := NewListenerChain(in.Listeners...).Append(
		func(l net.Listener) net.Listener {
			in.Logger.Info("server listening", zap.Stringer("address", l.Addr()))
			return l
		},
	).Factory(in.Config)

	in.Lifecycle.Append(fx.Hook{
		OnStart: ServerOnStart(
			server,
			factory,
			ShutdownOnExit(in.Shutdowner),
		),
		OnStop: server.Shutdown,
	})

	return server
}

// Provide produces the http.Server component and forces its construction, which
// binds it to the app lifecycle.
func Provide() fx.Option {
	return fx.Options(
		fx.Provide(BindServer),
		fx.Invoke(func(*http.Server) {}),
	)
}
