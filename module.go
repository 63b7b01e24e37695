// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package pokerelay

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/justinas/alice"
	"github.com/xmidt-org/pokerelay/pokeapi"
	"github.com/xmidt-org/pokerelay/relayhttp"
	"github.com/xmidt-org/pokerelay/relaylog"
	"github.com/xmidt-org/pokerelay/routes"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module is the complete relay.  It requires an Unmarshaler, normally from ForViper.
func Module() fx.Option {
	return fx.Options(
		fx.Provide(
			NewConfig,
			relaylog.Provide,
		),
		Service(),
	)
}

// Service is the relay without configuration or logging.  It requires the
// relayhttp.ServerConfig, pokeapi.Config and *zap.Logger components.
func Service() fx.Option {
	return fx.Options(
		fx.Provide(
			NewUpstream,
			NewRouter,
			NewHandler,
		),
		relayhttp.Provide(),
	)
}

// NewUpstream creates the PokeAPI client, logging each upstream request.
func NewUpstream(cfg pokeapi.Config, l *zap.Logger) (*pokeapi.Client, error) {
	return pokeapi.New(cfg, relaylog.RequestLog(l))
}

// NewRouter creates the router for the relay's route table.  Every error response
// shares one encoder.
func NewRouter(upstream *pokeapi.Client, l *zap.Logger) *mux.Router {
	e := routes.NewEncoder()
	return routes.NewRouter(
		routes.Table(upstream, e, l),
		e,
	)
}

// NewHandler decorates the router with the server middleware.
func NewHandler(router *mux.Router, l *zap.Logger) http.Handler {
	return alice.New(
		relaylog.AccessLog(l),
	).Then(router)
}
