// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/xmidt-org/httpaux/erraux"
	"go.uber.org/zap"
)

// Route is a single GET route.  HEAD is served by the same handler.
type Route struct {
	Name    string
	Path    string
	Handler http.Handler
}

// Table returns the relay's routes in match order.  gorilla/mux uses the first
// route that matches, so the catch-all /{id} must stay last.
func Table(u Upstream, e erraux.Encoder, l *zap.Logger) []Route {
	return []Route{
		{Name: "hello", Path: "/", Handler: HTML("<h1>Hello World, again!</h1>")},
		{Name: "hi", Path: "/hi", Handler: HTML("<h1>Hi!</h1>")},
		{Name: "pokemon.list", Path: "/pokemon", Handler: Relay{Fetch: ListPokemon(u), Encoder: e, Logger: l}},
		{Name: "pokemon.abilities", Path: "/pokemon/abilities/{name}", Handler: Relay{Fetch: Abilities(u, "name"), Encoder: e, Logger: l}},
		{Name: "pokemon", Path: "/pokemon/{name}", Handler: Relay{Fetch: Pokemon(u, "name"), Encoder: e, Logger: l}},
		{Name: "heading", Path: "/{id}", Handler: Heading{Var: "id", Logger: l}},
	}
}

// NewRouter creates a router for the given routes.  Paths are matched in their
// escaped form, so path variables are the raw URL segments.  Unmatched requests
// are written by e.
func NewRouter(routes []Route, e erraux.Encoder) *mux.Router {
	router := mux.NewRouter()
	router.UseEncodedPath()
	router.NotFoundHandler = ErrorHandler{Encoder: e, Err: ErrNotFound}
	router.MethodNotAllowedHandler = ErrorHandler{Encoder: e, Err: ErrMethodNotAllowed}

	for _, r := range routes {
		router.Methods(http.MethodGet, http.MethodHead).
			Path(r.Path).
			Name(r.Name).
			Handler(r.Handler)
	}

	return router
}
