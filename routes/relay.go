// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package routes

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/xmidt-org/httpaux/erraux"
	"go.uber.org/zap"
)

// Upstream is the behavior required of the PokeAPI client.  *pokeapi.Client
// implements this interface.
type Upstream interface {
	List(context.Context) (json.RawMessage, error)
	Pokemon(context.Context, string) (json.RawMessage, error)
	Abilities(context.Context, string) (json.RawMessage, error)
}

// Fetch retrieves the JSON to relay, given the request context and the route's
// path variables.
type Fetch func(ctx context.Context, vars map[string]string) (json.RawMessage, error)

// Relay writes whatever JSON its Fetch returns.  Fetch errors are written by
// Encoder, which NewEncoder configures to produce a 502 Bad Gateway.
type Relay struct {
	Fetch   Fetch
	Encoder erraux.Encoder
	Logger  *zap.Logger
}

func (r Relay) ServeHTTP(response http.ResponseWriter, request *http.Request) {
	body, err := r.Fetch(request.Context(), mux.Vars(request))
	if err != nil {
		r.Logger.Error(
			"unable to relay upstream response",
			zap.String("path", request.URL.EscapedPath()),
			zap.Error(err),
		)

		r.Encoder.Encode(request.Context(), err, response)
		return
	}

	response.Header().Set("Content-Type", contentTypeJSON)
	response.Write(body)
}

// ListPokemon relays the results of the upstream pokemon list.
func ListPokemon(u Upstream) Fetch {
	return func(ctx context.Context, _ map[string]string) (json.RawMessage, error) {
		return u.List(ctx)
	}
}

// Pokemon relays the complete upstream record for the path variable v.
func Pokemon(u Upstream, v string) Fetch {
	return func(ctx context.Context, vars map[string]string) (json.RawMessage, error) {
		return u.Pokemon(ctx, vars[v])
	}
}

// Abilities relays the abilities of the pokemon named by the path variable v.
func Abilities(u Upstream, v string) Fetch {
	return func(ctx context.Context, vars map[string]string) (json.RawMessage, error) {
		return u.Abilities(ctx, vars[v])
	}
}
