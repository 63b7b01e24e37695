// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package relaytest

import (
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/gorilla/mux"
)

const (
	// PokemonList is a trimmed PokeAPI response for GET /pokemon.
	PokemonList = `{"count":1302,"next":"https://pokeapi.co/api/v2/pokemon?offset=2&limit=2","previous":null,"results":[{"name":"bulbasaur","url":"https://pokeapi.co/api/v2/pokemon/1/"},{"name":"ivysaur","url":"https://pokeapi.co/api/v2/pokemon/2/"}]}`

	// PokemonListResults is the results field of PokemonList, byte for byte.
	PokemonListResults = `[{"name":"bulbasaur","url":"https://pokeapi.co/api/v2/pokemon/1/"},{"name":"ivysaur","url":"https://pokeapi.co/api/v2/pokemon/2/"}]`

	// Pikachu is a trimmed PokeAPI response for GET /pokemon/pikachu.
	Pikachu = `{"abilities":[{"ability":{"name":"static","url":"https://pokeapi.co/api/v2/ability/9/"},"is_hidden":false,"slot":1},{"ability":{"name":"lightning-rod","url":"https://pokeapi.co/api/v2/ability/31/"},"is_hidden":true,"slot":3}],"base_experience":112,"height":4,"id":25,"name":"pikachu","weight":60}`

	// PikachuAbilities is the abilities field of Pikachu, byte for byte.
	PikachuAbilities = `[{"ability":{"name":"static","url":"https://pokeapi.co/api/v2/ability/9/"},"is_hidden":false,"slot":1},{"ability":{"name":"lightning-rod","url":"https://pokeapi.co/api/v2/ability/31/"},"is_hidden":true,"slot":3}]`
)

// Upstream is a fake PokeAPI.  It knows the list endpoint and a single pokemon,
// pikachu.  Any other name yields a 404, as PokeAPI does.  The special name
// "garbled" yields a 200 with a body that is not JSON.
type Upstream struct {
	*httptest.Server

	// BaseURL is the server's URL with the /api/v2 prefix, suitable for configuration.
	BaseURL string

	// Requests records the escaped path of each request, in order.
	Requests chan string
}

// NewUpstream starts a fake PokeAPI.  Callers must Close it.
func NewUpstream() *Upstream {
	u := &Upstream{
		Requests: make(chan string, 100),
	}

	router := mux.NewRouter()
	router.UseEncodedPath()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
			select {
			case u.Requests <- request.URL.EscapedPath():
			default:
			}

			next.ServeHTTP(response, request)
		})
	})

	api := router.PathPrefix("/api/v2").Subrouter()
	api.Methods(http.MethodGet).Path("/pokemon").HandlerFunc(writeJSON(PokemonList))
	api.Methods(http.MethodGet).Path("/pokemon/pikachu").HandlerFunc(writeJSON(Pikachu))
	api.Methods(http.MethodGet).Path("/pokemon/garbled").HandlerFunc(writeJSON(`<html>not json`))
	api.Methods(http.MethodGet).Path("/pokemon/{name}").HandlerFunc(
		func(response http.ResponseWriter, _ *http.Request) {
			response.Header().Set("Content-Type", "text/plain; charset=utf-8")
			response.WriteHeader(http.StatusNotFound)
			io.WriteString(response, "Not Found")
		},
	)

	u.Server = httptest.NewServer(router)
	u.BaseURL = u.Server.URL + "/api/v2"
	return u
}

func writeJSON(body string) http.HandlerFunc {
	return func(response http.ResponseWriter, _ *http.Request) {
		response.Header().Set("Content-Type", "application/json; charset=utf-8")
		io.WriteString(response, body)
	}
}
