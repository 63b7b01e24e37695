// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package routes

import (
	"errors"
	"net/http"

	"github.com/xmidt-org/httpaux/erraux"
	"github.com/xmidt-org/pokerelay/pokeapi"
)

// UpstreamCause is the cause reported for every failed relay.  Upstream details
// are logged, never returned to the client.
const UpstreamCause = "upstream request failed"

var (
	// ErrNotFound is encoded for requests that match no route.
	ErrNotFound = errors.New(http.StatusText(http.StatusNotFound))

	// ErrMethodNotAllowed is encoded for requests whose path matches a route
	// but whose method does not.
	ErrMethodNotAllowed = errors.New(http.StatusText(http.StatusMethodNotAllowed))
)

// NewEncoder creates the erraux.Encoder for every error response the routes write.
// Routing errors keep their status codes.  Anything else came from the upstream and
// is a 502 Bad Gateway.
func NewEncoder() erraux.Encoder {
	return erraux.Encoder{}.Add(
		erraux.Is(ErrNotFound).StatusCode(http.StatusNotFound),
		erraux.Is(ErrMethodNotAllowed).StatusCode(http.StatusMethodNotAllowed),
		erraux.As((*pokeapi.StatusError)(nil)).StatusCode(http.StatusBadGateway).Cause(UpstreamCause),
		erraux.As((*pokeapi.MissingFieldError)(nil)).StatusCode(http.StatusBadGateway).Cause(UpstreamCause),
		erraux.Is(pokeapi.ErrMalformedBody).StatusCode(http.StatusBadGateway).Cause(UpstreamCause),

		// transport failures, timeouts, and canceled requests
		erraux.As((*error)(nil)).StatusCode(http.StatusBadGateway).Cause(UpstreamCause),
	)
}

// ErrorHandler encodes the same error for every request.  The router uses it
// for its not found and method not allowed handlers.
type ErrorHandler struct {
	Encoder erraux.Encoder
	Err     error
}

func (eh ErrorHandler) ServeHTTP(response http.ResponseWriter, request *http.Request) {
	eh.Encoder.Encode(request.Context(), eh.Err, response)
}
