// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package routes

import (
	"html"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const (
	contentTypeHTML = "text/html; charset=utf-8"
	contentTypeJSON = "application/json; charset=utf-8"
)

// HTML is a handler that always writes the same HTML fragment.
type HTML string

func (h HTML) ServeHTTP(response http.ResponseWriter, _ *http.Request) {
	writeHTML(response, string(h))
}

// Heading renders the path variable named by Var inside an <h1> element.
// The value is the raw, still-escaped path segment, and it is HTML-escaped
// before rendering.
type Heading struct {
	Var    string
	Logger *zap.Logger
}

func (h Heading) ServeHTTP(response http.ResponseWriter, request *http.Request) {
	vars := mux.Vars(request)
	h.Logger.Debug("path variables", zap.Any("vars", vars))
	writeHTML(response, "<h1>"+html.EscapeString(vars[h.Var])+"</h1>")
}

func writeHTML(response http.ResponseWriter, fragment string) {
	response.Header().Set("Content-Type", contentTypeHTML)
	io.WriteString(response, fragment)
}
