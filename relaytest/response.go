// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package relaytest

import (
	"net/http"

	"github.com/xmidt-org/httpaux/httpmock"
)

// NewResponse creates a canned upstream *http.Response with the given status and body,
// for use with an httpmock.RoundTripper.  The body reports whether it was closed.
func NewResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Header:     http.Header{"Content-Type": {"application/json; charset=utf-8"}},
		Body:       httpmock.BodyString(body),
	}
}
