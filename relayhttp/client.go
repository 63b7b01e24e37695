// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package relayhttp

import (
	"net/http"
	"time"

	"github.com/xmidt-org/httpaux/roundtrip"
)

// TransportConfig is the unmarshaled form of an *http.Transport.
type TransportConfig struct {
	TLSHandshakeTimeout   time.Duration
	DisableKeepAlives     bool
	DisableCompression    bool
	MaxIdleConns          int
	MaxIdleConnsPerHost   int
	MaxConnsPerHost       int
	IdleConnTimeout       time.Duration
	ResponseHeaderTimeout time.Duration
	ExpectContinueTimeout time.Duration
	ForceAttemptHTTP2     bool
}

// NewTransport creates an *http.Transport from this configuration.  Proxy settings
// are taken from the environment.
func (tc TransportConfig) NewTransport() *http.Transport {
	return &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		TLSHandshakeTimeout:   tc.TLSHandshakeTimeout,
		DisableKeepAlives:     tc.DisableKeepAlives,
		DisableCompression:    tc.DisableCompression,
		MaxIdleConns:          tc.MaxIdleConns,
		MaxIdleConnsPerHost:   tc.MaxIdleConnsPerHost,
		MaxConnsPerHost:       tc.MaxConnsPerHost,
		IdleConnTimeout:       tc.IdleConnTimeout,
		ResponseHeaderTimeout: tc.ResponseHeaderTimeout,
		ExpectContinueTimeout: tc.ExpectContinueTimeout,
		ForceAttemptHTTP2:     tc.ForceAttemptHTTP2,
	}
}

// ClientConfig is the unmarshaled form of an *http.Client.
type ClientConfig struct {
	// Timeout bounds each request, including reading the body.  Zero means no timeout.
	Timeout time.Duration

	Transport TransportConfig
}

// NewClient creates an *http.Client whose transport is decorated by chain.
func (cc ClientConfig) NewClient(chain roundtrip.Chain) *http.Client {
	return &http.Client{
		Timeout:   cc.Timeout,
		Transport: chain.Then(cc.Transport.NewTransport()),
	}
}
