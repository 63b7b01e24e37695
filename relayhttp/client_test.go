// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package relayhttp

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmidt-org/httpaux/httpmock"
	"github.com/xmidt-org/httpaux/roundtrip"
)

func TestTransportConfigNewTransport(t *testing.T) {
	var (
		assert = assert.New(t)

		tc = TransportConfig{
			TLSHandshakeTimeout:   15 * time.Second,
			DisableKeepAlives:     true,
			DisableCompression:    true,
			MaxIdleConns:          17,
			MaxIdleConnsPerHost:   8,
			MaxConnsPerHost:       32,
			IdleConnTimeout:       90 * time.Second,
			ResponseHeaderTimeout: 5 * time.Second,
			ExpectContinueTimeout: time.Second,
			ForceAttemptHTTP2:     true,
		}

		transport = tc.NewTransport()
	)

	assert.Equal(15*time.Second, transport.TLSHandshakeTimeout)
	assert.True(transport.DisableKeepAlives)
	assert.True(transport.DisableCompression)
	assert.Equal(17, transport.MaxIdleConns)
	assert.Equal(8, transport.MaxIdleConnsPerHost)
	assert.Equal(32, transport.MaxConnsPerHost)
	assert.Equal(90*time.Second, transport.IdleConnTimeout)
	assert.Equal(5*time.Second, transport.ResponseHeaderTimeout)
	assert.Equal(time.Second, transport.ExpectContinueTimeout)
	assert.True(transport.ForceAttemptHTTP2)
	assert.NotNil(transport.Proxy)
}

func TestClientConfigNewClient(t *testing.T) {
	t.Run("NoChain", func(t *testing.T) {
		client := ClientConfig{Timeout: 3 * time.Second}.NewClient(roundtrip.Chain{})
		require.NotNil(t, client)
		assert.Equal(t, 3*time.Second, client.Timeout)
		assert.IsType(t, (*http.Transport)(nil), client.Transport)
	})

	t.Run("Chain", func(t *testing.T) {
		var decorated http.RoundTripper
		client := ClientConfig{}.NewClient(
			roundtrip.NewChain(func(next http.RoundTripper) http.RoundTripper {
				decorated = next
				return roundtrip.Func(next.RoundTrip)
			}),
		)

		require.NotNil(t, client)
		assert.IsType(t, (*http.Transport)(nil), decorated)
		assert.Implements(t, (*roundtrip.CloseIdler)(nil), client.Transport)
	})

	t.Run("Order", func(t *testing.T) {
		var (
			order []string
			m     = httpmock.NewRoundTripper(t)
		)

		record := func(name string) roundtrip.Constructor {
			return func(next http.RoundTripper) http.RoundTripper {
				return roundtrip.Func(func(request *http.Request) (*http.Response, error) {
					order = append(order, name)
					return next.RoundTrip(request)
				})
			}
		}

		client := ClientConfig{}.NewClient(
			roundtrip.NewChain(
				record("first"),
				record("second"),
				func(http.RoundTripper) http.RoundTripper { return m },
			),
		)

		m.OnAny().Return(&http.Response{StatusCode: http.StatusOK, Body: httpmock.EmptyBody()}, nil).Once()
		response, err := client.Get("http://pokeapi.test/api/v2/pokemon")
		require.NoError(t, err)
		response.Body.Close()

		assert.Equal(t, []string{"first", "second"}, order)
		m.AssertExpectations()
	})
}
