// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/xmidt-org/httpaux"
	"github.com/xmidt-org/httpaux/roundtrip"
	"github.com/xmidt-org/pokerelay/relayhttp"
	"go.uber.org/multierr"
)

// DefaultBaseURL is the public PokeAPI.
const DefaultBaseURL = "https://pokeapi.co/api/v2"

var (
	// ErrInvalidBaseURL indicates that Config.BaseURL is not an absolute http or https URL.
	ErrInvalidBaseURL = errors.New("the upstream base URL must be an absolute http or https URL")

	// ErrMalformedBody indicates that an upstream response body was not the expected JSON.
	ErrMalformedBody = errors.New("malformed upstream response body")
)

// StatusError is returned when the upstream responds with a non-2xx status.
type StatusError struct {
	URL        string
	StatusCode int
}

func (se *StatusError) Error() string {
	return fmt.Sprintf("upstream GET %s returned %d", se.URL, se.StatusCode)
}

// MissingFieldError is returned when an upstream JSON object lacks a field, or
// has it set to null.
type MissingFieldError struct {
	Field string
}

func (mfe *MissingFieldError) Error() string {
	return fmt.Sprintf("upstream response has no %q field", mfe.Field)
}

// Config is the unmarshaled upstream configuration.
type Config struct {
	// BaseURL is the API root.  Paths such as "pokemon" are appended to it.
	BaseURL string

	// UserAgent, if set, is sent on every upstream request.
	UserAgent string

	Client relayhttp.ClientConfig
}

// Client is a read-only PokeAPI client.  Bodies are returned as raw bytes so that
// they can be relayed without re-encoding.
type Client struct {
	baseURL string
	client  *http.Client
}

// New creates a Client.  The given constructors decorate the transport, in order,
// after the standard request headers have been applied.
func New(cfg Config, c ...roundtrip.Constructor) (*Client, error) {
	if len(cfg.BaseURL) == 0 {
		cfg.BaseURL = DefaultBaseURL
	}

	u, err := url.Parse(cfg.BaseURL)
	if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, cfg.BaseURL)
	}

	header := httpaux.NewHeaders("Accept", "application/json")
	if len(cfg.UserAgent) > 0 {
		header = header.AppendHeaders("User-Agent", cfg.UserAgent)
	}

	// requests are always created by Get, so the headers are set in place
	chain := roundtrip.NewChain(
		roundtrip.Header(header.SetTo),
	).Append(c...)

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  cfg.Client.NewClient(chain),
	}, nil
}

// URL returns the absolute upstream URL for path.  The path is appended verbatim,
// so any escaping it carries is preserved.
func (c *Client) URL(path string) string {
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

// Get issues a GET for path and returns the body of a 2xx response.
func (c *Client) Get(ctx context.Context, path string) (body []byte, err error) {
	target := c.URL(path)
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}

	response, err := c.client.Do(request)
	if err != nil {
		return nil, err
	}

	defer func() {
		err = multierr.Append(err, response.Body.Close())
	}()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		io.Copy(io.Discard, response.Body)
		return nil, &StatusError{
			URL:        target,
			StatusCode: response.StatusCode,
		}
	}

	body, err = io.ReadAll(response.Body)
	return
}

// List returns the results field of the first page of GET /pokemon.
func (c *Client) List(ctx context.Context) (json.RawMessage, error) {
	body, err := c.Get(ctx, "pokemon")
	if err != nil {
		return nil, err
	}

	return Field(body, "results")
}

// Pokemon returns the complete GET /pokemon/{name} body.  The name is used verbatim.
func (c *Client) Pokemon(ctx context.Context, name string) (json.RawMessage, error) {
	body, err := c.Get(ctx, "pokemon/"+name)
	if err != nil {
		return nil, err
	}

	if !json.Valid(body) {
		return nil, ErrMalformedBody
	}

	return body, nil
}

// Abilities returns the abilities field of GET /pokemon/{name}.
func (c *Client) Abilities(ctx context.Context, name string) (json.RawMessage, error) {
	body, err := c.Get(ctx, "pokemon/"+name)
	if err != nil {
		return nil, err
	}

	return Field(body, "abilities")
}

// Field extracts one top-level field from a JSON object.  The field's bytes are
// returned exactly as they appear in body.
func Field(body []byte, name string) (json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedBody, err)
	}

	raw, ok := fields[name]
	if !ok || string(raw) == "null" {
		return nil, &MissingFieldError{Field: name}
	}

	return raw, nil
}
