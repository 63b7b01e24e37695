// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package pokerelay

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/xmidt-org/pokerelay/pokeapi"
	"github.com/xmidt-org/pokerelay/relayhttp"
	"github.com/xmidt-org/pokerelay/relaylog"
	"go.uber.org/fx"
	"go.uber.org/multierr"
)

const (
	// ApplicationName is used for the env prefix and the upstream User-Agent.
	ApplicationName = "pokerelay"

	// DefaultAddress is the bind address used when none is configured.
	DefaultAddress = ":8000"
)

// Config is the complete relay configuration.
type Config struct {
	Server   relayhttp.ServerConfig
	Upstream pokeapi.Config
	Logging  relaylog.Config
}

// Validate checks the parts of the configuration that would otherwise only fail
// once the service is running.  All problems are reported together.
func (c Config) Validate() (err error) {
	if _, zerr := c.Logging.NewZapConfig(); zerr != nil {
		err = multierr.Append(err, zerr)
	}

	durations := []struct {
		name  string
		value time.Duration
	}{
		{"server.readTimeout", c.Server.ReadTimeout},
		{"server.readHeaderTimeout", c.Server.ReadHeaderTimeout},
		{"server.writeTimeout", c.Server.WriteTimeout},
		{"server.idleTimeout", c.Server.IdleTimeout},
		{"upstream.client.timeout", c.Upstream.Client.Timeout},
	}

	for _, d := range durations {
		if d.value < 0 {
			err = multierr.Append(err, fmt.Errorf("%s cannot be negative: %s", d.name, d.value))
		}
	}

	return
}

// SetDefaults installs the default value of every configuration key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.network", "tcp")
	v.SetDefault("server.address", DefaultAddress)
	v.SetDefault("server.readHeaderTimeout", 10*time.Second)
	v.SetDefault("server.idleTimeout", 2*time.Minute)
	v.SetDefault("server.header", map[string]interface{}{
		"Access-Control-Allow-Origin": []string{"*"},
	})

	v.SetDefault("upstream.baseURL", pokeapi.DefaultBaseURL)
	v.SetDefault("upstream.userAgent", ApplicationName)
	v.SetDefault("upstream.client.timeout", 10*time.Second)
	v.SetDefault("upstream.client.transport.maxIdleConnsPerHost", 8)
	v.SetDefault("upstream.client.transport.idleConnTimeout", 90*time.Second)
	v.SetDefault("upstream.client.transport.tlsHandshakeTimeout", 10*time.Second)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.encoding", "json")
	v.SetDefault("logging.outputPaths", []string{"stdout"})
	v.SetDefault("logging.errorOutputPaths", []string{"stderr"})
}

// NewViper creates the relay's viper instance.  Defaults are installed, and
// environment variables such as POKERELAY_SERVER_ADDRESS override any key.  If file
// is not empty, it is read as the configuration file.
func NewViper(file string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(ApplicationName)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if len(file) > 0 {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("unable to read configuration file %s: %w", file, err)
		}
	}

	return v, nil
}

// ConfigOut exposes each section of Config as its own component.
type ConfigOut struct {
	fx.Out

	Server   relayhttp.ServerConfig
	Upstream pokeapi.Config
	Logging  relaylog.Config
}

// NewConfig unmarshals and validates the relay configuration.
func NewConfig(u Unmarshaler) (out ConfigOut, err error) {
	var c Config
	if err = u.Unmarshal(&c); err != nil {
		return
	}

	if err = c.Validate(); err != nil {
		return
	}

	out = ConfigOut{
		Server:   c.Server,
		Upstream: c.Upstream,
		Logging:  c.Logging,
	}

	return
}
