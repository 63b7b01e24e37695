// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package pokerelay

import (
	"errors"

	"github.com/spf13/viper"
	"go.uber.org/fx"
)

// ErrNilViper is returned to the fx.App when ForViper is passed a nil instance.
var ErrNilViper = errors.New("the viper instance cannot be nil")

// Unmarshaler is the strategy used to unmarshal configuration.  The whole tree
// is always read at once, so that defaults merge key by key with the file and
// environment.
type Unmarshaler interface {
	// Unmarshal reads the entire configuration into value.
	Unmarshal(value interface{}) error
}

// ViperUnmarshaler is the Unmarshaler backed by viper.
type ViperUnmarshaler struct {
	Viper *viper.Viper

	// Options are passed to every unmarshal call.
	Options []viper.DecoderConfigOption
}

// Unmarshal implements Unmarshaler.
func (vu ViperUnmarshaler) Unmarshal(value interface{}) error {
	return vu.Viper.Unmarshal(value, vu.Options...)
}

// ForViper provides an Unmarshaler backed by v.  DefaultDecodeHooks is always applied
// first, so the given options may override it.
func ForViper(v *viper.Viper, o ...viper.DecoderConfigOption) fx.Option {
	if v == nil {
		return fx.Error(ErrNilViper)
	}

	return fx.Provide(
		func() Unmarshaler {
			return ViperUnmarshaler{
				Viper: v,
				Options: append(
					[]viper.DecoderConfigOption{DefaultDecodeHooks},
					o...,
				),
			}
		},
	)
}
