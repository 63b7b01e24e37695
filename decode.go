// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package pokerelay

import (
	"encoding"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// DefaultDecodeHooks is a viper.DecoderConfigOption that sets the decode hooks used
// for the relay's configuration: durations, comma-separated slices, and any type
// implementing encoding.TextUnmarshaler.
func DefaultDecodeHooks(dc *mapstructure.DecoderConfig) {
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		TextUnmarshalerHookFunc,
	)
}

var textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()

// TextUnmarshalerHookFunc is a mapstructure.DecodeHookFunc that converts a string
// using the destination type's UnmarshalText.  Both T and *T destinations are
// supported, where *T implements encoding.TextUnmarshaler.
//
// Any src that is not a string, or any destination that cannot unmarshal text,
// is returned unchanged.
func TextUnmarshalerHookFunc(_, to reflect.Type, src interface{}) (interface{}, error) {
	text, ok := src.(string)
	if !ok {
		return src, nil
	}

	switch {
	case to.Kind() != reflect.Ptr && reflect.PtrTo(to).Implements(textUnmarshalerType):
		ptr := reflect.New(to)
		err := ptr.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(text))
		return ptr.Elem().Interface(), err

	case to.Kind() == reflect.Ptr && to.Elem().Kind() != reflect.Ptr && to.Implements(textUnmarshalerType):
		ptr := reflect.New(to.Elem())
		err := ptr.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(text))
		return ptr.Interface(), err

	default:
		return src, nil
	}
}
