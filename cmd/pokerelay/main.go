// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"github.com/xmidt-org/pokerelay"
	"github.com/xmidt-org/pokerelay/relaylog"
	"go.uber.org/fx"
)

// newApp parses the command line and creates the relay's fx.App.  A nil app with
// a nil error means the command line asked for help.
func newApp(args []string, stderr io.Writer) (*fx.App, error) {
	fs := pflag.NewFlagSet(pokerelay.ApplicationName, pflag.ContinueOnError)
	fs.SetOutput(stderr)
	file := fs.StringP("file", "f", "", "the configuration file (YAML or JSON); defaults are used if not set")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, nil
		}

		return nil, err
	}

	v, err := pokerelay.NewViper(*file)
	if err != nil {
		return nil, err
	}

	app := fx.New(
		pokerelay.ForViper(v),
		pokerelay.Module(),
		fx.WithLogger(relaylog.FxLogger),
	)

	return app, app.Err()
}

func main() {
	app, err := newApp(os.Args[1:], os.Stderr)
	switch {
	case err != nil:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)

	case app == nil:
		return
	}

	app.Run()
}
