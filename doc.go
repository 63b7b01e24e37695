// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package pokerelay assembles the relay: a small HTTP service that renders a few
HTML fragments and relays selected PokeAPI endpoints.

Configuration is read with viper and unmarshaled into a Config.  Module wires the
logger, the upstream client, the route table and the server into an fx.App.
*/
package pokerelay
