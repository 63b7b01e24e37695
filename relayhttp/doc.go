// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package relayhttp builds the relay's http.Server and upstream http.Client from
unmarshaled configuration, and binds the server's accept loop to an fx.App.
*/
package relayhttp
