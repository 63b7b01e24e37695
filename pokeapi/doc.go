// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package pokeapi is a minimal client for the public PokeAPI REST service
(https://pokeapi.co).  It only fetches; responses are handed back as raw JSON
so that the relay can forward them unmodified.
*/
package pokeapi
