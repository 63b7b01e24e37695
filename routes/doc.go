// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package routes holds the relay's route table.  A handful of routes render small
HTML fragments, and the /pokemon routes relay PokeAPI responses.
*/
package routes
