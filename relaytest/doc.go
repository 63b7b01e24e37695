// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

// Package relaytest has test helpers shared by the relay's packages: canned
// upstream responses, a viper-driven fx test suite, and a fake PokeAPI.
package relaytest
