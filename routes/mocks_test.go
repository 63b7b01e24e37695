// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package routes

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"
)

type mockUpstream struct {
	mock.Mock
}

func (m *mockUpstream) List(ctx context.Context) (json.RawMessage, error) {
	args := m.Called(ctx)
	body, _ := args.Get(0).(json.RawMessage)
	return body, args.Error(1)
}

func (m *mockUpstream) ExpectList() *mock.Call {
	return m.On("List", mock.Anything)
}

func (m *mockUpstream) Pokemon(ctx context.Context, name string) (json.RawMessage, error) {
	args := m.Called(ctx, name)
	body, _ := args.Get(0).(json.RawMessage)
	return body, args.Error(1)
}

func (m *mockUpstream) ExpectPokemon(name string) *mock.Call {
	return m.On("Pokemon", mock.Anything, name)
}

func (m *mockUpstream) Abilities(ctx context.Context, name string) (json.RawMessage, error) {
	args := m.Called(ctx, name)
	body, _ := args.Get(0).(json.RawMessage)
	return body, args.Error(1)
}

func (m *mockUpstream) ExpectAbilities(name string) *mock.Call {
	return m.On("Abilities", mock.Anything, name)
}
