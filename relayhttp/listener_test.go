// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package relayhttp

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type ListenerSuite struct {
	suite.Suite
}

// wrappedListener lets tests see the order of decoration.
type wrappedListener struct {
	net.Listener
	name string
}

func (suite *ListenerSuite) TestChain() {
	for _, count := range []int{0, 1, 2, 5} {
		suite.Run(fmt.Sprintf("count=%d", count), func() {
			var (
				chain ListenerChain
				names []string
			)

			for i := 0; i < count; i++ {
				name := fmt.Sprintf("l%d", i)
				names = append(names, name)
				chain = chain.Append(func(next net.Listener) net.Listener {
					return wrappedListener{Listener: next, name: name}
				})
			}

			l, err := net.Listen("tcp", "127.0.0.1:0")
			suite.Require().NoError(err)
			defer l.Close()

			// the first constructor is outermost
			decorated := chain.Then(l)
			for _, name := range names {
				wl, ok := decorated.(wrappedListener)
				suite.Require().True(ok)
				suite.Equal(name, wl.name)
				decorated = wl.Listener
			}

			suite.Same(l, decorated)
		})
	}
}

func (suite *ListenerSuite) TestChainImmutable() {
	base := NewListenerChain(func(l net.Listener) net.Listener { return l })
	suite.Same(&base.c[0], &base.Append().c[0])

	extended := base.Append(func(l net.Listener) net.Listener { return l })
	suite.Len(base.c, 1)
	suite.Len(extended.c, 2)
}

func (suite *ListenerSuite) TestFactory() {
	var (
		address = make(chan net.Addr, 1)
		factory = NewListenerChain(CaptureListenAddress(address)).Factory(ServerConfig{})
	)

	l, err := factory.Listen(context.Background(), &http.Server{})
	suite.Require().NoError(err)
	defer l.Close()

	actual, ok := AwaitListenAddress(suite.T().Fatalf, address, time.Second)
	suite.True(ok)
	suite.Equal(l.Addr(), actual)
}

func (suite *ListenerSuite) TestFactoryError() {
	var (
		expected = errors.New("expected")
		called   bool
		factory  = NewListenerChain(func(l net.Listener) net.Listener {
			called = true
			return l
		}).Factory(ListenerFactoryFunc(func(context.Context, *http.Server) (net.Listener, error) {
			return nil, expected
		}))
	)

	l, err := factory.Listen(context.Background(), &http.Server{})
	suite.Nil(l)
	suite.Same(expected, err)
	suite.False(called)
}

func (suite *ListenerSuite) TestEmptyFactory() {
	sc := ServerConfig{}
	suite.Equal(sc, ListenerChain{}.Factory(sc))
}

func (suite *ListenerSuite) TestAwaitListenAddressTimeout() {
	var failed bool
	addr, ok := AwaitListenAddress(
		func(string, ...interface{}) { failed = true },
		make(chan net.Addr),
		10*time.Millisecond,
	)

	suite.Nil(addr)
	suite.False(ok)
	suite.True(failed)
}

func (suite *ListenerSuite) TestServeExit() {
	var (
		exited = make(chan struct{})
		server = &http.Server{Handler: http.NotFoundHandler()}
	)

	start := ServerOnStart(
		server,
		ServerConfig{},
		func() { close(exited) },
	)

	suite.Require().NoError(start(context.Background()))
	suite.Require().NoError(server.Close())

	select {
	case <-exited:
	case <-time.After(2 * time.Second):
		suite.Fail("the exit callback was not run")
	}
}

func TestListener(t *testing.T) {
	suite.Run(t, new(ListenerSuite))
}
