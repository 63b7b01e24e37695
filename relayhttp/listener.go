// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package relayhttp

import (
	"context"
	"net"
	"net/http"
	"time"

	"go.uber.org/fx"
)

// ListenerFactory creates the net.Listener for a server.  Implementations should
// bind to http.Server.Addr.
type ListenerFactory interface {
	Listen(context.Context, *http.Server) (net.Listener, error)
}

// ListenerFactoryFunc is a closure type that implements ListenerFactory.
type ListenerFactoryFunc func(context.Context, *http.Server) (net.Listener, error)

// Listen implements ListenerFactory.
func (lff ListenerFactoryFunc) Listen(ctx context.Context, s *http.Server) (net.Listener, error) {
	return lff(ctx, s)
}

// ListenerConstructor decorates a net.Listener after it has been created.
type ListenerConstructor func(net.Listener) net.Listener

// ListenerChain is an immutable, ordered set of ListenerConstructors.  The zero value
// is an empty chain.
type ListenerChain struct {
	c []ListenerConstructor
}

// NewListenerChain creates a chain that applies the given constructors in order.
func NewListenerChain(c ...ListenerConstructor) ListenerChain {
	return ListenerChain{
		c: append([]ListenerConstructor{}, c...),
	}
}

// Append returns a new chain with more constructors added to the end.
func (lc ListenerChain) Append(more ...ListenerConstructor) ListenerChain {
	if len(more) == 0 {
		return lc
	}

	return ListenerChain{
		c: append(
			append([]ListenerConstructor{}, lc.c...),
			more...,
		),
	}
}

// Then decorates next.  The first constructor in the chain is the outermost.
func (lc ListenerChain) Then(next net.Listener) net.Listener {
	for i := len(lc.c) - 1; i >= 0; i-- {
		next = lc.c[i](next)
	}

	return next
}

// Factory decorates the listeners produced by next with this chain.
func (lc ListenerChain) Factory(next ListenerFactory) ListenerFactory {
	if len(lc.c) == 0 {
		return next
	}

	return ListenerFactoryFunc(func(ctx context.Context, s *http.Server) (net.Listener, error) {
		l, err := next.Listen(ctx, s)
		if err != nil {
			return nil, err
		}

		return lc.Then(l), nil
	})
}

// CaptureListenAddress returns a ListenerConstructor that sends the bound address to ch.
// Tests use this to discover the port of a server configured with an address like "127.0.0.1:0".
// The channel must have room for the address, as the send happens during app startup.
func CaptureListenAddress(ch chan<- net.Addr) ListenerConstructor {
	return func(next net.Listener) net.Listener {
		ch <- next.Addr()
		return next
	}
}

// AwaitListenAddress waits up to d for an address on ch.  If nothing arrives, fail is
// invoked and this function returns a nil net.Addr and false.
func AwaitListenAddress(fail func(string, ...interface{}), ch <-chan net.Addr, d time.Duration) (a net.Addr, ok bool) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case a = <-ch:
		ok = true

	case <-timer.C:
		fail("no listen address within %s", d)
	}

	return
}

// ServerExit is run when a server's accept loop returns.
type ServerExit func()

// ShutdownOnExit stops the enclosing fx.App whenever the accept loop exits.
func ShutdownOnExit(shutdowner fx.Shutdowner, opts ...fx.ShutdownOption) ServerExit {
	return func() {
		shutdowner.Shutdown(opts...)
	}
}

// Serve runs the accept loop for s on l, then runs each onExit callback.
func Serve(s *http.Server, l net.Listener, onExit ...ServerExit) error {
	defer func() {
		for _, f := range onExit {
			f()
		}
	}()

	return s.Serve(l)
}

// ServerOnStart produces an fx.Hook OnStart closure.  The listener is created synchronously,
// so bind errors fail app startup, and the accept loop then runs in its own goroutine.
func ServerOnStart(s *http.Server, f ListenerFactory, onExit ...ServerExit) func(context.Context) error {
	return func(ctx context.Context) error {
		l, err := f.Listen(ctx, s)
		if err != nil {
			return err
		}

		go Serve(s, l, onExit...)
		return nil
	}
}
