// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the common lifecycle contract for transport servers managed
// by this package.
type Server interface {
	// RunServer starts serving requests and blocks until SIGTERM, SIGINT or
	// SIGQUIT is received, then shuts down gracefully.
	RunServer()

	// Run starts serving requests and blocks until ctx is done or a server
	// fails, then shuts every server down.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}

// transport is one listening server.
type transport interface {
	name() string
	listen() error
	closeListener()
	serve() error
	shutdown(ctx context.Context) error
}
