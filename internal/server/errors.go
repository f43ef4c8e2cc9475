// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoTransports means neither the HTTP nor the gRPC listener could be
	// built from the handlers and addresses given to NewServer.
	errNoTransports = errors.New("server: no transport configured")
	// errNothingToServe is returned by Run on a server with no transports.
	errNothingToServe = errors.New("server: nothing to serve")
)
