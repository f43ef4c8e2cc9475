// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the todo API.
//
// It provides the chi router, route handlers for authentication and tasks,
// and the middleware chain: panic recovery, CORS, trace ids, request
// logging, Prometheus metrics, gzip compression, per-request timeouts and
// bearer-token authentication.
//
// Handlers decode the request, call exactly one service operation and map
// its error to a status code and an [models.ErrorResponse] body through
// errors_mapper.go. Internal failures never leak their detail to the
// caller.
package http
