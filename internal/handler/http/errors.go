// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Transport-level errors. errors_mapper.go turns each of them into a
// status code and an error_code.
var (
	ErrEmptyAuthorizationHeader   = errors.New("http: missing Authorization header")
	ErrInvalidAuthorizationHeader = errors.New("http: Authorization scheme is not Bearer")
	ErrEmptyToken                 = errors.New("http: Bearer token is empty")

	// ErrMalformedTaskID is answered exactly like a task that does not exist.
	ErrMalformedTaskID = errors.New("http: task id is not a UUID")

	ErrRouteNotFound = errors.New("http: no route")
)
