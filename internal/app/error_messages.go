// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-todo-keeper server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// the "detail" field of HTTP error responses. Keeping them in one place
// ensures consistent wording throughout the API. Validation messages are not
// listed here: they come from the failed rule itself.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded as JSON.
	MsgInvalidDataProvided = "Invalid request body"

	// MsgEmailAlreadyRegistered is returned when a sign-up is rejected
	// because the normalised email is already in use.
	MsgEmailAlreadyRegistered = "Email already registered"

	// MsgInvalidEmailOrPassword is returned for every failed sign-in. It does
	// not tell an unknown email from a wrong password.
	MsgInvalidEmailOrPassword = "Invalid email or password"

	// MsgNotAuthenticated is returned when a protected route is called
	// without a bearer token.
	MsgNotAuthenticated = "Not authenticated"

	// MsgTokenHasExpired is returned when a correctly signed bearer token is
	// past its expiry time.
	MsgTokenHasExpired = "Token has expired"

	// MsgInvalidAuthCredentials is returned when a bearer token cannot be
	// verified.
	MsgInvalidAuthCredentials = "Invalid authentication credentials"

	// MsgUserNotFound is returned when a valid token names a user that does
	// not exist.
	MsgUserNotFound = "User not found"

	// MsgTaskNotFound is returned when a task does not exist or belongs to
	// another user.
	MsgTaskNotFound = "Task not found"

	// MsgNotFound is returned for unknown routes.
	MsgNotFound = "Not Found"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal server error"

	// MsgHealthy is the status reported by the health endpoint.
	MsgHealthy = "healthy"
)
