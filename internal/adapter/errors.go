// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/models"
)

// Sentinel errors returned for non-2xx server responses.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	// ErrNotSignedIn is returned by authenticated calls made before a token
	// was set.
	ErrNotSignedIn = errors.New("not signed in")

	ErrEmptyAddress = errors.New("empty address")
)

// ResponseError is a non-2xx server response. It unwraps to the sentinel
// matching its status code.
type ResponseError struct {
	StatusCode int
	Code       models.ErrorCode
	Detail     string

	sentinel error
}

func (e *ResponseError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s (%s)", e.sentinel, e.Detail, e.Code)
	}
	return fmt.Sprintf("%s: %s", e.sentinel, e.Detail)
}

func (e *ResponseError) Unwrap() error {
	return e.sentinel
}
