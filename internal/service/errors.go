// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrEmailExists is returned by sign-up when the normalised email is
	// already registered, either by the pre-check or by the store's unique
	// constraint.
	ErrEmailExists = errors.New("email already registered")

	// ErrInvalidCredentials is returned by sign-in for an unknown email and
	// for a wrong password alike.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUnauthorized is returned when a verified token names a user that no
	// longer exists.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrTaskNotFound is returned when a task does not exist or is owned by
	// another user.
	ErrTaskNotFound = errors.New("task not found")

	ErrVersionIsNotSpecified = errors.New("version is not specified")
)
