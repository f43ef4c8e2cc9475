// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Domain errors. Repositories return them unwrapped so services can match
// them with errors.Is.
var (
	// ErrEmailAlreadyExists reports a violation of the unique index on
	// users.email.
	ErrEmailAlreadyExists = errors.New("store: email already exists")
	ErrUserNotFound       = errors.New("store: user not found")
	// ErrTaskNotFound is also returned for a task owned by someone else.
	ErrTaskNotFound = errors.New("store: task not found")

	ErrUnsupportedDSN = errors.New("store: unsupported DSN")
)

// Driver-level failures. They wrap the driver error, which the retry
// classifiers inspect.
var (
	ErrBuildingSQLQuery      = errors.New("store: build query")
	ErrExecutingQuery        = errors.New("store: query")
	ErrExecutingStatement    = errors.New("store: exec statement")
	ErrScanningRow           = errors.New("store: scan row")
	ErrScanningRows          = errors.New("store: iterate rows")
	ErrBeginningTransaction  = errors.New("store: begin transaction")
	ErrCommittingTransaction = errors.New("store: commit transaction")
)
