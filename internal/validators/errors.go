// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

// Sentinel errors matched by callers with [errors.Is]. Every error returned
// by this package wraps exactly one of them inside a [*ValidationError].
var (
	ErrInvalidEmail       = errors.New("invalid email")
	ErrWeakPassword       = errors.New("weak password")
	ErrEmptyTitle         = errors.New("empty title")
	ErrTitleTooLong       = errors.New("title too long")
	ErrDescriptionTooLong = errors.New("description too long")
)

// ValidationError carries the human-readable message of the first rule that
// failed, together with the sentinel describing the rule family.
type ValidationError struct {
	// Err is one of the package sentinels.
	Err error

	// Message is safe to show to the API caller as is.
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func newValidationError(err error, message string) *ValidationError {
	return &ValidationError{Err: err, Message: message}
}
