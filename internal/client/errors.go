// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	ErrEmptyEmail    = errors.New("email is required")
	ErrEmptyPassword = errors.New("password is required")
	ErrNothingToEdit = errors.New("nothing to edit: pass --title or --description")
	ErrEmptyTitle    = errors.New("title must not be empty")
)
