// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrTokenExpired is returned by [TokenCodec.Verify] for a correctly
	// signed token whose expiry is in the past.
	ErrTokenExpired = errors.New("token has expired")

	// ErrTokenInvalid is returned by [TokenCodec.Verify] for every other
	// rejection: bad signature, unexpected algorithm, missing required
	// claims, malformed encoding.
	ErrTokenInvalid = errors.New("invalid token")

	ErrPasswordHashing      = errors.New("password hashing failed")
	ErrTokenSigning         = errors.New("token signing failed")
	ErrInvalidSigningSecret = errors.New("signing secret must be at least 32 bytes")
	ErrUnsupportedAlgorithm = errors.New("unsupported token signing algorithm")
)
