// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "github.com/MKhiriev/go-todo-keeper/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher turns plain-text passwords into self-describing adaptive
// hashes and checks candidates against them.
type PasswordHasher interface {
	// Hash returns a salted hash that embeds the algorithm identifier and
	// cost factor. Two calls with the same password return different hashes.
	Hash(password string) (string, error)

	// Verify reports whether password matches hash. A malformed hash is a
	// mismatch, never an error.
	Verify(password, hash string) bool
}

// TokenCodec issues and verifies signed, time-limited bearer tokens.
type TokenCodec interface {
	// Issue signs a token for the given subject. IssuedAt and ExpiresAt of
	// claims are ignored and set by the codec.
	Issue(claims models.TokenClaims) (models.Token, error)

	// Verify checks the signature and then the claims of token. It returns
	// ErrTokenExpired or ErrTokenInvalid on rejection.
	Verify(token string) (models.TokenClaims, error)
}
