// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// TokenClaims is the identity carried by an access token.
type TokenClaims struct {
	// UserID is the token subject ("sub" claim).
	UserID string

	// Email is the user email at issuance time.
	Email string

	// IssuedAt is the "iat" claim.
	IssuedAt time.Time

	// ExpiresAt is the "exp" claim.
	ExpiresAt time.Time
}

// Token is a signed access token together with the claims it carries.
type Token struct {
	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string

	// Claims are the claims that were signed into SignedString.
	Claims TokenClaims
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}

// ExpiresIn returns the token lifetime in whole seconds.
func (t Token) ExpiresIn() int64 {
	return int64(t.Claims.ExpiresAt.Sub(t.Claims.IssuedAt) / time.Second)
}

// TokenTypeBearer is the only token type issued by the API.
const TokenTypeBearer = "bearer"

// AuthToken is the response of a successful sign-in.
type AuthToken struct {
	AccessToken string     `json:"access_token"`
	TokenType   string     `json:"token_type"`
	ExpiresIn   int64      `json:"expires_in"`
	User        PublicUser `json:"user"`
}
