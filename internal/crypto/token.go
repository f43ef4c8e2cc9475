// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

const (
	// TokenLifetime is the fixed validity period of every issued token.
	TokenLifetime = 7 * 24 * time.Hour

	// MinSecretLength is the minimal accepted length of the signing secret.
	MinSecretLength = 32
)

var signingMethods = map[string]*jwt.SigningMethodHMAC{
	jwt.SigningMethodHS256.Alg(): jwt.SigningMethodHS256,
	jwt.SigningMethodHS384.Alg(): jwt.SigningMethodHS384,
	jwt.SigningMethodHS512.Alg(): jwt.SigningMethodHS512,
}

// tokenClaims is the JWT payload: registered claims plus the user email.
type tokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// jwtTokenCodec is the JWT implementation of [TokenCodec].
type jwtTokenCodec struct {
	secret []byte
	method *jwt.SigningMethodHMAC
	issuer string
	now    func() time.Time
	parser *jwt.Parser
}

// TokenCodecOption customises a [TokenCodec] built by [NewTokenCodec].
type TokenCodecOption func(*jwtTokenCodec)

// WithClock replaces the wall clock used for issuing and verifying tokens.
func WithClock(now func() time.Time) TokenCodecOption {
	return func(c *jwtTokenCodec) {
		c.now = now
	}
}

// WithIssuer sets the "iss" claim written on issue and required on verify.
func WithIssuer(issuer string) TokenCodecOption {
	return func(c *jwtTokenCodec) {
		c.issuer = issuer
	}
}

// NewTokenCodec returns a JWT [TokenCodec] signing with secret using the
// HMAC algorithm named by algorithm (HS256, HS384 or HS512).
//
// The secret must be at least [MinSecretLength] bytes long.
func NewTokenCodec(secret, algorithm string, opts ...TokenCodecOption) (TokenCodec, error) {
	if len(secret) < MinSecretLength {
		return nil, ErrInvalidSigningSecret
	}

	method, ok := signingMethods[algorithm]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, algorithm)
	}

	c := &jwtTokenCodec{
		secret: []byte(secret),
		method: method,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(c.now),
	}
	if c.issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(c.issuer))
	}
	c.parser = jwt.NewParser(parserOpts...)

	return c, nil
}

// Issue implements [TokenCodec]. Timestamps are truncated to whole seconds,
// the resolution of JWT numeric dates.
func (c *jwtTokenCodec) Issue(claims models.TokenClaims) (models.Token, error) {
	if claims.UserID == "" {
		return models.Token{}, fmt.Errorf("%w: empty subject", ErrTokenSigning)
	}

	issuedAt := c.now().Truncate(time.Second)
	expiresAt := issuedAt.Add(TokenLifetime)

	payload := tokenClaims{
		Email: claims.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.issuer,
			Subject:   claims.UserID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(c.method, payload).SignedString(c.secret)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenSigning, err)
	}

	claims.IssuedAt = issuedAt
	claims.ExpiresAt = expiresAt

	return models.Token{SignedString: signed, Claims: claims}, nil
}

// Verify implements [TokenCodec]. The signature is checked by the parser
// before any claim is read. A token is expired from its exp second on.
func (c *jwtTokenCodec) Verify(token string) (models.TokenClaims, error) {
	var payload tokenClaims
	_, err := c.parser.ParseWithClaims(token, &payload, func(*jwt.Token) (any, error) {
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.TokenClaims{}, ErrTokenExpired
		}
		return models.TokenClaims{}, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	if payload.Subject == "" || payload.IssuedAt == nil {
		return models.TokenClaims{}, fmt.Errorf("%w: missing required claims", ErrTokenInvalid)
	}

	return models.TokenClaims{
		UserID:    payload.Subject,
		Email:     payload.Email,
		IssuedAt:  payload.IssuedAt.Time,
		ExpiresAt: payload.ExpiresAt.Time,
	}, nil
}
