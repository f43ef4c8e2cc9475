// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/crypto"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/internal/validators"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// dummyPassword is hashed once at construction. Its hash is verified
// against when the email is unknown, so that sign-in spends the same time
// whether or not the account exists.
const dummyPassword = "no-such-account"

// authService is the concrete implementation of AuthService.
// It validates credentials, hashes and verifies passwords through a
// PasswordHasher, issues and verifies tokens through a TokenCodec and keeps
// accounts in a UserRepository.
type authService struct {
	// userRepository is the user directory.
	userRepository store.UserRepository

	// transactor makes the read-then-write sequences atomic.
	transactor store.Transactor

	hasher crypto.PasswordHasher
	tokens crypto.TokenCodec

	// ids issues new user identifiers.
	ids IDGenerator

	// now is the clock used for created_at and last_signin_at.
	now func() time.Time

	// dummyHash is a hash of dummyPassword at the configured cost.
	dummyHash string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given storages,
// password hasher and token codec. It hashes a placeholder password once,
// so construction takes about as long as one sign-in.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(storages *store.Storages, hasher crypto.PasswordHasher, tokens crypto.TokenCodec, logger *logger.Logger) (AuthService, error) {
	dummyHash, err := hasher.Hash(dummyPassword)
	if err != nil {
		return nil, fmt.Errorf("error hashing placeholder password: %w", err)
	}

	return &authService{
		userRepository: storages.UserRepository,
		transactor:     storages.Transactor,
		hasher:         hasher,
		tokens:         tokens,
		ids:            utils.NewUUIDGenerator(),
		now:            time.Now,
		dummyHash:      dummyHash,
		logger:         logger,
	}, nil
}

// SignUp creates a new user account.
//
// The email is validated and normalised first, then the password strength
// rules are applied. The first failing rule is returned as a
// [*validators.ValidationError].
//
// The normalised email is looked up and the password is hashed before any
// transaction is opened, so no connection is held during bcrypt. Returns:
//   - ErrEmailExists if the email is taken, whether the pre-check or the
//     store's unique constraint detects it.
//   - A wrapped storage or hashing error on any other failure.
func (a *authService) SignUp(ctx context.Context, credentials models.Credentials) (models.PublicUser, error) {
	log := logger.FromContext(ctx)

	email, err := validators.ValidateEmail(credentials.Email)
	if err != nil {
		log.Info().Str("func", "*authService.SignUp").Msg("sign-up rejected: invalid email")
		return models.PublicUser{}, err
	}
	if err = validators.ValidatePassword(credentials.Password); err != nil {
		log.Info().Str("func", "*authService.SignUp").Str("email", email).Msg("sign-up rejected: weak password")
		return models.PublicUser{}, err
	}

	user, err := a.newUser(ctx, email, credentials.Password)
	if err == nil {
		err = a.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
			if err := a.userRepository.Insert(ctx, user); err != nil {
				if errors.Is(err, store.ErrEmailAlreadyExists) {
					return ErrEmailExists
				}
				return fmt.Errorf("user creation ended with error: %w", err)
			}
			return nil
		})
	}
	if err != nil {
		if errors.Is(err, ErrEmailExists) {
			log.Info().Str("func", "*authService.SignUp").Str("email", email).Msg("sign-up rejected: email already registered")
		} else {
			log.Err(err).Str("func", "*authService.SignUp").Str("email", email).Msg("sign-up failed")
		}
		return models.PublicUser{}, err
	}

	log.Info().Str("func", "*authService.SignUp").Str("user_id", user.UserID).Msg("user registered")
	return user.Public(), nil
}

// SignIn authenticates an existing user and issues an access token.
//
// The email is only normalised, not validated: a malformed email simply
// matches no account. An unknown email and a wrong password both return
// ErrInvalidCredentials.
//
// The password is checked outside any transaction. On success the sign-in
// time is recorded and a token is issued in one transaction, so a token
// failure leaves the previous sign-in time intact.
func (a *authService) SignIn(ctx context.Context, credentials models.Credentials) (models.AuthToken, error) {
	log := logger.FromContext(ctx)

	email := strings.ToLower(strings.TrimSpace(credentials.Email))
	if email == "" || credentials.Password == "" {
		log.Info().Str("func", "*authService.SignIn").Msg("sign-in rejected: empty credentials")
		return models.AuthToken{}, ErrInvalidCredentials
	}

	var token models.Token
	user, err := a.checkPassword(ctx, email, credentials.Password)
	if err == nil {
		signedInAt := a.timestamp()
		user.LastSigninAt = &signedInAt

		err = a.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
			var err error
			token, err = a.tokens.Issue(models.TokenClaims{UserID: user.UserID, Email: user.Email})
			if err != nil {
				return fmt.Errorf("token creation failed: %w", err)
			}

			if err = a.userRepository.Update(ctx, user); err != nil {
				return fmt.Errorf("updating sign-in time failed: %w", err)
			}
			return nil
		})
	}
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			log.Info().Str("func", "*authService.SignIn").Msg("sign-in rejected: invalid credentials")
		} else {
			log.Err(err).Str("func", "*authService.SignIn").Msg("sign-in failed")
		}
		return models.AuthToken{}, err
	}

	log.Info().Str("func", "*authService.SignIn").Str("user_id", user.UserID).Msg("user signed in")
	return models.AuthToken{
		AccessToken: token.String(),
		TokenType:   models.TokenTypeBearer,
		ExpiresIn:   token.ExpiresIn(),
		User:        user.Public(),
	}, nil
}

// Authenticate verifies a bearer token and resolves its subject.
//
// Token rejections are returned as is ([crypto.ErrTokenExpired],
// [crypto.ErrTokenInvalid]). A subject that is not a known user yields
// ErrUnauthorized.
func (a *authService) Authenticate(ctx context.Context, token string) (models.User, error) {
	log := logger.FromContext(ctx)

	claims, err := a.tokens.Verify(token)
	if err != nil {
		log.Info().Err(err).Str("func", "*authService.Authenticate").Msg("token rejected")
		return models.User{}, err
	}

	if !utils.IsUUID(claims.UserID) {
		log.Info().Str("func", "*authService.Authenticate").Msg("token subject is not a user id")
		return models.User{}, ErrUnauthorized
	}

	user, err := a.userRepository.FindByID(ctx, claims.UserID)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Info().Str("func", "*authService.Authenticate").Str("user_id", claims.UserID).Msg("token subject not found")
		return models.User{}, ErrUnauthorized
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Authenticate").Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// CurrentUser returns the public projection of userID, or ErrUnauthorized
// when the account does not exist.
func (a *authService) CurrentUser(ctx context.Context, userID string) (models.PublicUser, error) {
	user, err := a.userRepository.FindByID(ctx, userID)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.PublicUser{}, ErrUnauthorized
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.CurrentUser").Msg("user search by id failed")
		return models.PublicUser{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user.Public(), nil
}

// newUser checks that email is free and builds the account with a hashed
// password.
func (a *authService) newUser(ctx context.Context, email, password string) (models.User, error) {
	_, err := a.userRepository.FindByEmail(ctx, email)
	if err == nil {
		return models.User{}, ErrEmailExists
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	hash, err := a.hasher.Hash(password)
	if err != nil {
		return models.User{}, err
	}

	return models.User{
		UserID:       a.ids.Generate(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    a.timestamp(),
	}, nil
}

// checkPassword returns the account of email when password matches it.
// An unknown email still costs one bcrypt verification.
func (a *authService) checkPassword(ctx context.Context, email, password string) (models.User, error) {
	user, err := a.userRepository.FindByEmail(ctx, email)
	if errors.Is(err, store.ErrUserNotFound) {
		a.hasher.Verify(password, a.dummyHash)
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.hasher.Verify(password, user.PasswordHash) {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

// timestamp returns the current time in UTC at the microsecond resolution
// kept by the database.
func (a *authService) timestamp() time.Time {
	return a.now().UTC().Truncate(time.Microsecond)
}
