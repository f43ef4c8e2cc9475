// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account entity used for authentication and task
// ownership. PasswordHash is written by the password hasher only and is
// never serialised.
type User struct {
	// UserID is the unique identifier of the user (UUIDv7 string).
	UserID string `json:"id"`

	// Email is the unique user email, stored trimmed and lower-cased.
	Email string `json:"email"`

	// PasswordHash is the self-describing bcrypt hash of the password.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`

	// LastSigninAt is the timestamp of the last successful sign-in.
	// Nil until the first sign-in.
	LastSigninAt *time.Time `json:"last_signin_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns the projection of u that is safe to return to clients.
func (u User) Public() PublicUser {
	return PublicUser{
		UserID:       u.UserID,
		Email:        u.Email,
		CreatedAt:    u.CreatedAt,
		LastSigninAt: u.LastSigninAt,
	}
}

// PublicUser is the user representation exposed through the API.
// It intentionally has no password-related fields.
type PublicUser struct {
	UserID       string     `json:"id"`
	Email        string     `json:"email"`
	CreatedAt    time.Time  `json:"created_at"`
	LastSigninAt *time.Time `json:"last_signin_at"`
}

// Credentials is the request body of the sign-up and sign-in endpoints.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
