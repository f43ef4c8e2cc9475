// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/models"
)

// AuthService registers users, signs them in and resolves bearer tokens to
// principals.
type AuthService interface {
	// SignUp validates the credentials and creates a new account. It never
	// issues a token.
	SignUp(ctx context.Context, credentials models.Credentials) (models.PublicUser, error)

	// SignIn checks the credentials, records the sign-in time and issues an
	// access token.
	SignIn(ctx context.Context, credentials models.Credentials) (models.AuthToken, error)

	// Authenticate verifies a bearer token and returns the user it names.
	Authenticate(ctx context.Context, token string) (models.User, error)

	// CurrentUser returns the public view of the given user.
	CurrentUser(ctx context.Context, userID string) (models.PublicUser, error)
}

// TaskService manages the tasks of one owner at a time. A task owned by
// someone else is reported as missing.
type TaskService interface {
	List(ctx context.Context, ownerID string) ([]models.Task, error)
	Create(ctx context.Context, ownerID string, request models.TaskRequest) (models.Task, error)
	Get(ctx context.Context, ownerID, taskID string) (models.Task, error)
	Update(ctx context.Context, ownerID, taskID string, request models.TaskRequest) (models.Task, error)
	Delete(ctx context.Context, ownerID, taskID string) error
	ToggleCompletion(ctx context.Context, ownerID, taskID string) (models.Task, error)
}

// AppInfoService exposes build information of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// IDGenerator issues identifiers for new users and tasks.
type IDGenerator interface {
	Generate() string
}
