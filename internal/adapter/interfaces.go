// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the todo API.
//
// The primary abstraction is [ServerAdapter], which hides the REST protocol
// from the command-line client. Error values defined in errors.go are
// mapped from HTTP status codes by mapHTTPError so that callers can use
// [errors.Is] for transport-agnostic error handling (e.g. [ErrConflict]
// for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the todo API server.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// SignUp registers a new account. It does not sign the user in.
	SignUp(ctx context.Context, credentials models.Credentials) (models.PublicUser, error)

	// SignIn exchanges credentials for an access token and stores the token
	// via SetToken.
	SignIn(ctx context.Context, credentials models.Credentials) (models.AuthToken, error)

	// Me returns the account the stored token belongs to.
	Me(ctx context.Context) (models.PublicUser, error)

	// ListTasks returns the tasks of the signed-in user, oldest first.
	ListTasks(ctx context.Context) ([]models.Task, error)

	// CreateTask creates a task owned by the signed-in user.
	CreateTask(ctx context.Context, request models.TaskRequest) (models.Task, error)

	// GetTask returns one task. Tasks of other users are reported as
	// [ErrNotFound].
	GetTask(ctx context.Context, taskID string) (models.Task, error)

	// UpdateTask replaces the title and description of a task.
	UpdateTask(ctx context.Context, taskID string, request models.TaskRequest) (models.Task, error)

	// DeleteTask deletes a task permanently.
	DeleteTask(ctx context.Context, taskID string) error

	// ToggleTask flips the completion flag of a task.
	ToggleTask(ctx context.Context, taskID string) (models.Task, error)

	// ServerVersion returns the version reported by the server.
	ServerVersion(ctx context.Context) (string, error)
}
