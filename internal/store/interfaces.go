// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the user directory: lookup and persistence of user
// accounts by email or id.
type UserRepository interface {
	// FindByEmail returns the user with the given normalised email or
	// ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (models.User, error)

	// FindByID returns the user with the given id or ErrUserNotFound.
	FindByID(ctx context.Context, userID string) (models.User, error)

	// Insert persists a new user. A duplicate email yields
	// ErrEmailAlreadyExists.
	Insert(ctx context.Context, user models.User) error

	// Update overwrites the mutable fields of an existing user.
	Update(ctx context.Context, user models.User) error
}

// TaskRepository persists tasks. Every method is scoped by the owner id.
type TaskRepository interface {
	// FindByIDAndOwner returns the task only when it belongs to ownerID;
	// otherwise ErrTaskNotFound.
	FindByIDAndOwner(ctx context.Context, taskID, ownerID string) (models.Task, error)

	// FindAllByOwner returns every task of ownerID ordered by creation time
	// and id. The result is never nil.
	FindAllByOwner(ctx context.Context, ownerID string) ([]models.Task, error)

	// Insert persists a new task.
	Insert(ctx context.Context, task models.Task) error

	// Update overwrites title, description, completion and update time of
	// the task identified by task.TaskID and task.UserID.
	Update(ctx context.Context, task models.Task) error

	// Delete removes the task permanently.
	Delete(ctx context.Context, taskID, ownerID string) error
}

// Transactor runs a unit of work atomically.
type Transactor interface {
	// WithinTransaction calls fn with a context that carries an open
	// transaction. Repository calls made with that context join it. The
	// transaction commits when fn returns nil and rolls back otherwise.
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ErrorClassificator maps driver errors to retry decisions and recognises
// unique constraint violations.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}
