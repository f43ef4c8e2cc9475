// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
)

// Storages groups the repositories of the server into a single value that
// can be passed around the service layer.
type Storages struct {
	// UserRepository is the user directory.
	UserRepository UserRepository

	// TaskRepository stores tasks scoped by owner.
	TaskRepository TaskRepository

	// Transactor runs multi-statement units of work atomically.
	Transactor Transactor

	// DB is the underlying connection. It is closed by the caller on
	// shutdown.
	DB *DB
}

// NewStorages initialises the storage layer. It performs the following
// steps:
//  1. Opens the database selected by cfg.DSN (see [NewConnect]).
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs the repositories wired to that connection.
//
// Returns an error if the database connection cannot be established or if
// migration fails. The connection is closed on migration failure.
func NewStorages(ctx context.Context, cfg config.DB, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnect(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewStoragesFromDB(db, logger), nil
}

// NewStoragesFromDB wires the repositories to an already opened and
// migrated database.
func NewStoragesFromDB(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		TaskRepository: NewTaskRepository(db, logger),
		Transactor:     db,
		DB:             db,
	}
}
