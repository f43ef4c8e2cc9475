// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConnect_UnsupportedDSN(t *testing.T) {
	for _, dsn := range []string{"", "mysql://root@localhost/todo"} {
		_, err := NewConnect(context.Background(), config.DB{DSN: dsn}, logger.Nop())
		assert.ErrorIs(t, err, ErrUnsupportedDSN, dsn)
	}
}

func TestSQLiteDSN(t *testing.T) {
	tests := []struct {
		dsn  string
		want string
	}{
		{dsn: "sqlite://todo.db", want: "todo.db?_foreign_keys=on&_busy_timeout=5000"},
		{dsn: "todo.db?cache=shared", want: "todo.db?cache=shared&_foreign_keys=on&_busy_timeout=5000"},
		{dsn: "file:todo.db?_foreign_keys=off&_busy_timeout=100", want: "file:todo.db?_foreign_keys=off&_busy_timeout=100"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, sqliteDSN(tt.dsn))
	}

	assert.True(t, isSQLiteInMemory(":memory:"))
	assert.True(t, isSQLiteInMemory("file:test?mode=memory"))
	assert.False(t, isSQLiteInMemory("todo.db"))
}

func TestWithinTransaction_Commit(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTaskRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec(deleteTaskSQL).WithArgs("t-1", "u-1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := db.WithinTransaction(context.Background(), func(ctx context.Context) error {
		return repo.Delete(ctx, "t-1", "u-1")
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTransaction_RollbackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTaskRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec(deleteTaskSQL).WithArgs("t-1", "u-1").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := db.WithinTransaction(context.Background(), func(ctx context.Context) error {
		return repo.Delete(ctx, "t-1", "u-1")
	})
	assert.ErrorIs(t, err, ErrTaskNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTransaction_RetriesSerializationFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec(insertUserSQL).WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectExec(insertUserSQL).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	attempts := 0
	err := db.WithinTransaction(context.Background(), func(ctx context.Context) error {
		attempts++
		return repo.Insert(ctx, models.User{UserID: "u-1", Email: "a@b.com"})
	})
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTransaction_GivesUpAfterMaxRetries(t *testing.T) {
	db, mock := newMockDB(t)

	for range maxTransactionRetries + 1 {
		mock.ExpectBegin()
		mock.ExpectRollback()
	}

	attempts := 0
	err := db.WithinTransaction(context.Background(), func(ctx context.Context) error {
		attempts++
		return pgError(pgerrcode.DeadlockDetected)
	})
	require.Error(t, err)
	assert.Equal(t, maxTransactionRetries+1, attempts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTransaction_NoRetryOnDomainError(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	attempts := 0
	err := db.WithinTransaction(context.Background(), func(ctx context.Context) error {
		attempts++
		return ErrEmailAlreadyExists
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	assert.Equal(t, 1, attempts)
}

func TestWithinTransaction_NestedJoinsOuter(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := db.WithinTransaction(context.Background(), func(ctx context.Context) error {
		return db.WithinTransaction(ctx, func(context.Context) error { return nil })
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTransaction_BeginError(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin().WillReturnError(errors.New("no connection"))

	err := db.WithinTransaction(context.Background(), func(context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestErrorClassifiers(t *testing.T) {
	pg := NewPostgresErrorClassifier()
	assert.Equal(t, Retryable, pg.Classify(pgError(pgerrcode.SerializationFailure)))
	assert.Equal(t, Retryable, pg.Classify(pgError(pgerrcode.ConnectionFailure)))
	assert.Equal(t, Retryable, pg.Classify(pgError(pgerrcode.DeadlockDetected)))
	assert.Equal(t, Retryable, pg.Classify(pgError(pgerrcode.CannotConnectNow)))
	assert.Equal(t, NonRetryable, pg.Classify(pgError(pgerrcode.UndefinedTable)))
	assert.Equal(t, NonRetryable, pg.Classify(pgError(pgerrcode.UniqueViolation)))
	assert.Equal(t, NonRetryable, pg.Classify(errors.New("plain")))
	assert.Equal(t, NonRetryable, pg.Classify(nil))
	assert.True(t, pg.IsUniqueViolation(pgError(pgerrcode.UniqueViolation)))
	assert.False(t, pg.IsUniqueViolation(pgError(pgerrcode.ForeignKeyViolation)))

	lite := NewSQLiteErrorClassifier()
	assert.Equal(t, Retryable, lite.Classify(sqliteError(sqlite3.ErrBusy, 0)))
	assert.Equal(t, Retryable, lite.Classify(sqliteError(sqlite3.ErrLocked, 0)))
	assert.Equal(t, NonRetryable, lite.Classify(sqliteError(sqlite3.ErrConstraint, sqlite3.ErrConstraintUnique)))
	assert.True(t, lite.IsUniqueViolation(sqliteError(sqlite3.ErrConstraint, sqlite3.ErrConstraintUnique)))
	assert.True(t, lite.IsUniqueViolation(sqliteError(sqlite3.ErrConstraint, sqlite3.ErrConstraintPrimaryKey)))
	assert.False(t, lite.IsUniqueViolation(sqliteError(sqlite3.ErrConstraint, sqlite3.ErrConstraintForeignKey)))
	assert.False(t, lite.IsUniqueViolation(errors.New("plain")))
}
