// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-todo-keeper/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	postgresQueries = queryBuilder{sq: sq.StatementBuilder.PlaceholderFormat(sq.Dollar)}
	sqliteQueries   = queryBuilder{sq: sq.StatementBuilder.PlaceholderFormat(sq.Question)}
)

func TestQueryBuilder_SelectUserBy(t *testing.T) {
	query, args, err := postgresQueries.selectUserBy("email", "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, email, password_hash, created_at, last_signin_at FROM users WHERE email = $1", query)
	assert.Equal(t, []any{"a@b.com"}, args)

	query, _, err = sqliteQueries.selectUserBy("id", "u-1")
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, email, password_hash, created_at, last_signin_at FROM users WHERE id = ?", query)
}

func TestQueryBuilder_InsertUser(t *testing.T) {
	now := time.Now()
	user := models.User{UserID: "u-1", Email: "a@b.com", PasswordHash: "hash", CreatedAt: now}

	query, args, err := postgresQueries.insertUser(user)
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO users (id,email,password_hash,created_at,last_signin_at) VALUES ($1,$2,$3,$4,$5)", query)
	require.Len(t, args, 5)
	assert.Equal(t, "u-1", args[0])
	assert.Equal(t, now, args[3])
}

func TestQueryBuilder_UpdateUser(t *testing.T) {
	signin := time.Now()
	query, args, err := postgresQueries.updateUser(models.User{UserID: "u-1", Email: "a@b.com", PasswordHash: "hash", LastSigninAt: &signin})
	require.NoError(t, err)
	assert.Equal(t, "UPDATE users SET email = $1, password_hash = $2, last_signin_at = $3 WHERE id = $4", query)
	assert.Equal(t, "u-1", args[3])
}

func TestQueryBuilder_TaskQueriesAreOwnerScoped(t *testing.T) {
	task := models.Task{TaskID: "t-1", UserID: "u-1", Title: "title"}

	tests := []struct {
		name  string
		build func() (string, []any, error)
		want  string
	}{
		{
			name:  "select one",
			build: func() (string, []any, error) { return postgresQueries.selectTask("t-1", "u-1") },
			want:  "SELECT id, user_id, title, description, completed, created_at, updated_at FROM tasks WHERE id = $1 AND user_id = $2",
		},
		{
			name:  "select all ordered",
			build: func() (string, []any, error) { return postgresQueries.selectTasksByOwner("u-1") },
			want:  "SELECT id, user_id, title, description, completed, created_at, updated_at FROM tasks WHERE user_id = $1 ORDER BY created_at ASC, id ASC",
		},
		{
			name:  "update",
			build: func() (string, []any, error) { return postgresQueries.updateTask(task) },
			want:  "UPDATE tasks SET title = $1, description = $2, completed = $3, updated_at = $4 WHERE id = $5 AND user_id = $6",
		},
		{
			name:  "delete",
			build: func() (string, []any, error) { return postgresQueries.deleteTask("t-1", "u-1") },
			want:  "DELETE FROM tasks WHERE id = $1 AND user_id = $2",
		},
		{
			name:  "delete sqlite",
			build: func() (string, []any, error) { return sqliteQueries.deleteTask("t-1", "u-1") },
			want:  "DELETE FROM tasks WHERE id = ? AND user_id = ?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := tt.build()
			require.NoError(t, err)
			assert.Equal(t, tt.want, query)
			assert.Contains(t, args, "u-1")
		})
	}
}

func TestQueryBuilder_InsertTask(t *testing.T) {
	query, args, err := sqliteQueries.insertTask(models.Task{TaskID: "t-1", UserID: "u-1", Title: "title"})
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO tasks (id,user_id,title,description,completed,created_at,updated_at) VALUES (?,?,?,?,?,?,?)", query)
	assert.Len(t, args, 7)
}
