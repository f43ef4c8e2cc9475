// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"

	"github.com/MKhiriev/go-todo-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	usersTable = "users"
	tasksTable = "tasks"
)

var (
	userColumns = []string{"id", "email", "password_hash", "created_at", "last_signin_at"}
	taskColumns = []string{"id", "user_id", "title", "description", "completed", "created_at", "updated_at"}
)

// queryBuilder builds the SQL of the repositories for one placeholder
// format.
type queryBuilder struct {
	sq sq.StatementBuilderType
}

func (b queryBuilder) selectUserBy(column string, value any) (string, []any, error) {
	return b.sq.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{column: value}).
		ToSql()
}

func (b queryBuilder) insertUser(user models.User) (string, []any, error) {
	return b.sq.Insert(usersTable).
		Columns(userColumns...).
		Values(user.UserID, user.Email, user.PasswordHash, user.CreatedAt, user.LastSigninAt).
		ToSql()
}

func (b queryBuilder) updateUser(user models.User) (string, []any, error) {
	return b.sq.Update(usersTable).
		Set("email", user.Email).
		Set("password_hash", user.PasswordHash).
		Set("last_signin_at", user.LastSigninAt).
		Where(sq.Eq{"id": user.UserID}).
		ToSql()
}

func (b queryBuilder) selectTask(taskID, ownerID string) (string, []any, error) {
	return b.sq.Select(taskColumns...).
		From(tasksTable).
		Where(sq.Eq{"id": taskID}).
		Where(sq.Eq{"user_id": ownerID}).
		ToSql()
}

func (b queryBuilder) selectTasksByOwner(ownerID string) (string, []any, error) {
	return b.sq.Select(taskColumns...).
		From(tasksTable).
		Where(sq.Eq{"user_id": ownerID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
}

func (b queryBuilder) insertTask(task models.Task) (string, []any, error) {
	return b.sq.Insert(tasksTable).
		Columns(taskColumns...).
		Values(task.TaskID, task.UserID, task.Title, task.Description, task.Completed, task.CreatedAt, task.UpdatedAt).
		ToSql()
}

func (b queryBuilder) updateTask(task models.Task) (string, []any, error) {
	return b.sq.Update(tasksTable).
		Set("title", task.Title).
		Set("description", task.Description).
		Set("completed", task.Completed).
		Set("updated_at", task.UpdatedAt).
		Where(sq.Eq{"id": task.TaskID}).
		Where(sq.Eq{"user_id": task.UserID}).
		ToSql()
}

func (b queryBuilder) deleteTask(taskID, ownerID string) (string, []any, error) {
	return b.sq.Delete(tasksTable).
		Where(sq.Eq{"id": taskID}).
		Where(sq.Eq{"user_id": ownerID}).
		ToSql()
}

// queries returns the query builder for the dialect of db.
func (db *DB) queries() queryBuilder {
	return queryBuilder{sq: db.builder}
}

// rowScanner is implemented by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		user         models.User
		lastSigninAt sql.NullTime
	)

	if err := row.Scan(&user.UserID, &user.Email, &user.PasswordHash, &user.CreatedAt, &lastSigninAt); err != nil {
		return models.User{}, err
	}
	if lastSigninAt.Valid {
		user.LastSigninAt = &lastSigninAt.Time
	}

	return user, nil
}

func scanTask(row rowScanner) (models.Task, error) {
	var (
		task        models.Task
		description sql.NullString
	)

	if err := row.Scan(&task.TaskID, &task.UserID, &task.Title, &description, &task.Completed, &task.CreatedAt, &task.UpdatedAt); err != nil {
		return models.Task{}, err
	}
	if description.Valid {
		task.Description = &description.String
	}

	return task, nil
}
