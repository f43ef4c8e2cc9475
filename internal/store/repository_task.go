// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// taskRepository is the SQL implementation of [TaskRepository] backed by
// the "tasks" table. Every statement filters by user_id, so a task of
// another user behaves exactly like a missing one.
type taskRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTaskRepository constructs a [TaskRepository] backed by the provided
// database connection and logger.
func NewTaskRepository(db *DB, logger *logger.Logger) TaskRepository {
	logger.Debug().Msg("creating task repository")
	return &taskRepository{
		db:     db,
		logger: logger,
	}
}

// FindByIDAndOwner implements [TaskRepository].
func (r *taskRepository) FindByIDAndOwner(ctx context.Context, taskID, ownerID string) (models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries().selectTask(taskID, ownerID)
	if err != nil {
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	task, err := scanTask(r.db.conn(ctx).QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, ErrTaskNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.FindByIDAndOwner").Msg("error selecting task")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return task, nil
}

// FindAllByOwner implements [TaskRepository].
func (r *taskRepository) FindAllByOwner(ctx context.Context, ownerID string) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries().selectTasksByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.FindAllByOwner").Msg("error selecting tasks")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tasks := make([]models.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			log.Err(err).Str("func", "*taskRepository.FindAllByOwner").Msg("error scanning task")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		tasks = append(tasks, task)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*taskRepository.FindAllByOwner").Msg("error iterating tasks")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tasks, nil
}

// Insert implements [TaskRepository].
func (r *taskRepository) Insert(ctx context.Context, task models.Task) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries().insertTask(task)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.conn(ctx).ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*taskRepository.Insert").Msg("error inserting task")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Update implements [TaskRepository]. A missing or foreign task yields
// [ErrTaskNotFound].
func (r *taskRepository) Update(ctx context.Context, task models.Task) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries().updateTask(task)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.conn(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.Update").Msg("error updating task")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireAffected(result, ErrTaskNotFound)
}

// Delete implements [TaskRepository]. A missing or foreign task yields
// [ErrTaskNotFound].
func (r *taskRepository) Delete(ctx context.Context, taskID, ownerID string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries().deleteTask(taskID, ownerID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.conn(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.Delete").Msg("error deleting task")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireAffected(result, ErrTaskNotFound)
}
