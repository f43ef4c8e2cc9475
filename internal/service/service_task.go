// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/internal/validators"
	"github.com/MKhiriev/go-todo-keeper/models"
)

type taskService struct {
	taskRepository store.TaskRepository
	transactor     store.Transactor

	ids IDGenerator
	now func() time.Time

	logger *logger.Logger
}

// NewTaskService constructs a TaskService over the task repository of
// storages.
func NewTaskService(storages *store.Storages, logger *logger.Logger) TaskService {
	return &taskService{
		taskRepository: storages.TaskRepository,
		transactor:     storages.Transactor,
		ids:            utils.NewUUIDGenerator(),
		now:            time.Now,
		logger:         logger,
	}
}

// List returns the tasks of ownerID, oldest first. The slice is empty, not
// nil, when the owner has no tasks.
func (s *taskService) List(ctx context.Context, ownerID string) ([]models.Task, error) {
	tasks, err := s.taskRepository.FindAllByOwner(ctx, ownerID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*taskService.List").Msg("listing tasks failed")
		return nil, fmt.Errorf("listing tasks failed: %w", err)
	}

	return tasks, nil
}

// Create validates the request and stores a new, not completed task owned
// by ownerID.
func (s *taskService) Create(ctx context.Context, ownerID string, request models.TaskRequest) (models.Task, error) {
	log := logger.FromContext(ctx)

	input, err := validators.ValidateTask(request.Title, request.DescriptionValue())
	if err != nil {
		return models.Task{}, err
	}

	now := s.timestamp()
	task := models.Task{
		TaskID:      s.ids.Generate(),
		UserID:      ownerID,
		Title:       input.Title,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err = s.taskRepository.Insert(ctx, task); err != nil {
		log.Err(err).Str("func", "*taskService.Create").Msg("task creation failed")
		return models.Task{}, fmt.Errorf("task creation failed: %w", err)
	}

	log.Debug().Str("func", "*taskService.Create").Str("task_id", task.TaskID).Msg("task created")
	return task, nil
}

// Get returns the task only if it belongs to ownerID.
func (s *taskService) Get(ctx context.Context, ownerID, taskID string) (models.Task, error) {
	return s.find(ctx, ownerID, taskID)
}

// Update replaces title and description of an owned task. A missing task is
// reported before an invalid title.
func (s *taskService) Update(ctx context.Context, ownerID, taskID string, request models.TaskRequest) (models.Task, error) {
	var task models.Task
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		if task, err = s.find(ctx, ownerID, taskID); err != nil {
			return err
		}

		input, err := validators.ValidateTask(request.Title, request.DescriptionValue())
		if err != nil {
			return err
		}

		task.Title = input.Title
		task.Description = input.Description
		task.UpdatedAt = s.timestamp()

		return s.save(ctx, task)
	})
	if err != nil {
		return models.Task{}, err
	}

	return task, nil
}

// Delete removes an owned task permanently.
func (s *taskService) Delete(ctx context.Context, ownerID, taskID string) error {
	return s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.find(ctx, ownerID, taskID); err != nil {
			return err
		}

		err := s.taskRepository.Delete(ctx, taskID, ownerID)
		if errors.Is(err, store.ErrTaskNotFound) {
			return ErrTaskNotFound
		}
		if err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "*taskService.Delete").Msg("task deletion failed")
			return fmt.Errorf("task deletion failed: %w", err)
		}

		return nil
	})
}

// ToggleCompletion flips the completed flag of an owned task.
func (s *taskService) ToggleCompletion(ctx context.Context, ownerID, taskID string) (models.Task, error) {
	var task models.Task
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		if task, err = s.find(ctx, ownerID, taskID); err != nil {
			return err
		}

		task.Completed = !task.Completed
		task.UpdatedAt = s.timestamp()

		return s.save(ctx, task)
	})
	if err != nil {
		return models.Task{}, err
	}

	return task, nil
}

func (s *taskService) find(ctx context.Context, ownerID, taskID string) (models.Task, error) {
	task, err := s.taskRepository.FindByIDAndOwner(ctx, taskID, ownerID)
	if errors.Is(err, store.ErrTaskNotFound) {
		return models.Task{}, ErrTaskNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*taskService.find").Msg("task search failed")
		return models.Task{}, fmt.Errorf("task search failed: %w", err)
	}

	return task, nil
}

func (s *taskService) save(ctx context.Context, task models.Task) error {
	err := s.taskRepository.Update(ctx, task)
	if errors.Is(err, store.ErrTaskNotFound) {
		return ErrTaskNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*taskService.save").Msg("task update failed")
		return fmt.Errorf("task update failed: %w", err)
	}

	return nil
}

func (s *taskService) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}
