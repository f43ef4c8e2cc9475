// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/mock"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/internal/validators"
	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	ownerA = "0190f5c2-0000-7000-8000-00000000000a"
	ownerB = "0190f5c2-0000-7000-8000-00000000000b"
	taskID = "0190f5c2-0000-7000-8000-0000000000f1"
)

func newTestTaskSvc(t *testing.T) (*taskService, *mock.MockTaskRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)

	tasks := mock.NewMockTaskRepository(ctrl)
	tx := mock.NewMockTransactor(ctrl)
	passThrough(tx)

	svc := NewTaskService(&store.Storages{TaskRepository: tasks, Transactor: tx}, logger.Nop()).(*taskService)
	svc.ids = &fixedIDs{ids: []string{taskID}}
	svc.now = func() time.Time { return testNow }

	return svc, tasks
}

func ownedTask() models.Task {
	created := testNow.Add(-time.Hour)
	return models.Task{TaskID: taskID, UserID: ownerA, Title: "buy milk", CreatedAt: created, UpdatedAt: created}
}

func TestTaskService_Create(t *testing.T) {
	svc, tasks := newTestTaskSvc(t)

	want := models.Task{TaskID: taskID, UserID: ownerA, Title: "buy milk", CreatedAt: testNow, UpdatedAt: testNow}
	tasks.EXPECT().Insert(gomock.Any(), want).Return(nil)

	desc := "   "
	got, err := svc.Create(context.Background(), ownerA, models.TaskRequest{Title: "  buy milk ", Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.False(t, got.Completed)
	assert.Nil(t, got.Description)
}

func TestTaskService_Create_Validation(t *testing.T) {
	tests := []struct {
		name    string
		request models.TaskRequest
		wantErr error
	}{
		{name: "empty title", request: models.TaskRequest{Title: "   "}, wantErr: validators.ErrEmptyTitle},
		{name: "long title", request: models.TaskRequest{Title: strings.Repeat("a", 501)}, wantErr: validators.ErrTitleTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestTaskSvc(t)

			_, err := svc.Create(context.Background(), ownerA, tt.request)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTaskService_Create_StorageError(t *testing.T) {
	svc, tasks := newTestTaskSvc(t)

	tasks.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(store.ErrExecutingStatement)

	_, err := svc.Create(context.Background(), ownerA, models.TaskRequest{Title: "x"})
	assert.ErrorIs(t, err, store.ErrExecutingStatement)
}

func TestTaskService_List(t *testing.T) {
	svc, tasks := newTestTaskSvc(t)

	tasks.EXPECT().FindAllByOwner(gomock.Any(), ownerA).Return([]models.Task{ownedTask()}, nil)
	tasks.EXPECT().FindAllByOwner(gomock.Any(), ownerB).Return(nil, errors.New("boom"))

	got, err := svc.List(context.Background(), ownerA)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = svc.List(context.Background(), ownerB)
	assert.Error(t, err)
}

func TestTaskService_Get(t *testing.T) {
	svc, tasks := newTestTaskSvc(t)

	tasks.EXPECT().FindByIDAndOwner(gomock.Any(), taskID, ownerA).Return(ownedTask(), nil)

	got, err := svc.Get(context.Background(), ownerA, taskID)
	require.NoError(t, err)
	assert.Equal(t, ownedTask(), got)
}

func TestTaskService_Update(t *testing.T) {
	svc, tasks := newTestTaskSvc(t)

	desc := " fresh "
	want := ownedTask()
	want.Title = "buy oat milk"
	want.Description = &[]string{"fresh"}[0]
	want.UpdatedAt = testNow

	tasks.EXPECT().FindByIDAndOwner(gomock.Any(), taskID, ownerA).Return(ownedTask(), nil)
	tasks.EXPECT().Update(gomock.Any(), want).Return(nil)

	got, err := svc.Update(context.Background(), ownerA, taskID, models.TaskRequest{Title: "buy oat milk", Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, ownedTask().CreatedAt, got.CreatedAt)
}

func TestTaskService_Update_NotFoundBeforeValidation(t *testing.T) {
	svc, tasks := newTestTaskSvc(t)

	tasks.EXPECT().FindByIDAndOwner(gomock.Any(), taskID, ownerA).Return(models.Task{}, store.ErrTaskNotFound)

	_, err := svc.Update(context.Background(), ownerA, taskID, models.TaskRequest{Title: ""})
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestTaskService_Update_EmptyTitle(t *testing.T) {
	svc, tasks := newTestTaskSvc(t)

	tasks.EXPECT().FindByIDAndOwner(gomock.Any(), taskID, ownerA).Return(ownedTask(), nil)
	tasks.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.Update(context.Background(), ownerA, taskID, models.TaskRequest{Title: "  "})
	assert.ErrorIs(t, err, validators.ErrEmptyTitle)
}

func TestTaskService_ToggleCompletion_Twice(t *testing.T) {
	svc, tasks := newTestTaskSvc(t)

	current := ownedTask()
	tasks.EXPECT().FindByIDAndOwner(gomock.Any(), taskID, ownerA).
		DoAndReturn(func(context.Context, string, string) (models.Task, error) { return current, nil }).
		Times(2)
	tasks.EXPECT().Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, task models.Task) error {
			current = task
			return nil
		}).
		Times(2)

	got, err := svc.ToggleCompletion(context.Background(), ownerA, taskID)
	require.NoError(t, err)
	assert.True(t, got.Completed)
	assert.Equal(t, testNow, got.UpdatedAt)

	got, err = svc.ToggleCompletion(context.Background(), ownerA, taskID)
	require.NoError(t, err)
	assert.False(t, got.Completed)
}

func TestTaskService_Delete(t *testing.T) {
	svc, tasks := newTestTaskSvc(t)

	gomock.InOrder(
		tasks.EXPECT().FindByIDAndOwner(gomock.Any(), taskID, ownerA).Return(ownedTask(), nil),
		tasks.EXPECT().Delete(gomock.Any(), taskID, ownerA).Return(nil),
	)

	require.NoError(t, svc.Delete(context.Background(), ownerA, taskID))
}

func TestTaskService_OwnershipIsolation(t *testing.T) {
	svc, tasks := newTestTaskSvc(t)

	// the repository filters by owner, so user B never sees A's task
	tasks.EXPECT().FindByIDAndOwner(gomock.Any(), taskID, ownerB).Return(models.Task{}, store.ErrTaskNotFound).AnyTimes()
	tasks.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)
	tasks.EXPECT().Delete(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	ctx := context.Background()

	_, err := svc.Get(ctx, ownerB, taskID)
	assert.ErrorIs(t, err, ErrTaskNotFound)

	_, err = svc.Update(ctx, ownerB, taskID, models.TaskRequest{Title: "mine"})
	assert.ErrorIs(t, err, ErrTaskNotFound)

	_, err = svc.ToggleCompletion(ctx, ownerB, taskID)
	assert.ErrorIs(t, err, ErrTaskNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, ownerB, taskID), ErrTaskNotFound)
}

func TestTaskService_StorageErrorIsNotNotFound(t *testing.T) {
	svc, tasks := newTestTaskSvc(t)

	tasks.EXPECT().FindByIDAndOwner(gomock.Any(), taskID, ownerA).Return(models.Task{}, store.ErrExecutingQuery)

	_, err := svc.Get(context.Background(), ownerA, taskID)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrTaskNotFound)
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}
