// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Task is a todo item owned by exactly one user.
//
// Ownership (UserID) is assigned at creation and never changes. Every read
// and write of a task is scoped by its owner.
type Task struct {
	// TaskID is the unique identifier of the task (UUIDv7 string).
	TaskID string `json:"id"`

	// Title is the trimmed, non-empty task title (1-500 characters).
	Title string `json:"title"`

	// Description is the optional trimmed description (up to 2000
	// characters). Nil when absent or blank.
	Description *string `json:"description"`

	// Completed reports whether the task is done. Defaults to false.
	Completed bool `json:"completed"`

	// UserID is the identifier of the owning user.
	UserID string `json:"user_id"`

	// CreatedAt is the creation timestamp.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is refreshed on every mutation.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Task model.
func (t Task) TableName() string {
	return "tasks"
}

// TaskRequest is the request body for task creation and update.
// Completion is changed only through the toggle endpoint.
type TaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
}

// DescriptionValue returns the description or an empty string when it is nil.
func (r TaskRequest) DescriptionValue() string {
	if r.Description == nil {
		return ""
	}
	return *r.Description
}
