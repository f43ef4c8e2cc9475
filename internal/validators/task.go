// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	maxTitleLength       = 500
	maxDescriptionLength = 2000
)

// TaskInput is a validated and normalised set of task fields.
type TaskInput struct {
	// Title is trimmed and never empty.
	Title string

	// Description is trimmed; nil when the input was empty or blank.
	Description *string
}

// ValidateTask trims and checks the user-editable task fields.
//
// Title is required and limited to 500 characters after trimming.
// A blank description becomes nil; otherwise it is limited to 2000
// characters after trimming.
func ValidateTask(title, description string) (TaskInput, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return TaskInput{}, newValidationError(ErrEmptyTitle, "Title cannot be empty")
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return TaskInput{}, newValidationError(ErrTitleTooLong,
			fmt.Sprintf("Title must not exceed %d characters", maxTitleLength))
	}

	input := TaskInput{Title: title}

	description = strings.TrimSpace(description)
	if description == "" {
		return input, nil
	}
	if utf8.RuneCountInString(description) > maxDescriptionLength {
		return TaskInput{}, newValidationError(ErrDescriptionTooLong,
			fmt.Sprintf("Description must not exceed %d characters", maxDescriptionLength))
	}
	input.Description = &description

	return input, nil
}
