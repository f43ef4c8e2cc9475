// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorCode is a machine-readable error identifier returned with every
// error response.
type ErrorCode string

// Error codes used in [ErrorResponse].
const (
	ErrorCodeInvalidEmail       ErrorCode = "INVALID_EMAIL"
	ErrorCodeWeakPassword       ErrorCode = "WEAK_PASSWORD"
	ErrorCodeValidationError    ErrorCode = "VALIDATION_ERROR"
	ErrorCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrorCodeMissingToken       ErrorCode = "MISSING_TOKEN"
	ErrorCodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	ErrorCodeExpiredToken       ErrorCode = "EXPIRED_TOKEN"
	ErrorCodeEmailExists        ErrorCode = "EMAIL_EXISTS"
	ErrorCodeTaskNotFound       ErrorCode = "TASK_NOT_FOUND"
	ErrorCodeInternalError      ErrorCode = "INTERNAL_ERROR"
)

// ErrorResponse is the JSON body written for every 4xx/5xx response.
type ErrorResponse struct {
	// Detail is the human-readable description of the error.
	Detail string `json:"detail"`

	// ErrorCode is the machine-readable error identifier.
	ErrorCode ErrorCode `json:"error_code,omitempty"`
}

// HealthResponse is the body of the health-check endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}
