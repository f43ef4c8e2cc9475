// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/validators"
	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const credentialsBody = `{"email":"alice@example.com","password":"Str0ng!Pass"}`

// ─────────────────────────────────────────────
// signUp
// ─────────────────────────────────────────────

func TestSignUp_Success(t *testing.T) {
	var got models.Credentials
	auth := &mockAuthService{
		signUpFn: func(_ context.Context, c models.Credentials) (models.PublicUser, error) {
			got = c
			return testUser.Public(), nil
		},
	}

	h := newHandlerWithServices(auth, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(credentialsBody))
	rec := httptest.NewRecorder()

	h.signUp(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, models.Credentials{Email: "alice@example.com", Password: "Str0ng!Pass"}, got)

	var user map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, testUserID, user["id"])
	assert.Equal(t, "alice@example.com", user["email"])
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestSignUp_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantCode   models.ErrorCode
		wantDetail string
	}{
		{
			name:       "invalid JSON",
			body:       "{invalid json}",
			wantStatus: http.StatusBadRequest,
			wantCode:   models.ErrorCodeValidationError,
			wantDetail: "Invalid request body",
		},
		{
			name:       "empty body",
			body:       "",
			wantStatus: http.StatusBadRequest,
			wantCode:   models.ErrorCodeValidationError,
		},
		{
			name:       "invalid email",
			body:       credentialsBody,
			err:        &validators.ValidationError{Err: validators.ErrInvalidEmail, Message: "Email is required"},
			wantStatus: http.StatusBadRequest,
			wantCode:   models.ErrorCodeInvalidEmail,
			wantDetail: "Email is required",
		},
		{
			name:       "weak password",
			body:       credentialsBody,
			err:        &validators.ValidationError{Err: validators.ErrWeakPassword, Message: "Password must contain at least one digit"},
			wantStatus: http.StatusBadRequest,
			wantCode:   models.ErrorCodeWeakPassword,
			wantDetail: "Password must contain at least one digit",
		},
		{
			name:       "email already registered",
			body:       credentialsBody,
			err:        service.ErrEmailExists,
			wantStatus: http.StatusConflict,
			wantCode:   models.ErrorCodeEmailExists,
			wantDetail: "Email already registered",
		},
		{
			name:       "unexpected error",
			body:       credentialsBody,
			err:        fmt.Errorf("db: %w", errors.New("connection refused")),
			wantStatus: http.StatusInternalServerError,
			wantCode:   models.ErrorCodeInternalError,
			wantDetail: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			auth := &mockAuthService{
				signUpFn: func(_ context.Context, _ models.Credentials) (models.PublicUser, error) {
					called = true
					return models.PublicUser{}, tt.err
				},
			}

			h := newHandlerWithServices(auth, nil)
			req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.signUp(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.err != nil, called)

			resp := decodeErrorResponse(t, rec)
			assert.Equal(t, tt.wantCode, resp.ErrorCode)
			if tt.wantDetail != "" {
				assert.Equal(t, tt.wantDetail, resp.Detail)
			}
			assert.NotContains(t, rec.Body.String(), "connection refused")
		})
	}
}

// ─────────────────────────────────────────────
// signIn
// ─────────────────────────────────────────────

func TestSignIn_Success(t *testing.T) {
	token := models.AuthToken{
		AccessToken: "signed.jwt.token",
		TokenType:   models.TokenTypeBearer,
		ExpiresIn:   604800,
		User:        testUser.Public(),
	}
	auth := &mockAuthService{
		signInFn: func(_ context.Context, _ models.Credentials) (models.AuthToken, error) {
			return token, nil
		},
	}

	h := newHandlerWithServices(auth, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signin", strings.NewReader(credentialsBody))
	rec := httptest.NewRecorder()

	h.signIn(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.AuthToken
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "signed.jwt.token", got.AccessToken)
	assert.Equal(t, "bearer", got.TokenType)
	assert.Equal(t, int64(604800), got.ExpiresIn)
	assert.Equal(t, testUserID, got.User.UserID)

	assert.Equal(t, float64(1), testutil.ToFloat64(h.metrics.signIns.WithLabelValues("success")))
}

func TestSignIn_InvalidCredentials(t *testing.T) {
	auth := &mockAuthService{
		signInFn: func(_ context.Context, _ models.Credentials) (models.AuthToken, error) {
			return models.AuthToken{}, service.ErrInvalidCredentials
		},
	}

	h := newHandlerWithServices(auth, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signin", strings.NewReader(credentialsBody))
	rec := httptest.NewRecorder()

	h.signIn(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))

	resp := decodeErrorResponse(t, rec)
	assert.Equal(t, "Invalid email or password", resp.Detail)
	assert.Equal(t, models.ErrorCodeInvalidCredentials, resp.ErrorCode)

	assert.Equal(t, float64(1), testutil.ToFloat64(h.metrics.signIns.WithLabelValues("failure")))
}

func TestSignIn_InvalidJSON(t *testing.T) {
	h := newHandlerWithServices(&mockAuthService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/signin", strings.NewReader(`{"email":`))
	rec := httptest.NewRecorder()

	h.signIn(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSignIn_InternalError(t *testing.T) {
	auth := &mockAuthService{
		signInFn: func(_ context.Context, _ models.Credentials) (models.AuthToken, error) {
			return models.AuthToken{}, errors.New("token signing failed")
		},
	}

	h := newHandlerWithServices(auth, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signin", strings.NewReader(credentialsBody))
	rec := httptest.NewRecorder()

	h.signIn(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, rec.Header().Get("WWW-Authenticate"))
	assert.NotContains(t, rec.Body.String(), "signing")
}

// ─────────────────────────────────────────────
// me
// ─────────────────────────────────────────────

func TestMe_Success(t *testing.T) {
	var gotID string
	auth := &mockAuthService{
		currentUserFn: func(_ context.Context, userID string) (models.PublicUser, error) {
			gotID = userID
			return testUser.Public(), nil
		},
	}

	h := newHandlerWithServices(auth, nil)
	rec := httptest.NewRecorder()

	h.me(rec, authenticatedRequest(http.MethodGet, "/api/auth/me", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, testUserID, gotID)
	assert.Contains(t, rec.Body.String(), `"email":"alice@example.com"`)
}

func TestMe_NoPrincipal(t *testing.T) {
	h := newHandlerWithServices(&mockAuthService{}, nil)
	rec := httptest.NewRecorder()

	h.me(rec, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMe_UserGone(t *testing.T) {
	auth := &mockAuthService{
		currentUserFn: func(_ context.Context, _ string) (models.PublicUser, error) {
			return models.PublicUser{}, service.ErrUnauthorized
		},
	}

	h := newHandlerWithServices(auth, nil)
	rec := httptest.NewRecorder()

	h.me(rec, authenticatedRequest(http.MethodGet, "/api/auth/me", ""))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, models.ErrorCodeInvalidToken, decodeErrorResponse(t, rec).ErrorCode)
}
