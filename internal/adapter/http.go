// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/go-resty/resty/v2"
)

const taskPath = "/api/tasks/{task_id}"

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP/REST implementation of
// [ServerAdapter] for the server at cfg.ServerURL. A bare host:port is
// treated as an http:// URL.
func NewHTTPServerAdapter(cfg config.ClientConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// SignUp implements [ServerAdapter]. It POSTs the credentials to
// /api/auth/signup.
func (h *httpServerAdapter) SignUp(ctx context.Context, credentials models.Credentials) (models.PublicUser, error) {
	var user models.PublicUser

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(credentials).
		SetResult(&user).
		Post("/api/auth/signup")
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("sign up request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PublicUser{}, err
	}

	return user, nil
}

// SignIn implements [ServerAdapter]. It POSTs the credentials to
// /api/auth/signin and keeps the returned access token.
func (h *httpServerAdapter) SignIn(ctx context.Context, credentials models.Credentials) (models.AuthToken, error) {
	var token models.AuthToken

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(credentials).
		SetResult(&token).
		Post("/api/auth/signin")
	if err != nil {
		return models.AuthToken{}, fmt.Errorf("sign in request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthToken{}, err
	}

	h.SetToken(token.AccessToken)
	h.logger.Debug().Str("user_id", token.User.UserID).Msg("signed in")

	return token, nil
}

// Me implements [ServerAdapter].
func (h *httpServerAdapter) Me(ctx context.Context) (models.PublicUser, error) {
	var user models.PublicUser

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.PublicUser{}, err
	}

	resp, err := req.SetResult(&user).Get("/api/auth/me")
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PublicUser{}, err
	}

	return user, nil
}

// ListTasks implements [ServerAdapter].
func (h *httpServerAdapter) ListTasks(ctx context.Context) ([]models.Task, error) {
	tasks := make([]models.Task, 0)

	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.SetResult(&tasks).Get("/api/tasks/")
	if err != nil {
		return nil, fmt.Errorf("list tasks request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return tasks, nil
}

// CreateTask implements [ServerAdapter].
func (h *httpServerAdapter) CreateTask(ctx context.Context, request models.TaskRequest) (models.Task, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Task{}, err
	}

	return h.doTask(req.SetBody(request), resty.MethodPost, "/api/tasks/", "create task")
}

// GetTask implements [ServerAdapter].
func (h *httpServerAdapter) GetTask(ctx context.Context, taskID string) (models.Task, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Task{}, err
	}

	return h.doTask(req.SetPathParam("task_id", taskID), resty.MethodGet, taskPath, "get task")
}

// UpdateTask implements [ServerAdapter].
func (h *httpServerAdapter) UpdateTask(ctx context.Context, taskID string, request models.TaskRequest) (models.Task, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Task{}, err
	}

	return h.doTask(req.SetPathParam("task_id", taskID).SetBody(request), resty.MethodPut, taskPath, "update task")
}

// DeleteTask implements [ServerAdapter].
func (h *httpServerAdapter) DeleteTask(ctx context.Context, taskID string) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.SetPathParam("task_id", taskID).Delete(taskPath)
	if err != nil {
		return fmt.Errorf("delete task request: %w", err)
	}

	return mapHTTPError(resp)
}

// ToggleTask implements [ServerAdapter].
func (h *httpServerAdapter) ToggleTask(ctx context.Context, taskID string) (models.Task, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Task{}, err
	}

	return h.doTask(req.SetPathParam("task_id", taskID), resty.MethodPatch, taskPath+"/complete", "toggle task")
}

// ServerVersion implements [ServerAdapter].
func (h *httpServerAdapter) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) doTask(req *resty.Request, method, path, operation string) (models.Task, error) {
	var task models.Task

	resp, err := req.SetResult(&task).Execute(method, path)
	if err != nil {
		return models.Task{}, fmt.Errorf("%s request: %w", operation, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Task{}, err
	}

	return task, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNotSignedIn
	}

	return h.client.R().
		SetContext(ctx).
		SetAuthToken(token), nil
}
