// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/crypto"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
)

// Services groups the business services consumed by the transport layer.
type Services struct {
	AuthService    AuthService
	TaskService    TaskService
	AppInfoService AppInfoService
}

// NewServices builds the password hasher and token codec from cfg and wires
// every service to storages.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	tokens, err := crypto.NewTokenCodec(cfg.App.TokenSecret, cfg.App.TokenAlgorithm, crypto.WithIssuer(cfg.App.TokenIssuer))
	if err != nil {
		return nil, fmt.Errorf("error creating token codec: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	authService, err := NewAuthService(storages, crypto.NewPasswordHasher(cfg.App.BcryptCost), tokens, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating auth service: %w", err)
	}

	return &Services{
		AuthService:    authService,
		TaskService:    NewTaskService(storages, logger),
		AppInfoService: appInfoService,
	}, nil
}
