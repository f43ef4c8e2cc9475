// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

// Handler owns the HTTP routes of the server and the services they call.
type Handler struct {
	services *service.Services

	// frontendURL is the only origin allowed by CORS.
	frontendURL string

	// requestTimeout bounds the handling of a single request. Zero disables
	// the limit.
	requestTimeout time.Duration

	registry *prometheus.Registry
	metrics  *httpMetrics

	logger *logger.Logger
}

// NewHandler creates a Handler serving services. The handler registers its
// metrics in a private Prometheus registry exposed on /metrics.
func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	registry := prometheus.NewRegistry()

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		frontendURL:    cfg.App.FrontendURL,
		requestTimeout: cfg.Server.RequestTimeout,
		registry:       registry,
		metrics:        newHTTPMetrics(registry),
		logger:         logger,
	}
}
