// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc implements the gRPC transport of the server. It exposes the
// standard gRPC health checking service, reporting the application name and
// version, for load balancers and orchestrators that probe over gRPC.
package grpc

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
)

// ServiceName is the name the application reports its health under.
const ServiceName = "go-todo-keeper"

const traceIDMetadataKey = "x-trace-id"

// Handler is the root gRPC transport handler.
//
// It stores references to the service layer and structured logger so that
// gRPC method handlers can delegate business logic and emit consistent logs.
// A handler instance is created once at startup and shared by the gRPC server.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	health *health.Server

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger. Both the overall server and [ServiceName] start as SERVING.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	healthServer := health.NewServer()
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		health:   healthServer,
		logger:   logger,
	}
}

// Register registers the handler services on server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
}

// ServerOptions returns the interceptors every gRPC call passes through.
func (h *Handler) ServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(h.withTraceID, h.withLogging),
	}
}

// Shutdown switches every reported status to NOT_SERVING so that probes
// stop routing traffic before the server stops.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

// Version returns the running application version.
func (h *Handler) Version(ctx context.Context) string {
	if h.services == nil || h.services.AppInfoService == nil {
		return ""
	}
	return h.services.AppInfoService.GetAppVersion(ctx)
}

// withTraceID stores a child logger carrying the x-trace-id metadata value,
// or a generated id, in the call context.
func (h *Handler) withTraceID(ctx context.Context, req any, _ *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	traceID := ""
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(traceIDMetadataKey); len(values) > 0 {
			traceID = values[0]
		}
	}
	if traceID == "" {
		traceID = uuid.NewString()
	}

	return next(h.logger.WithTraceID(traceID).WithContext(ctx), req)
}

func (h *Handler) withLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	resp, err := next(ctx, req)

	event := logger.FromContext(ctx).Info()
	if err != nil {
		event = logger.FromContext(ctx).Warn().Err(err)
	}
	event.Str("method", info.FullMethod).Send()

	return resp, err
}
