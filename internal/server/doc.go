// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP API and the gRPC health listener side by
// side and stops both on SIGINT, SIGTERM or SIGQUIT within the configured
// shutdown timeout.
package server
