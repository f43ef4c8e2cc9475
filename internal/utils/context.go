// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared by the server and the client:
// the request principal in a context, JSON request and response bodies,
// UUID generation and the resty client.
package utils

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/models"
)

type userKey struct{}

// WithUser returns a copy of ctx carrying user as the authenticated
// principal.
func WithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// UserFromContext returns the principal stored by WithUser. ok is false
// when there is none or its id is empty.
func UserFromContext(ctx context.Context) (user models.User, ok bool) {
	user, ok = ctx.Value(userKey{}).(models.User)
	if !ok || user.UserID == "" {
		return models.User{}, false
	}
	return user, true
}
