// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/models"
)

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	var credentials models.Credentials
	if err := utils.ReadJSON(r, &credentials); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.SignUp(r.Context(), credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusCreated)
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	var credentials models.Credentials
	if err := utils.ReadJSON(r, &credentials); err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.SignIn(r.Context(), credentials)
	if err != nil {
		h.metrics.signIns.WithLabelValues("failure").Inc()
		writeError(w, r, err)
		return
	}
	h.metrics.signIns.WithLabelValues("success").Inc()

	logger.FromRequest(r).Debug().Str("user_id", token.User.UserID).Msg("user successfully signed in")
	utils.WriteJSON(w, token, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.UserFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrEmptyToken)
		return
	}

	user, err := h.services.AuthService.CurrentUser(r.Context(), principal.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
