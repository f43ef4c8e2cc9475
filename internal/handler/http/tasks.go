// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listTasks(w http.ResponseWriter, r *http.Request) {
	owner := ownerID(r)

	tasks, err := h.services.TaskService.List(r.Context(), owner)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, tasks, http.StatusOK)
}

func (h *Handler) createTask(w http.ResponseWriter, r *http.Request) {
	var request models.TaskRequest
	if err := utils.ReadJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	task, err := h.services.TaskService.Create(r.Context(), ownerID(r), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, task, http.StatusCreated)
}

func (h *Handler) getTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := taskIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	task, err := h.services.TaskService.Get(r.Context(), ownerID(r), taskID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, task, http.StatusOK)
}

func (h *Handler) updateTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := taskIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var request models.TaskRequest
	if err = utils.ReadJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	task, err := h.services.TaskService.Update(r.Context(), ownerID(r), taskID, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, task, http.StatusOK)
}

func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := taskIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.TaskService.Delete(r.Context(), ownerID(r), taskID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) toggleTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := taskIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	task, err := h.services.TaskService.ToggleCompletion(r.Context(), ownerID(r), taskID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, task, http.StatusOK)
}

// ownerID returns the id of the principal set by the auth middleware.
func ownerID(r *http.Request) string {
	user, _ := utils.UserFromContext(r.Context())
	return user.UserID
}

// taskIDParam returns the task_id path parameter, which must be a UUID.
func taskIDParam(r *http.Request) (string, error) {
	taskID := chi.URLParam(r, "task_id")
	if !utils.IsUUID(taskID) {
		return "", ErrMalformedTaskID
	}
	return taskID, nil
}
