// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-todo-keeper/internal/app"
	"github.com/MKhiriev/go-todo-keeper/internal/crypto"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/internal/validators"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// errorMapping is the HTTP answer to one family of errors.
type errorMapping struct {
	status int
	detail string
	code   models.ErrorCode
}

var errorStatusMap = map[error]errorMapping{
	utils.ErrInvalidJSON: {http.StatusBadRequest, app.MsgInvalidDataProvided, models.ErrorCodeValidationError},

	service.ErrEmailExists:        {http.StatusConflict, app.MsgEmailAlreadyRegistered, models.ErrorCodeEmailExists},
	service.ErrInvalidCredentials: {http.StatusUnauthorized, app.MsgInvalidEmailOrPassword, models.ErrorCodeInvalidCredentials},
	service.ErrUnauthorized:       {http.StatusUnauthorized, app.MsgUserNotFound, models.ErrorCodeInvalidToken},
	service.ErrTaskNotFound:       {http.StatusNotFound, app.MsgTaskNotFound, models.ErrorCodeTaskNotFound},

	crypto.ErrTokenExpired: {http.StatusUnauthorized, app.MsgTokenHasExpired, models.ErrorCodeExpiredToken},
	crypto.ErrTokenInvalid: {http.StatusUnauthorized, app.MsgInvalidAuthCredentials, models.ErrorCodeInvalidToken},

	ErrEmptyAuthorizationHeader:   {http.StatusUnauthorized, app.MsgNotAuthenticated, models.ErrorCodeMissingToken},
	ErrInvalidAuthorizationHeader: {http.StatusUnauthorized, app.MsgNotAuthenticated, models.ErrorCodeMissingToken},
	ErrEmptyToken:                 {http.StatusUnauthorized, app.MsgNotAuthenticated, models.ErrorCodeMissingToken},
	ErrMalformedTaskID:            {http.StatusNotFound, app.MsgTaskNotFound, models.ErrorCodeTaskNotFound},
	ErrRouteNotFound:              {http.StatusNotFound, app.MsgNotFound, ""},
}

var internalError = errorMapping{http.StatusInternalServerError, app.MsgInternalServerError, models.ErrorCodeInternalError}

// mapError returns the HTTP answer for err. Validation errors keep the
// message of the failed rule. Unknown errors become a generic 500.
func mapError(err error) errorMapping {
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		code := models.ErrorCodeValidationError
		switch {
		case errors.Is(err, validators.ErrInvalidEmail):
			code = models.ErrorCodeInvalidEmail
		case errors.Is(err, validators.ErrWeakPassword):
			code = models.ErrorCodeWeakPassword
		}
		return errorMapping{http.StatusBadRequest, validationErr.Message, code}
	}

	for target, mapping := range errorStatusMap {
		if errors.Is(err, target) {
			return mapping
		}
	}

	return internalError
}

// writeError answers the request with the mapping of err. Unauthorized
// answers carry the WWW-Authenticate challenge.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	mapping := mapError(err)

	if mapping.status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", mapping.status).Msg("request rejected")
	}

	if mapping.status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}

	utils.WriteJSON(w, models.ErrorResponse{Detail: mapping.detail, ErrorCode: mapping.code}, mapping.status)
}
