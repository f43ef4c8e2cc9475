// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/go-resty/resty/v2"
)

var statusSentinels = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusInternalServerError: ErrInternalServerError,
}

// mapHTTPError returns nil for 2xx responses and a [*ResponseError] for all
// others. The detail is taken from the JSON error body when there is one.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	respErr := &ResponseError{
		StatusCode: resp.StatusCode(),
		sentinel:   ErrUnexpectedStatus,
	}
	if sentinel, ok := statusSentinels[resp.StatusCode()]; ok {
		respErr.sentinel = sentinel
	}

	var body models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Detail != "" {
		respErr.Detail = body.Detail
		respErr.Code = body.ErrorCode
		return respErr
	}

	respErr.Detail = strings.TrimSpace(string(resp.Body()))
	if respErr.Detail == "" {
		respErr.Detail = http.StatusText(resp.StatusCode())
	}
	return respErr
}
