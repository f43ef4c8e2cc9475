// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/google/uuid"
)

const (
	traceIDHeader = "X-Trace-ID"

	// maxTraceIDLength bounds client-supplied trace ids copied into logs.
	maxTraceIDLength = 128
)

// withTraceID reuses the X-Trace-ID request header as the trace id, or
// generates one when it is absent or too long. The id is echoed in the
// response and every log entry of the request carries it.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" || len(traceID) > maxTraceIDLength {
			traceID = uuid.NewString()
		}

		w.Header().Set(traceIDHeader, traceID)
		ctx := h.logger.WithTraceID(traceID).WithContext(r.Context())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
