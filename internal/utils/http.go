// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// maxRequestBodySize bounds request bodies read by ReadJSON.
const maxRequestBodySize = 1 << 20

// ErrInvalidJSON means the request body was missing, too large or not a
// single JSON value of the expected shape.
var ErrInvalidJSON = errors.New("invalid JSON body")

// WriteJSON encodes v and sends it with the given status. The body is
// encoded before anything is written, so an encoding failure still
// produces a clean 500.
func WriteJSON(w http.ResponseWriter, v any, status int) (int, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return 0, fmt.Errorf("encode response: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return w.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
}

// ReadJSON decodes exactly one JSON value from the body of r into dst.
// Unknown fields are ignored.
func ReadJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return ErrInvalidJSON
	}

	dec := json.NewDecoder(io.LimitReader(r.Body, maxRequestBodySize))
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	if dec.More() {
		return fmt.Errorf("%w: unexpected data after JSON value", ErrInvalidJSON)
	}

	return nil
}
