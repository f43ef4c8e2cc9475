// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/gzip"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/go-todo-keeper/internal/utils"
)

var (
	gzipWriters = sync.Pool{New: func() any { return gzip.NewWriter(nil) }}
	gzipReaders = sync.Pool{New: func() any { return new(gzip.Reader) }}
)

// withGZip inflates request bodies sent with Content-Encoding: gzip and
// compresses response bodies for clients that accept gzip. A body that is
// not valid gzip is rejected as invalid JSON.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil && strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
			body, err := newGzipBody(r.Body)
			if err != nil {
				writeError(w, r, fmt.Errorf("%w: %w", utils.ErrInvalidJSON, err))
				return
			}

			r.Body = body
			r.Header.Del("Content-Encoding")
			r.ContentLength = -1
		}

		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		gw := &gzipResponseWriter{ResponseWriter: w}
		defer gw.release()

		next.ServeHTTP(gw, r)
	})
}

// gzipBody is an inflating request body. Close returns the reader to the
// pool.
type gzipBody struct {
	*gzip.Reader
	raw io.Closer
}

func newGzipBody(raw io.ReadCloser) (*gzipBody, error) {
	zr := gzipReaders.Get().(*gzip.Reader)
	if err := zr.Reset(raw); err != nil {
		gzipReaders.Put(zr)
		return nil, err
	}

	return &gzipBody{Reader: zr, raw: raw}, nil
}

func (b *gzipBody) Close() error {
	if b.Reader == nil {
		return nil
	}

	err := b.Reader.Close()
	gzipReaders.Put(b.Reader)
	b.Reader = nil

	if rawErr := b.raw.Close(); err == nil {
		err = rawErr
	}
	return err
}

// gzipResponseWriter compresses what is written through it. The gzip writer
// is taken from the pool on the first body write, so responses without a
// body (204, 304, 1xx) go out untouched.
type gzipResponseWriter struct {
	http.ResponseWriter
	zw          *gzip.Writer
	wroteHeader bool
	plain       bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	if bodyAllowed(statusCode) {
		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Add("Vary", "Accept-Encoding")
		w.Header().Del("Content-Length")
	} else {
		w.plain = true
	}
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	if w.plain {
		return w.ResponseWriter.Write(data)
	}

	if w.zw == nil {
		w.zw = gzipWriters.Get().(*gzip.Writer)
		w.zw.Reset(w.ResponseWriter)
	}
	return w.zw.Write(data)
}

// release flushes the gzip stream and returns the writer to the pool.
func (w *gzipResponseWriter) release() {
	if w.zw == nil {
		return
	}
	_ = w.zw.Close()
	gzipWriters.Put(w.zw)
	w.zw = nil
}

func bodyAllowed(status int) bool {
	return status >= http.StatusOK && status != http.StatusNoContent && status != http.StatusNotModified
}
