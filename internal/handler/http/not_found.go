// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// notFound is installed as both the NotFound and the MethodNotAllowed
// handler of the router: a known path requested with a method it does not
// serve gets the same JSON 404 as an unknown path.
func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, ErrRouteNotFound)
}
