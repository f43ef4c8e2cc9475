// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoTransportAddress is returned when the server config enables neither
// the HTTP nor the gRPC transport.
var errNoTransportAddress = errors.New("handler: no HTTP or gRPC address configured")
