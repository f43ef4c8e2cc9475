// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads the server and client settings.
//
// The server merges three sources, each overriding non-zero values of the
// previous one: environment variables (with defaults), command-line flags,
// and a JSON file named by CONFIG or -c. The client reads CLIENT_*
// variables only and lets its command flags override them.
package config
