// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the todo API.
//
// [App] builds a cobra command tree on top of an [adapter.ServerAdapter]:
// account commands (signup, signin, me), task commands under "tasks" and a
// version command. The bearer token is taken from the --token flag or the
// TODO_TOKEN environment variable; "signin" prints a fresh one.
package client
