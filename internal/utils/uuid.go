// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "github.com/google/uuid"

// uuidLength is the length of the canonical 8-4-4-4-12 form.
const uuidLength = 36

// UUIDGenerator hands out ids for users, tasks and trace ids. Version 7
// ids sort by creation time.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (*UUIDGenerator) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		// v7 only fails when the random source does, fall back to v4
		return uuid.NewString()
	}
	return id.String()
}

// IsUUID reports whether s is a UUID in canonical form. Braced and urn:
// forms accepted by uuid.Parse are rejected.
func IsUUID(s string) bool {
	return len(s) == uuidLength && uuid.Validate(s) == nil
}
