// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the pure input-validation rules of the
// application: credential checks used on sign-up and task field checks used
// on task creation and update.
//
// Validation is fail-fast: the first violated rule is reported and no
// further rules are evaluated. Every returned error is a [*ValidationError]
// whose message is written for the end user and which wraps one of the
// package sentinels (see errors.go).
package validators

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	maxEmailLength    = 255
	minPasswordLength = 8
	maxPasswordLength = 128

	// passwordSpecialChars is the fixed punctuation set a password must draw
	// at least one character from.
	passwordSpecialChars = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// commonPasswords is the static list of rejected passwords, compared
// case-insensitively.
var commonPasswords = map[string]struct{}{
	"password": {}, "123456": {}, "12345678": {}, "qwerty": {}, "abc123": {},
	"monkey": {}, "1234567": {}, "letmein": {}, "trustno1": {}, "dragon": {},
	"baseball": {}, "iloveyou": {}, "master": {}, "sunshine": {}, "ashley": {},
	"bailey": {}, "passw0rd": {}, "shadow": {}, "123123": {}, "654321": {},
}

// ValidateEmail checks raw against the email address grammar and returns its
// canonical form: trimmed and lower-cased.
//
// ValidateEmail is idempotent: validating its own output returns the same
// value. Any failure wraps [ErrInvalidEmail].
func ValidateEmail(raw string) (string, error) {
	email := strings.TrimSpace(raw)
	if email == "" {
		return "", newValidationError(ErrInvalidEmail, "Email is required")
	}

	if utf8.RuneCountInString(email) > maxEmailLength {
		return "", invalidEmail(fmt.Sprintf("the email address must not exceed %d characters", maxEmailLength))
	}

	address, err := mail.ParseAddress(email)
	if err != nil {
		return "", invalidEmail("the email address is not valid")
	}

	// a display name or angle brackets are not part of an address
	if address.Name != "" || address.Address != email {
		return "", invalidEmail("the email address must not contain a display name")
	}

	at := strings.LastIndex(email, "@")
	local, domain := email[:at], email[at+1:]
	if local == "" {
		return "", invalidEmail("there must be something before the @-sign")
	}

	if err := checkDomain(domain); err != nil {
		return "", err
	}

	return strings.ToLower(email), nil
}

func checkDomain(domain string) error {
	if !strings.Contains(domain, ".") {
		return invalidEmail("the domain name must contain a period")
	}

	for _, label := range strings.Split(domain, ".") {
		if label == "" {
			return invalidEmail("the domain name contains an empty label")
		}
		if strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return invalidEmail("a domain label must not start or end with a hyphen")
		}
		for _, r := range label {
			if r != '-' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
				return invalidEmail(fmt.Sprintf("the domain name contains an invalid character: %q", r))
			}
		}
	}

	return nil
}

func invalidEmail(reason string) *ValidationError {
	return newValidationError(ErrInvalidEmail, "Invalid email format: "+reason)
}

// ValidatePassword checks raw against the password strength rules, in this
// order: presence, minimum length, maximum length, lowercase letter,
// uppercase letter, digit, special character, common-password list.
//
// Only the first failing rule is reported. Any failure wraps
// [ErrWeakPassword].
func ValidatePassword(raw string) error {
	if raw == "" {
		return weakPassword("Password is required")
	}

	length := utf8.RuneCountInString(raw)
	if length < minPasswordLength {
		return weakPassword(fmt.Sprintf("Password must be at least %d characters long", minPasswordLength))
	}
	if length > maxPasswordLength {
		return weakPassword(fmt.Sprintf("Password must not exceed %d characters", maxPasswordLength))
	}

	if !strings.ContainsFunc(raw, isASCIILower) {
		return weakPassword("Password must contain at least one lowercase letter")
	}
	if !strings.ContainsFunc(raw, isASCIIUpper) {
		return weakPassword("Password must contain at least one uppercase letter")
	}
	if !strings.ContainsFunc(raw, unicode.IsDigit) {
		return weakPassword("Password must contain at least one digit")
	}
	if !strings.ContainsAny(raw, passwordSpecialChars) {
		return weakPassword(fmt.Sprintf("Password must contain at least one special character (%s)", passwordSpecialChars))
	}

	if _, common := commonPasswords[strings.ToLower(raw)]; common {
		return weakPassword("Password is too common, please choose a stronger password")
	}

	return nil
}

func weakPassword(message string) *ValidationError {
	return newValidationError(ErrWeakPassword, message)
}

func isASCIILower(r rune) bool { return r >= 'a' && r <= 'z' }

func isASCIIUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
