// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"slices"

	"github.com/rs/zerolog"
)

const minTokenSecretLength = 32

// bcrypt cost bounds (golang.org/x/crypto/bcrypt MinCost and MaxCost)
const (
	minBcryptCost = 4
	maxBcryptCost = 31
)

var tokenAlgorithms = []string{"HS256", "HS384", "HS512"}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if len(cfg.App.TokenSecret) < minTokenSecretLength {
		return fmt.Errorf("%w: token secret must be at least %d bytes", ErrInvalidAppConfigs, minTokenSecretLength)
	}
	if !slices.Contains(tokenAlgorithms, cfg.App.TokenAlgorithm) {
		return fmt.Errorf("%w: unsupported token algorithm %q", ErrInvalidAppConfigs, cfg.App.TokenAlgorithm)
	}
	if cfg.App.BcryptCost < minBcryptCost || cfg.App.BcryptCost > maxBcryptCost {
		return fmt.Errorf("%w: bcrypt cost must be within [%d, %d]", ErrInvalidAppConfigs, minBcryptCost, maxBcryptCost)
	}
	if cfg.App.LogLevel != "" {
		if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
		}
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return fmt.Errorf("%w: at least one listen address is required", ErrInvalidServerConfigs)
	}

	return nil
}

// Validate checks a [ClientConfig]; it is called again by the client after
// command flags were applied.
func (cfg *ClientConfig) Validate() error {
	u, err := url.Parse(cfg.ServerURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: server URL %q is not absolute", ErrInvalidAdapterConfigs, cfg.ServerURL)
	}

	if cfg.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}

	return nil
}
