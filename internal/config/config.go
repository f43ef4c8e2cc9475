// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the server configuration. Fields carry caarlos0/env
// tags; nested groups add their envPrefix to the variable names.
type StructuredConfig struct {
	App     App     `envPrefix:"APP_"`
	Storage Storage `envPrefix:"STORAGE_"`
	Server  Server  `envPrefix:"SERVER_"`

	// JSONFilePath points to an optional JSON file merged last.
	// Env: CONFIG, flags: -c, --config.
	JSONFilePath string `env:"CONFIG"`
}

// App configures authentication, CORS and logging.
type App struct {
	// TokenSecret signs access tokens and must be at least 32 bytes long.
	// Changing it invalidates every token already issued.
	TokenSecret string `env:"TOKEN_SECRET"`

	// TokenAlgorithm is one of HS256, HS384 or HS512.
	TokenAlgorithm string `env:"TOKEN_ALGORITHM" envDefault:"HS256"`

	// TokenIssuer is written to the iss claim and checked on decode.
	// An empty issuer is neither written nor checked.
	TokenIssuer string `env:"TOKEN_ISSUER" envDefault:"go-todo-keeper"`

	BcryptCost int `env:"BCRYPT_COST" envDefault:"12"`

	// FrontendURL is the single origin allowed by CORS.
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"debug"`

	// Version is reported by GET /api/version/. main falls back to the
	// linker-injected build version when it is empty.
	Version string `env:"VERSION"`
}

type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB configures the database connection pool. The DSN scheme picks the
// driver: postgres:// and postgresql:// open PostgreSQL, anything else
// (sqlite://, file: or a bare path) opens SQLite.
type DB struct {
	DSN          string `env:"DATABASE_URI"`
	MaxOpenConns int    `env:"MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns int    `env:"MAX_IDLE_CONNS" envDefault:"4"`
}

// Server configures the listeners. An empty address disables the
// corresponding transport, but at least one must be set.
type Server struct {
	HTTPAddress string `env:"ADDRESS"`
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout cancels a single HTTP request; zero means no limit.
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// GetStructuredConfig reads the environment, then os.Args, then the JSON
// file named by either of them. A non-zero value from a later source
// replaces the earlier one. The merged result is validated.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
