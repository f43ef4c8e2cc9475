// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"

	"github.com/spf13/pflag"
)

var (
	errAddressFormat = errors.New("address must look like host:port")
	errAddressPort   = errors.New("port must be within 1..65535")
	errAddressHost   = errors.New("host must be an IP address or localhost")
)

// listenAddress is a pflag.Value accepting host:port, where host is empty,
// "localhost" or an IP literal.
type listenAddress string

func (a *listenAddress) String() string {
	return string(*a)
}

func (a *listenAddress) Type() string {
	return "host:port"
}

func (a *listenAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("%w: %w", errAddressFormat, err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil || port < 1 || port > 65535 {
		return errAddressPort
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errAddressHost
	}

	*a = listenAddress(net.JoinHostPort(host, rawPort))
	return nil
}

// parseFlags reads server flags from args. Flags that are not given stay
// zero so they do not override other sources.
func parseFlags(args []string) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	var httpAddr, grpcAddr listenAddress

	fs := pflag.NewFlagSet("todo-server", pflag.ContinueOnError)
	fs.VarP(&httpAddr, "address", "a", "HTTP listen address")
	fs.Var(&grpcAddr, "grpc-address", "gRPC health listen address")
	fs.StringVarP(&cfg.Storage.DB.DSN, "database-dsn", "d", "", "database DSN (postgres:// or sqlite path)")
	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "path to a JSON config file")
	fs.StringVar(&cfg.App.TokenSecret, "token-secret", "", "access token signing secret")
	fs.StringVar(&cfg.App.TokenAlgorithm, "token-algorithm", "", "HS256, HS384 or HS512")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "access token issuer")
	fs.IntVar(&cfg.App.BcryptCost, "bcrypt-cost", 0, "bcrypt work factor")
	fs.StringVar(&cfg.App.FrontendURL, "frontend-url", "", "origin allowed by CORS")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "debug, info, warn or error")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "per-request timeout, e.g. 30s")
	fs.DurationVar(&cfg.Server.ShutdownTimeout, "shutdown-timeout", 0, "graceful shutdown timeout, e.g. 10s")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = httpAddr.String()
	cfg.Server.GRPCAddress = grpcAddr.String()
	return cfg, nil
}
