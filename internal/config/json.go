// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// fileConfig is the layout of the JSON config file:
//
//	{
//	  "app":     {"token_secret": "...", "bcrypt_cost": 12, ...},
//	  "storage": {"db": {"dsn": "postgres://..."}},
//	  "server":  {"http_address": ":8080", "request_timeout": "30s"}
//	}
type fileConfig struct {
	App struct {
		TokenSecret    string `json:"token_secret"`
		TokenAlgorithm string `json:"token_algorithm"`
		TokenIssuer    string `json:"token_issuer"`
		BcryptCost     int    `json:"bcrypt_cost"`
		FrontendURL    string `json:"frontend_url"`
		LogLevel       string `json:"log_level"`
		Version        string `json:"version"`
	} `json:"app"`

	Storage struct {
		DB struct {
			DSN          string `json:"dsn"`
			MaxOpenConns int    `json:"max_open_conns"`
			MaxIdleConns int    `json:"max_idle_conns"`
		} `json:"db"`
	} `json:"storage"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		GRPCAddress     string   `json:"grpc_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server"`
}

func (f *fileConfig) structured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSecret:    f.App.TokenSecret,
			TokenAlgorithm: f.App.TokenAlgorithm,
			TokenIssuer:    f.App.TokenIssuer,
			BcryptCost:     f.App.BcryptCost,
			FrontendURL:    f.App.FrontendURL,
			LogLevel:       f.App.LogLevel,
			Version:        f.App.Version,
		},
		Storage: Storage{DB: DB{
			DSN:          f.Storage.DB.DSN,
			MaxOpenConns: f.Storage.DB.MaxOpenConns,
			MaxIdleConns: f.Storage.DB.MaxIdleConns,
		}},
		Server: Server{
			HTTPAddress:     f.Server.HTTPAddress,
			GRPCAddress:     f.Server.GRPCAddress,
			RequestTimeout:  time.Duration(f.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(f.Server.ShutdownTimeout),
		},
	}
}

func parseJSON(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var f fileConfig
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("error decoding config file %s: %w", path, err)
	}

	return f.structured(), nil
}

// Duration reads a time.Duration from a JSON string such as "1m30s" or
// from a number of nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		var ns int64
		if numErr := json.Unmarshal(b, &ns); numErr != nil {
			return fmt.Errorf("duration must be a string or an integer: %s", b)
		}
		*d = Duration(ns)
		return nil
	}

	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
