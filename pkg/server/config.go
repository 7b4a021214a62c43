// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/NVIDIA/cicd-comparison-api/pkg/defaults"
)

// Config holds server configuration
type Config struct {
	// Server identity, reported by / and /version
	Name        string
	Version     string
	Environment string
	CommitHash  *string
	BuildTime   time.Time

	// Handlers to be added to the server, keyed by ServeMux pattern.
	// A root handler is added when "/" is not present.
	Handlers map[string]http.HandlerFunc

	// Server configuration
	Address string
	Port    int

	// CORS origins; "*" allows any origin
	CORSAllowedOrigins []string

	// Rate limiting configuration
	RateLimit      rate.Limit // requests per second
	RateLimitBurst int        // burst size

	// Timeouts
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

// NewConfig returns a new Config with sensible defaults.
// Use this when you want to customize config programmatically.
func NewConfig() *Config {
	return parseConfig()
}

// parseConfig returns sensible defaults. Environment overrides are resolved
// by pkg/config before the server is built.
func parseConfig() *Config {
	return &Config{
		Name:               "server",
		Version:            "undefined",
		Environment:        "local",
		BuildTime:          time.Now().UTC(),
		Handlers:           make(map[string]http.HandlerFunc),
		Address:            "",
		Port:               defaults.ServerPort,
		CORSAllowedOrigins: []string{"*"},
		RateLimit:          defaults.RateLimit,
		RateLimitBurst:     defaults.RateLimitBurst,
		ReadTimeout:        defaults.ServerReadTimeout,
		ReadHeaderTimeout:  defaults.ServerReadHeaderTimeout,
		WriteTimeout:       defaults.ServerWriteTimeout,
		IdleTimeout:        defaults.ServerIdleTimeout,
		ShutdownTimeout:    defaults.ServerShutdownTimeout,
	}
}
