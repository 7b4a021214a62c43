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


package api

import (
	"context"
	"log/slog"

	"golang.org/x/time/rate"

	"github.com/NVIDIA/cicd-comparison-api/pkg/config"
	"github.com/NVIDIA/cicd-comparison-api/pkg/item"
	"github.com/NVIDIA/cicd-comparison-api/pkg/server"
)

// Serve starts the API server and blocks until shutdown.
// The caller is expected to have validated cfg and installed the logger.
// Returns an error if the server fails to start or encounters a fatal error.
func Serve(ctx context.Context, cfg *config.Config) error {
	slog.Info("starting",
		"name", cfg.Name,
		"version", cfg.Version,
		"environment", cfg.Environment,
		"commit", cfg.CommitHashValue(),
		"buildTime", cfg.BuildTime,
	)

	s := NewServer(cfg, item.NewMemoryStore())

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// NewServer wires the item routes over store into a server configured from cfg.
func NewServer(cfg *config.Config, store item.Store) *server.Server {
	h := item.NewHandler(store)

	return server.New(
		server.WithConfig(ServerConfig(cfg)),
		server.WithHandler(h.Routes()),
	)
}

// ServerConfig maps the application configuration onto the HTTP server's.
func ServerConfig(cfg *config.Config) *server.Config {
	sc := server.NewConfig()
	sc.Name = cfg.Name
	sc.Version = cfg.Version
	sc.Environment = cfg.Environment
	sc.CommitHash = cfg.CommitHash
	sc.BuildTime = cfg.BuildTime
	sc.Address = cfg.Server.Address
	sc.Port = cfg.Server.Port
	sc.CORSAllowedOrigins = cfg.CORSAllowedOrigins
	sc.RateLimit = rate.Limit(cfg.Server.RateLimit)
	sc.RateLimitBurst = cfg.Server.RateLimitBurst
	sc.ShutdownTimeout = cfg.Server.ShutdownTimeout
	return sc
}
