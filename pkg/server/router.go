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
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/NVIDIA/cicd-comparison-api/pkg/serializer"
)

// System endpoints. They skip rate limiting.
const (
	PathRoot    = "/"
	PathHealth  = "/health"
	PathReady   = "/ready"
	PathVersion = "/version"
	PathMetrics = "/metrics"
)

// setupRoutes configures all HTTP routes and middleware
func (s *Server) setupRoutes() http.Handler {
	mux := http.NewServeMux()

	// System endpoints (no rate limiting)
	mux.HandleFunc(PathHealth, s.withSystemMiddleware(s.handleHealth))
	mux.HandleFunc(PathReady, s.withSystemMiddleware(s.handleReady))
	mux.HandleFunc(PathVersion, s.withSystemMiddleware(s.handleVersion))
	mux.Handle(PathMetrics, promhttp.Handler())

	for pattern, handler := range s.config.Handlers {
		if pattern == PathRoot {
			mux.HandleFunc(pattern, s.withSystemMiddleware(handler))
			continue
		}
		mux.HandleFunc(pattern, s.withMiddleware(handler))
	}

	return s.corsMiddleware(mux)
}

// handleRoot serves the banner on "/" and 404 on every path no other
// route matches.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != PathRoot {
		WriteNotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		WriteMethodNotAllowed(w, r, http.MethodGet)
		return
	}

	slog.Debug("handling root route",
		"remote_addr", r.RemoteAddr,
		"user_agent", r.UserAgent(),
	)

	serializer.RespondJSON(w, http.StatusOK, RootResponse{
		Message:     "Welcome to " + s.config.Name,
		Name:        s.config.Name,
		Version:     s.config.Version,
		Environment: s.config.Environment,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Routes:      s.routes(),
	})
}

// routes lists the registered patterns, system endpoints last.
func (s *Server) routes() []string {
	var api []string
	for pattern := range s.config.Handlers {
		if pattern != PathRoot {
			api = append(api, pattern)
		}
	}
	slices.Sort(api)
	return append(api, PathHealth, PathReady, PathVersion, PathMetrics)
}
