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

// Package server is the HTTP boundary of cicd-api.
//
// It owns routing, the middleware chain, the system endpoints and the error
// envelope. Domain packages register handlers with WithHandler and report
// failures as *errors.StructuredError values; WriteErrorFromErr is the only
// place where those become status codes.
//
// # Usage
//
//	s := server.New(
//	    server.WithConfig(cfg),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/api/items":      h.HandleItems,
//	        "/api/items/{id}": h.HandleItem,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// Run listens until ctx is cancelled or SIGINT/SIGTERM arrives and then
// drains in-flight requests for at most Config.ShutdownTimeout.
//
// # Endpoints
//
//	GET /         banner with name, version, environment and routes
//	GET /health   liveness, always {"status": "healthy", ...}
//	GET /ready    readiness, 503 while starting or draining
//	GET /version  {"version", "build_time", "commit_hash", "environment"}
//	GET /metrics  Prometheus exposition
//
// Any other path that no handler claims answers 404.
//
// # Middleware
//
// API handlers run behind metrics, API version negotiation, request ID,
// panic recovery, rate limiting (golang.org/x/time/rate) and request
// logging. System endpoints use the same chain without rate limiting.
// CORS wraps the whole mux so preflight requests are answered for every
// path.
//
// # Error Handling
//
// All errors return the same JSON structure:
//
//	{
//	  "error": "HTTP_404",
//	  "message": "Item ID 999 not found",
//	  "detail": "Item ID 999 not found",
//	  "details": {"id": 999},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-12-22T12:00:00Z",
//	  "retryable": false
//	}
//
// Validation failures use "VALIDATION_ERROR", status 422 and carry the
// field error list in "detail". Unexpected failures use
// "INTERNAL_SERVER_ERROR" with a fixed message; the cause is only logged.
package server
