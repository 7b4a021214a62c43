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

// Package defaults provides centralized configuration constants for the API server.
//
// This package defines timeout values, request limits, and rate-limit
// defaults used across the codebase. Centralizing these values ensures
// consistency and makes tuning easier.
//
// # Categories
//
//   - Server timeouts: For HTTP server configuration
//   - Request limits: For request body handling
//   - Rate limiting: Token bucket defaults for the item API
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/NVIDIA/cicd-comparison-api/pkg/defaults"
//
//	r.Body = http.MaxBytesReader(w, r.Body, defaults.MaxRequestBodyBytes)
//
// # Timeout Guidelines
//
//   - Server read: 10s, read header: 5s to prevent slow header attacks
//   - Server write: 30s
//   - Server shutdown: 30s for graceful shutdown, overridable through
//     SHUTDOWN_TIMEOUT_SECONDS to match the orchestrator's grace period
package defaults
