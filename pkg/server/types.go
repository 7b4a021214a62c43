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
	"time"
)

// ErrorResponse is the envelope of every 4xx and 5xx JSON body.
// Detail is the field error list for validation failures and the
// message for everything else.
type ErrorResponse struct {
	Error     string         `json:"error" yaml:"error"`
	Message   string         `json:"message" yaml:"message"`
	Detail    any            `json:"detail,omitempty" yaml:"detail,omitempty"`
	Details   map[string]any `json:"details,omitempty" yaml:"details,omitempty"`
	RequestID string         `json:"requestId" yaml:"requestId"`
	Timestamp time.Time      `json:"timestamp" yaml:"timestamp"`
	Retryable bool           `json:"retryable" yaml:"retryable"`
}

// HealthResponse is returned by /health and /ready.
type HealthResponse struct {
	Status    string    `json:"status" yaml:"status"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Service   string    `json:"service,omitempty" yaml:"service,omitempty"`
	Reason    string    `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// VersionResponse is returned by /version. CommitHash encodes as null
// when unset or when COMMIT_HASH is set to the empty string.
type VersionResponse struct {
	Version     string    `json:"version" yaml:"version"`
	BuildTime   time.Time `json:"build_time" yaml:"build_time"`
	CommitHash  *string   `json:"commit_hash" yaml:"commit_hash"`
	Environment string    `json:"environment" yaml:"environment"`
}

// RootResponse is the service banner served at /.
type RootResponse struct {
	Message     string   `json:"message" yaml:"message"`
	Name        string   `json:"name" yaml:"name"`
	Version     string   `json:"version" yaml:"version"`
	Environment string   `json:"environment" yaml:"environment"`
	Timestamp   string   `json:"timestamp" yaml:"timestamp"`
	Routes      []string `json:"routes" yaml:"routes"`
}
