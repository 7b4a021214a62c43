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

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/cicd-comparison-api/pkg/defaults"
	"github.com/NVIDIA/cicd-comparison-api/pkg/logging"
	"github.com/NVIDIA/cicd-comparison-api/pkg/version"
)

// Environment variables read by Load.
const (
	EnvName               = "APP_NAME"
	EnvVersion            = "APP_VERSION"
	EnvEnvironment        = "APP_ENVIRONMENT"
	EnvLogLevel           = "APP_LOG_LEVEL"
	EnvCommitHash         = "COMMIT_HASH"
	EnvPort               = "PORT"
	EnvShutdownTimeout    = "SHUTDOWN_TIMEOUT_SECONDS"
	EnvCORSAllowedOrigins = "CORS_ALLOWED_ORIGINS"
)

const (
	DefaultName        = "CI/CD Comparison API"
	DefaultVersion     = "1.0.0"
	DefaultEnvironment = "local"
	DefaultLogLevel    = "info"
	DefaultCommitHash  = "unknown"
)

// Build carries the values injected at link time with -ldflags -X.
type Build struct {
	Version string
	Commit  string
	Date    string
}

// Config is the application configuration.
type Config struct {
	Name        string `json:"name" yaml:"name" validate:"required"`
	Version     string `json:"version" yaml:"version" validate:"required,semver"`
	Environment string `json:"environment" yaml:"environment" validate:"required"`

	// CommitHash is nil when COMMIT_HASH is set to an empty value;
	// /version then reports null.
	CommitHash *string   `json:"commit_hash" yaml:"commit_hash"`
	BuildTime  time.Time `json:"build_time" yaml:"build_time"`

	LogLevel           string   `json:"log_level" yaml:"log_level" validate:"oneof=debug info warn warning error"`
	CORSAllowedOrigins []string `json:"cors_allowed_origins" yaml:"cors_allowed_origins" validate:"min=1,dive,required"`

	Server ServerConfig `json:"server" yaml:"server"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Address         string        `json:"address" yaml:"address"`
	Port            int           `json:"port" yaml:"port" validate:"min=1,max=65535"`
	RateLimit       float64       `json:"rate_limit" yaml:"rate_limit" validate:"gt=0"`
	RateLimitBurst  int           `json:"rate_limit_burst" yaml:"rate_limit_burst" validate:"min=1"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout" validate:"gt=0"`
}

// Default returns the configuration used when nothing else is supplied.
// A release build version replaces DefaultVersion, and the build commit
// replaces DefaultCommitHash.
func Default(b Build) *Config {
	cfg := &Config{
		Name:               DefaultName,
		Version:            DefaultVersion,
		Environment:        DefaultEnvironment,
		CommitHash:         ptr(DefaultCommitHash),
		BuildTime:          time.Now().UTC(),
		LogLevel:           DefaultLogLevel,
		CORSAllowedOrigins: []string{"*"},
		Server: ServerConfig{
			Port:            defaults.ServerPort,
			RateLimit:       defaults.RateLimit,
			RateLimitBurst:  defaults.RateLimitBurst,
			ShutdownTimeout: defaults.ServerShutdownTimeout,
		},
	}

	if v, err := version.ParseVersion(b.Version); err == nil && v.Precision == 3 {
		cfg.Version = strings.TrimPrefix(strings.TrimSpace(b.Version), "v")
	}
	if c := strings.TrimSpace(b.Commit); c != "" {
		cfg.CommitHash = ptr(c)
	}
	if t, err := time.Parse(time.RFC3339, b.Date); err == nil {
		cfg.BuildTime = t.UTC()
	}

	return cfg
}

// Load builds the configuration from defaults, the optional YAML file at
// path and the environment, in that order, and validates the result.
func Load(path string, b Build) (*Config, error) {
	cfg := Default(b)

	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvName); v != "" {
		c.Name = v
	}
	if v := os.Getenv(EnvVersion); v != "" {
		c.Version = v
	}
	if v := os.Getenv(EnvEnvironment); v != "" {
		c.Environment = v
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	} else if v := os.Getenv(logging.EnvLogLevel); v != "" {
		c.LogLevel = v
	}

	// Set-but-empty is meaningful here.
	if v, ok := os.LookupEnv(EnvCommitHash); ok {
		if v == "" {
			c.CommitHash = nil
		} else {
			c.CommitHash = ptr(v)
		}
	}

	if v := os.Getenv(EnvPort); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}

	if v := os.Getenv(EnvShutdownTimeout); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil && seconds > 0 {
			c.Server.ShutdownTimeout = time.Duration(seconds) * time.Second
		}
	}

	if v := os.Getenv(EnvCORSAllowedOrigins); v != "" {
		if origins := splitList(v); len(origins) > 0 {
			c.CORSAllowedOrigins = origins
		}
	}
}

// Validate normalizes the log level and checks every field constraint.
func (c *Config) Validate() error {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// CommitHashValue returns the commit hash or "" when unset.
func (c *Config) CommitHashValue() string {
	if c.CommitHash == nil {
		return ""
	}
	return *c.CommitHash
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
		parsed, err := version.ParseVersion(fl.Field().String())
		return err == nil && parsed.IsValid()
	}); err != nil {
		panic(fmt.Sprintf("register semver validation: %v", err))
	}
	return v
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func ptr(s string) *string {
	return &s
}
