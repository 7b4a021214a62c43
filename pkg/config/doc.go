// Package config loads the cicd-api application configuration.
//
// Values are resolved in order: built-in defaults, an optional YAML file,
// then environment variables. Command line flags are applied last by
// pkg/cli before Validate is called again.
//
// Example file:
//
//	name: CI/CD Comparison API
//	version: 1.0.0
//	environment: staging
//	log_level: debug
//	cors_allowed_origins: ["https://example.com"]
//	server:
//	  port: 8000
//	  rate_limit: 50
//	  rate_limit_burst: 100
//	  shutdown_timeout: 10s
//
// Environment variables: APP_NAME, APP_VERSION, APP_ENVIRONMENT,
// APP_LOG_LEVEL (falls back to LOG_LEVEL), COMMIT_HASH, PORT,
// SHUTDOWN_TIMEOUT_SECONDS and CORS_ALLOWED_ORIGINS (comma separated).
//
// COMMIT_HASH set to an empty string clears the commit hash, which the
// /version endpoint reports as null.
package config
