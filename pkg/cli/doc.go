// Package cli implements the cicd-api command-line interface.
//
// # Commands
//
// serve - Run the HTTP API server:
//
//	cicd-api serve [--config FILE] [--port N] [--address ADDR] [--environment ENV] [--log-level LEVEL]
//
// Loads the configuration, installs the structured logger and serves until
// SIGINT or SIGTERM. Flags win over the environment, which wins over the
// configuration file.
//
// version - Print build information:
//
//	cicd-api version [--format yaml|json|table] [--output FILE]
//
// config - Print the effective configuration:
//
//	cicd-api config [--config FILE] [--format yaml|json|table] [--output FILE]
//
// # Build Information
//
// Version, commit and build date are injected at link time:
//
//	go build -ldflags "-X github.com/NVIDIA/cicd-comparison-api/pkg/cli.version=1.2.3 \
//	  -X github.com/NVIDIA/cicd-comparison-api/pkg/cli.commit=$(git rev-parse HEAD) \
//	  -X github.com/NVIDIA/cicd-comparison-api/pkg/cli.date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// A version that is not a full major.minor.patch release is ignored by the
// server, which then reports APP_VERSION or the default.
package cli
