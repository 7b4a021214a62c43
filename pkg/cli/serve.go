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


package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/cicd-comparison-api/pkg/api"
	"github.com/NVIDIA/cicd-comparison-api/pkg/logging"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP API server",
		Description: `Start the API server and block until SIGINT or SIGTERM.

Flags override the configuration file and environment:
  PORT, APP_ENVIRONMENT, APP_LOG_LEVEL, APP_VERSION, APP_NAME,
  COMMIT_HASH, SHUTDOWN_TIMEOUT_SECONDS, CORS_ALLOWED_ORIGINS`,
		Flags: []cli.Flag{
			configFlag(),
			&cli.IntFlag{
				Name:  "port",
				Usage: "Port to listen on",
			},
			&cli.StringFlag{
				Name:  "address",
				Usage: "Address to bind (default: all interfaces)",
			},
			&cli.StringFlag{
				Name:  "environment",
				Usage: "Deployment environment reported by /version",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (debug, info, warn, error)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			logging.SetDefaultStructuredLoggerWithLevel(name, cfg.Version, cfg.LogLevel)
			slog.Debug("configuration loaded",
				"port", cfg.Server.Port,
				"environment", cfg.Environment,
				"logLevel", cfg.LogLevel)

			return api.Serve(ctx, cfg)
		},
	}
}
