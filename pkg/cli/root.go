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
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/cicd-comparison-api/pkg/config"
)

const (
	name           = "cicd-api"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	// e.g., -X "github.com/NVIDIA/cicd-comparison-api/pkg/cli.version=1.0.0"
	version = versionDefault
	commit  = ""
	date    = ""
)

func buildInfo() config.Build {
	return config.Build{
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

// newRootCmd builds the command tree.
func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "CI/CD Comparison API server",
		Version:               version,
		EnableShellCompletion: true,
		Description: fmt.Sprintf(`cicd-api - CI/CD Comparison API

Version: %s
Commit:  %s
Built:   %s

A small HTTP service exposing item CRUD, health and version endpoints.
Settings come from defaults, an optional YAML file, APP_* environment
variables and command flags, later sources winning.`, version, commit, date),
		Commands: []*cli.Command{
			serveCmd(),
			versionCmd(),
			configCmd(),
		},
	}
}

// Execute runs the CLI with the process arguments and exits non-zero on error.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
