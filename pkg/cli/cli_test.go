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
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/cicd-comparison-api/pkg/config"
	"github.com/NVIDIA/cicd-comparison-api/pkg/serializer"
)

func unsetConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		config.EnvName, config.EnvVersion, config.EnvEnvironment, config.EnvLogLevel,
		config.EnvPort, config.EnvShutdownTimeout, config.EnvCORSAllowedOrigins,
		"LOG_LEVEL", "APP_CONFIG_FILE",
	} {
		t.Setenv(key, "")
	}
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		name       string
		format     string
		wantFormat serializer.Format
		wantErr    bool
	}{
		{
			name:       "valid yaml format",
			format:     "yaml",
			wantFormat: serializer.FormatYAML,
		},
		{
			name:       "valid json format",
			format:     "json",
			wantFormat: serializer.FormatJSON,
		},
		{
			name:       "valid table format",
			format:     "table",
			wantFormat: serializer.FormatTable,
		},
		{
			name:       "mixed case",
			format:     "JSON",
			wantFormat: serializer.FormatJSON,
		},
		{
			name:    "invalid format xml",
			format:  "xml",
			wantErr: true,
		},
		{
			name:    "empty format",
			format:  "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cli.Command{
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Value: tt.format,
					},
				},
				Action: func(_ context.Context, c *cli.Command) error {
					got, err := parseOutputFormat(c)
					if (err != nil) != tt.wantErr {
						t.Errorf("parseOutputFormat() error = %v, wantErr %v", err, tt.wantErr)
						return nil
					}
					if !tt.wantErr && got != tt.wantFormat {
						t.Errorf("parseOutputFormat() = %v, want %v", got, tt.wantFormat)
					}
					return nil
				},
			}

			if err := cmd.Run(context.Background(), []string{"test"}); err != nil {
				t.Fatalf("failed to run command: %v", err)
			}
		})
	}
}

func TestRootCommand(t *testing.T) {
	root := newRootCmd()

	if root.Name != name {
		t.Errorf("root name = %q, want %q", root.Name, name)
	}

	want := map[string]bool{"serve": false, "version": false, "config": false}
	for _, c := range root.Commands {
		if _, ok := want[c.Name]; ok {
			want[c.Name] = true
		}
	}
	for cmdName, found := range want {
		if !found {
			t.Errorf("expected %q subcommand", cmdName)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "version.json")

	err := newRootCmd().Run(context.Background(),
		[]string{name, "version", "--format", "json", "--output", path})
	if err != nil {
		t.Fatalf("version command failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	var info VersionInfo
	if err := json.Unmarshal(data, &info); err != nil {
		t.Fatalf("invalid JSON output %q: %v", data, err)
	}
	if info.Name != name {
		t.Errorf("name = %q, want %q", info.Name, name)
	}
	if info.Version != version {
		t.Errorf("version = %q, want %q", info.Version, version)
	}
	if info.GoVersion == "" || info.Platform == "" {
		t.Errorf("expected runtime details, got %+v", info)
	}
	if info.Commit == "" || info.Date == "" {
		t.Errorf("expected placeholder commit and date, got %+v", info)
	}
}

func TestVersionCommand_InvalidFormat(t *testing.T) {
	err := newRootCmd().Run(context.Background(),
		[]string{name, "version", "--format", "xml", "--output", filepath.Join(t.TempDir(), "out")})
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestConfigCommand(t *testing.T) {
	unsetConfigEnv(t)

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	body := "environment: staging\nserver:\n  port: 9090\n  shutdown_timeout: 5s\n"
	if err := os.WriteFile(cfgPath, []byte(body), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	outPath := filepath.Join(dir, "out.json")

	err := newRootCmd().Run(context.Background(),
		[]string{name, "config", "--config", cfgPath, "--format", "json", "--output", outPath})
	if err != nil {
		t.Fatalf("config command failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	var got config.Config
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("invalid JSON output %q: %v", data, err)
	}
	if got.Environment != "staging" {
		t.Errorf("environment = %q, want staging", got.Environment)
	}
	if got.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", got.Server.Port)
	}
	if got.Server.ShutdownTimeout.Seconds() != 5 {
		t.Errorf("shutdown timeout = %v, want 5s", got.Server.ShutdownTimeout)
	}
}

func TestConfigCommand_MissingFile(t *testing.T) {
	unsetConfigEnv(t)

	err := newRootCmd().Run(context.Background(),
		[]string{name, "config", "--config", filepath.Join(t.TempDir(), "missing.yaml")})
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestServeCommand_RejectsInvalidFlags(t *testing.T) {
	unsetConfigEnv(t)

	tests := []struct {
		name string
		args []string
	}{
		{"port out of range", []string{"--port", "70000"}},
		{"unknown log level", []string{"--log-level", "verbose"}},
		{"empty environment", []string{"--environment", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{name, "serve"}, tt.args...)
			if err := newRootCmd().Run(context.Background(), args); err == nil {
				t.Fatal("expected configuration error")
			}
		})
	}
}

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	unsetConfigEnv(t)
	t.Setenv(config.EnvPort, "7000")
	t.Setenv(config.EnvEnvironment, "from-env")

	var got *config.Config
	cmd := serveCmd()
	cmd.Action = func(_ context.Context, c *cli.Command) error {
		cfg, err := loadConfig(c)
		got = cfg
		return err
	}

	if err := cmd.Run(context.Background(), []string{"serve", "--port", "8181"}); err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if got.Server.Port != 8181 {
		t.Errorf("port = %d, want flag value 8181", got.Server.Port)
	}
	if got.Environment != "from-env" {
		t.Errorf("environment = %q, want env value", got.Environment)
	}
}
