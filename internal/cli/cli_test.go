// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jeranaias/accessdash/internal/config"
	"github.com/jeranaias/accessdash/internal/rbac"
)

// =============================================================================
// PARSE TESTS
// =============================================================================

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		argv     []string
		wantCmd  Command
		validate func(*testing.T, Args)
	}{
		{
			name:    "no args starts the dashboard",
			argv:    nil,
			wantCmd: CmdTUI,
		},
		{
			name:    "global flags only",
			argv:    []string{"--no-log", "--config", "/tmp/a.toml"},
			wantCmd: CmdTUI,
			validate: func(t *testing.T, a Args) {
				if !a.NoLog {
					t.Error("NoLog should be true")
				}
				if a.ConfigPath != "/tmp/a.toml" {
					t.Errorf("ConfigPath = %q, want /tmp/a.toml", a.ConfigPath)
				}
			},
		},
		{
			name:    "config flag with equals",
			argv:    []string{"--config=/tmp/b.json", "dump"},
			wantCmd: CmdDump,
			validate: func(t *testing.T, a Args) {
				if a.ConfigPath != "/tmp/b.json" {
					t.Errorf("ConfigPath = %q, want /tmp/b.json", a.ConfigPath)
				}
			},
		},
		{
			name:    "dump json",
			argv:    []string{"dump", "--json"},
			wantCmd: CmdDump,
			validate: func(t *testing.T, a Args) {
				if !a.JSON {
					t.Error("JSON should be true")
				}
			},
		},
		{
			name:    "dump format json",
			argv:    []string{"dump", "--format", "JSON"},
			wantCmd: CmdDump,
			validate: func(t *testing.T, a Args) {
				if !a.JSON || a.Format != "json" {
					t.Errorf("JSON = %v Format = %q, want true json", a.JSON, a.Format)
				}
			},
		},
		{
			name:    "dump format defaults to table",
			argv:    []string{"dump"},
			wantCmd: CmdDump,
			validate: func(t *testing.T, a Args) {
				if a.JSON || a.Format != "table" {
					t.Errorf("JSON = %v Format = %q, want false table", a.JSON, a.Format)
				}
			},
		},
		{
			name:    "config show key",
			argv:    []string{"config", "show", "ui.theme"},
			wantCmd: CmdConfig,
			validate: func(t *testing.T, a Args) {
				if a.Subcommand != "show" || a.ConfigKey != "ui.theme" {
					t.Errorf("got %q %q, want show ui.theme", a.Subcommand, a.ConfigKey)
				}
			},
		},
		{
			name:    "config init force",
			argv:    []string{"config", "init", "--force"},
			wantCmd: CmdConfig,
			validate: func(t *testing.T, a Args) {
				if a.Subcommand != "init" || !a.Force {
					t.Errorf("got %q force=%v, want init force=true", a.Subcommand, a.Force)
				}
			},
		},
		{
			name:    "command is case insensitive",
			argv:    []string{"VERSION"},
			wantCmd: CmdVersion,
		},
		{
			name:    "help flag",
			argv:    []string{"--help"},
			wantCmd: CmdHelp,
		},
		{
			name:    "unknown command",
			argv:    []string{"frobnicate"},
			wantCmd: CmdUnknown,
			validate: func(t *testing.T, a Args) {
				if a.Name != "frobnicate" {
					t.Errorf("Name = %q, want frobnicate", a.Name)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, args := Parse(tt.argv)
			if cmd != tt.wantCmd {
				t.Fatalf("Parse(%v) command = %v, want %v", tt.argv, cmd, tt.wantCmd)
			}
			if tt.validate != nil {
				tt.validate(t, args)
			}
		})
	}
}

func TestArgParser(t *testing.T) {
	p := NewArgParser([]string{"init", "--force", "extra", "--name=value", "--json=false", "--format", "json"})

	if p.Subcommand() != "init" {
		t.Errorf("Subcommand() = %q, want init", p.Subcommand())
	}
	if !p.BoolFlag("force") {
		t.Error("BoolFlag(force) should be true")
	}
	if p.Positional(1) != "extra" {
		t.Errorf("Positional(1) = %q, want extra (force takes no value)", p.Positional(1))
	}
	if p.Flag("name") != "value" {
		t.Errorf("Flag(name) = %q, want value", p.Flag("name"))
	}
	if p.BoolFlag("json") {
		t.Error("--json=false should be false")
	}
	if p.Flag("format") != "json" {
		t.Errorf("Flag(format) = %q, want json", p.Flag("format"))
	}
	if p.FlagOrDefault("missing", "d") != "d" {
		t.Error("FlagOrDefault should return the default")
	}
	if p.Positional(9) != "" {
		t.Error("out of range Positional should be empty")
	}
}

// =============================================================================
// DUMP TESTS
// =============================================================================

func TestBuildDumpData_MissingRole(t *testing.T) {
	users := []rbac.User{
		{ID: 1, Name: "John Doe", Role: "admin", Status: rbac.StatusActive},
		{ID: 2, Name: "Jane Smith", Role: "ghost", Status: rbac.StatusInactive},
	}
	roles := []rbac.Role{
		{ID: 1, Name: "admin", Permissions: rbac.NewPermissionSet(rbac.PermUsersView)},
	}

	data := BuildDumpData(users, roles)
	if data.Users[0].Missing {
		t.Error("John's role exists")
	}
	if !data.Users[1].Missing {
		t.Error("Jane's role should be marked missing")
	}
	if data.Roles[0].Members != 1 {
		t.Errorf("admin members = %d, want 1", data.Roles[0].Members)
	}
}

func TestHandleDump_Text(t *testing.T) {
	var buf bytes.Buffer
	if err := HandleDump(&buf, config.Default(), Args{}); err != nil {
		t.Fatalf("HandleDump() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Users (2)", "Roles (2)", "John Doe", "jane@example.com", "users.view, users.edit", "Active"} {
		if !strings.Contains(out, want) {
			t.Errorf("dump output missing %q:\n%s", want, out)
		}
	}
}

func TestHandleDump_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := HandleDump(&buf, config.Default(), Args{JSON: true}); err != nil {
		t.Fatalf("HandleDump() error = %v", err)
	}

	var resp struct {
		Success bool     `json:"success"`
		Command string   `json:"command"`
		Data    DumpData `json:"data"`
	}
	if err := json.Unmarshal(buf.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if !resp.Success || resp.Command != "dump" {
		t.Errorf("envelope = %+v", resp)
	}
	if len(resp.Data.Users) != 2 || len(resp.Data.Roles) != 2 {
		t.Fatalf("got %d users %d roles, want 2 and 2", len(resp.Data.Users), len(resp.Data.Roles))
	}
	if got := resp.Data.Roles[0].Permissions; len(got) != len(rbac.AllPermissions()) {
		t.Errorf("admin permissions = %v, want all", got)
	}
}

func TestHandleDump_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := HandleDump(&buf, config.Default(), Args{Format: "yaml"})
	if GetExitCode(err) != ExitUsageError {
		t.Fatalf("HandleDump() error = %v, want usage error", err)
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestHandleDump_InvalidSeed(t *testing.T) {
	cfg := config.Default()
	cfg.Seed.Users = append(cfg.Seed.Users, config.UserSeed{ID: 1, Name: "Dup"})

	err := HandleDump(&bytes.Buffer{}, cfg, Args{})
	if err == nil {
		t.Fatal("expected error for duplicate user id")
	}
	if GetExitCode(err) != ExitConfigError {
		t.Errorf("GetExitCode() = %d, want %d", GetExitCode(err), ExitConfigError)
	}
}

// =============================================================================
// CONFIG COMMAND TESTS
// =============================================================================

func TestHandleConfig_ShowKey(t *testing.T) {
	var buf bytes.Buffer
	err := HandleConfig(&buf, Args{Subcommand: "show", ConfigKey: "ui.start_tab"}, config.Default(), "")
	if err != nil {
		t.Fatalf("HandleConfig() error = %v", err)
	}
	if strings.TrimSpace(buf.String()) != "users" {
		t.Errorf("output = %q, want users", buf.String())
	}
}

func TestHandleConfig_ShowUnknownKey(t *testing.T) {
	err := HandleConfig(&bytes.Buffer{}, Args{Subcommand: "show", ConfigKey: "ui.nope"}, config.Default(), "")
	if !errors.Is(err, config.ErrUnknownKey) {
		t.Fatalf("error = %v, want ErrUnknownKey", err)
	}
	if GetExitCode(err) != ExitConfigError {
		t.Errorf("GetExitCode() = %d, want %d", GetExitCode(err), ExitConfigError)
	}
}

func TestHandleConfig_ShowAll(t *testing.T) {
	var buf bytes.Buffer
	if err := HandleConfig(&buf, Args{}, config.Default(), ""); err != nil {
		t.Fatalf("HandleConfig() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{"built-in defaults", "[ui]", "start_tab", "[[seed.users]]"} {
		if !strings.Contains(out, want) {
			t.Errorf("config show missing %q:\n%s", want, out)
		}
	}
}

func TestHandleConfig_Path(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	var buf bytes.Buffer
	if err := HandleConfig(&buf, Args{Subcommand: "path", JSON: true}, config.Default(), ""); err != nil {
		t.Fatalf("HandleConfig() error = %v", err)
	}

	var resp struct {
		Data ConfigPathData `json:"data"`
	}
	if err := json.Unmarshal(buf.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	want := filepath.Join(home, ".accessdash", "config.toml")
	if resp.Data.Path != want || resp.Data.Exists || !resp.Data.Default {
		t.Errorf("path data = %+v, want %s, not existing, defaults", resp.Data, want)
	}
}

func TestHandleConfig_Init(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	args := Args{Subcommand: "init", ConfigPath: path}

	var buf bytes.Buffer
	if err := HandleConfig(&buf, args, config.Default(), ""); err != nil {
		t.Fatalf("init error = %v", err)
	}
	if !strings.Contains(buf.String(), path) {
		t.Errorf("output = %q, want it to name %s", buf.String(), path)
	}

	cfg, err := config.LoadFromPath(path)
	if err != nil {
		t.Fatalf("written config does not load: %v", err)
	}
	if len(cfg.Seed.Users) != 2 {
		t.Errorf("seed users = %d, want 2", len(cfg.Seed.Users))
	}

	// second run refuses without --force
	err = HandleConfig(&bytes.Buffer{}, args, config.Default(), "")
	if GetExitCode(err) != ExitUsageError {
		t.Errorf("second init error = %v, want usage error", err)
	}

	args.Force = true
	if err := HandleConfig(&bytes.Buffer{}, args, config.Default(), ""); err != nil {
		t.Errorf("init --force error = %v", err)
	}
}

func TestHandleConfig_InitRejectsJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	err := HandleConfig(&bytes.Buffer{}, Args{Subcommand: "init", ConfigPath: path}, config.Default(), "")
	if GetExitCode(err) != ExitUsageError {
		t.Errorf("error = %v, want usage error", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("no file should be written")
	}
}

func TestHandleConfig_UnknownSubcommand(t *testing.T) {
	err := HandleConfig(&bytes.Buffer{}, Args{Subcommand: "set"}, config.Default(), "")
	var usage *UsageError
	if !errors.As(err, &usage) {
		t.Fatalf("error = %v, want *UsageError", err)
	}
}

// =============================================================================
// VERSION AND ERROR TESTS
// =============================================================================

func TestHandleVersion(t *testing.T) {
	var buf bytes.Buffer
	if err := HandleVersion(&buf, Args{}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "accessdash version "+Version) {
		t.Errorf("output = %q", buf.String())
	}

	buf.Reset()
	if err := HandleVersion(&buf, Args{JSON: true}); err != nil {
		t.Fatal(err)
	}
	var resp struct {
		Data VersionData `json:"data"`
	}
	if err := json.Unmarshal(buf.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp.Data.Version != Version {
		t.Errorf("version = %q, want %q", resp.Data.Version, Version)
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"usage", NewUsageError("bad", ""), ExitUsageError},
		{"wrapped usage", errors.Join(errors.New("x"), NewUsageError("bad", "")), ExitUsageError},
		{"config validation", config.ValidateErrors{{Field: "ui.theme", Message: "bad"}}, ExitConfigError},
		{"command", NewCommandError("dump", "run", "failed", nil), ExitGeneralError},
		{"other", errors.New("boom"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.want {
				t.Errorf("GetExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestDisplayError_JSON(t *testing.T) {
	var buf bytes.Buffer
	DisplayError(&buf, "dump", NewUsageError("bad flag", "try --help"), true)

	var out struct {
		Success   bool                   `json:"success"`
		Error     *string                `json:"error"`
		Timestamp string                 `json:"timestamp"`
		Command   string                 `json:"command"`
		Data      map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if out.Success || out.Command != "dump" || out.Timestamp == "" {
		t.Errorf("envelope = %+v", out)
	}
	if out.Error == nil || *out.Error != "bad flag (try --help)" {
		t.Errorf("error = %v", out.Error)
	}
	if out.Data["error_type"] != "usage_error" || out.Data["hint"] != "try --help" {
		t.Errorf("data = %v", out.Data)
	}
}

func TestDisplayError_JSONConfigFields(t *testing.T) {
	var buf bytes.Buffer
	err := config.ValidateErrors{{Field: "ui.theme", Message: "bad"}}
	DisplayError(&buf, "config", err, true)

	var out struct {
		Data struct {
			ErrorType string   `json:"error_type"`
			Fields    []string `json:"fields"`
		} `json:"data"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if out.Data.ErrorType != "config_error" || len(out.Data.Fields) != 1 || out.Data.Fields[0] != "ui.theme" {
		t.Errorf("data = %+v", out.Data)
	}
}
