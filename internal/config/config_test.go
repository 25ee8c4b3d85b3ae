// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jeranaias/accessdash/internal/rbac"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

// TestConfig_ConcurrentAccess tests that Global() and SetGlobal() can be
// safely called concurrently.
// Run with: go test -race -v ./internal/config/
func TestConfig_ConcurrentAccess(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	ResetGlobalForTesting()
	defer ResetGlobalForTesting()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			c := Default()
			c.UI.Theme = "dark"
			SetGlobal(c)
		}()
		go func() {
			defer wg.Done()
			if cfg := Global(); cfg == nil {
				t.Error("Global() returned nil")
			}
		}()
	}
	wg.Wait()
}

func TestConfig_GlobalInitialization(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	ResetGlobalForTesting()
	defer ResetGlobalForTesting()

	cfg := Global()
	require.NotNil(t, cfg)
	require.Equal(t, "auto", cfg.UI.Theme)
	require.Same(t, cfg, Global(), "Global() should return the same instance")
}

func TestConfig_SetGlobalOverwrites(t *testing.T) {
	ResetGlobalForTesting()
	defer ResetGlobalForTesting()

	c := Default()
	c.UI.StartTab = "roles"
	SetGlobal(c)

	require.Equal(t, "roles", Global().UI.StartTab)
}

func TestChangedKeys(t *testing.T) {
	prev := Default()
	require.Empty(t, ChangedKeys(prev, Default()))

	next := Default()
	next.UI.Theme = "light"
	next.UI.Compact = !prev.UI.Compact
	next.Seed.Roles = next.Seed.Roles[:1]
	require.Equal(t, []string{"ui.theme", "ui.compact", "seed.roles"}, ChangedKeys(prev, next))
}

func TestConfig_Default(t *testing.T) {
	cfg := Default()

	require.Equal(t, "auto", cfg.UI.Theme)
	require.Equal(t, "users", cfg.UI.StartTab)
	require.True(t, cfg.UI.ShowHelp)
	require.False(t, cfg.UI.Compact)
	require.True(t, cfg.Log.Enabled)
	require.NoError(t, cfg.Validate())

	users, roles, err := cfg.Seed.Build()
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.Len(t, roles, 2)
	require.Equal(t, "John Doe", users[0].Name)
	require.Equal(t, "admin", users[0].Role)
	require.Equal(t, "Jane Smith", users[1].Name)
	require.Equal(t, rbac.StatusActive, users[1].Status)
	require.Equal(t, rbac.AllPermissions(), roles[0].Permissions.Slice())
	require.Equal(t, []rbac.Permission{rbac.PermUsersView, rbac.PermUsersEdit}, roles[1].Permissions.Slice())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"default is valid", func(*Config) {}, ""},
		{"light theme", func(c *Config) { c.UI.Theme = "light" }, ""},
		{"bad theme", func(c *Config) { c.UI.Theme = "neon" }, "ui.theme"},
		{"bad tab", func(c *Config) { c.UI.StartTab = "groups" }, "ui.start_tab"},
		{"bad status", func(c *Config) { c.Seed.Users[0].Status = "banned" }, "seed.users[0].status"},
		{"duplicate user id", func(c *Config) { c.Seed.Users[1].ID = 1 }, "seed.users[1].id"},
		{"negative role id", func(c *Config) { c.Seed.Roles[0].ID = -1 }, "seed.roles[0].id"},
		{"unknown permission", func(c *Config) {
			c.Seed.Roles[1].Permissions = append(c.Seed.Roles[1].Permissions, "users.fly")
		}, "seed.roles[1].permissions"},
		{"empty fields allowed", func(c *Config) { c.Seed.Users[0].Name = ""; c.Seed.Users[0].Role = "" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			var verrs ValidateErrors
			require.True(t, errors.As(err, &verrs))
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSeedConfig_BuildAssignsMissingIDs(t *testing.T) {
	seed := SeedConfig{
		Users: []UserSeed{
			{Name: "A"},
			{ID: 7, Name: "B"},
			{Name: "C", Status: "inactive"},
		},
		Roles: []RoleSeed{{Name: "viewer", Permissions: []string{"users.view"}}},
	}

	users, roles, err := seed.Build()
	require.NoError(t, err)
	require.Equal(t, []rbac.ID{8, 7, 9}, []rbac.ID{users[0].ID, users[1].ID, users[2].ID})
	require.Equal(t, rbac.StatusActive, users[0].Status)
	require.Equal(t, rbac.StatusInactive, users[2].Status)
	require.Equal(t, rbac.ID(1), roles[0].ID)
	require.True(t, roles[0].Grants(rbac.PermUsersView))
}

func TestLoadFromPath_TOML(t *testing.T) {
	path := writeFile(t, "config.toml", `
[ui]
theme = "dark"
start_tab = "roles"
show_help = false

[[seed.users]]
name = "Ada"
email = "ada@example.com"
role = "viewer"

[[seed.roles]]
id = 4
name = "viewer"
permissions = ["users.view"]
`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	require.Equal(t, "dark", cfg.UI.Theme)
	require.Equal(t, "roles", cfg.UI.StartTab)
	require.False(t, cfg.UI.ShowHelp)
	require.True(t, cfg.Log.Enabled, "absent keys keep their default")

	users, roles, err := cfg.Seed.Build()
	require.NoError(t, err)
	require.Len(t, users, 1, "file seeds replace the built-in ones")
	require.Equal(t, rbac.ID(1), users[0].ID)
	require.Len(t, roles, 1)
	require.Equal(t, rbac.ID(4), roles[0].ID)
}

func TestLoadFromPath_NoSeedSectionUsesDefaults(t *testing.T) {
	path := writeFile(t, "config.toml", "[ui]\ncompact = true\n")

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	require.True(t, cfg.UI.Compact)
	require.Equal(t, DefaultSeed(), cfg.Seed)
}

func TestLoadFromPath_JSON(t *testing.T) {
	path := writeFile(t, "config.json", `{"ui": {"theme": "light"}, "seed": {"roles": [{"name": "ops"}]}}`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	require.Equal(t, "light", cfg.UI.Theme)
	require.Equal(t, "users", cfg.UI.StartTab)
	require.Empty(t, cfg.Seed.Users)
	require.Len(t, cfg.Seed.Roles, 1)
}

func TestLoadFromPath_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
		require.Error(t, err)
	})
	t.Run("malformed", func(t *testing.T) {
		_, err := LoadFromPath(writeFile(t, "config.toml", "[ui\ntheme="))
		require.Error(t, err)
	})
	t.Run("invalid", func(t *testing.T) {
		_, err := LoadFromPath(writeFile(t, "config.toml", "[ui]\ntheme = \"neon\"\n"))
		require.ErrorContains(t, err, "ui.theme")
	})
}

func TestLoad_PrefersTOMLOverJSON(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".accessdash")
	require.NoError(t, os.MkdirAll(dir, 0700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{"ui":{"theme":"light"}}`), 0600))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "light", cfg.UI.Theme)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[ui]\ntheme = \"dark\"\n"), 0600))
	cfg, err = Load()
	require.NoError(t, err)
	require.Equal(t, "dark", cfg.UI.Theme)
	require.Equal(t, filepath.Join(dir, "config.toml"), Resolve())
}

func TestLoad_NoFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	require.Empty(t, Resolve())
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, DefaultSeed(), cfg.Seed)
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("ACCESSDASH_THEME", "light")
	t.Setenv("ACCESSDASH_START_TAB", "roles")
	t.Setenv("ACCESSDASH_COMPACT", "true")
	t.Setenv("ACCESSDASH_LOG_PATH", "/tmp/x.log")
	t.Setenv("ACCESSDASH_NO_LOG", "1")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	require.Equal(t, "light", cfg.UI.Theme)
	require.Equal(t, "roles", cfg.UI.StartTab)
	require.True(t, cfg.UI.Compact)
	require.False(t, cfg.Log.Enabled)

	path, err := cfg.LogPath()
	require.NoError(t, err)
	require.Equal(t, "/tmp/x.log", path)
}

func TestConfig_Get(t *testing.T) {
	cfg := Default()
	cfg.UI.StartTab = "roles"

	tests := []struct {
		key  string
		want interface{}
	}{
		{"version", "1.0.0"},
		{"ui.theme", "auto"},
		{"ui.start_tab", "roles"},
		{"UI.Show_Help", true},
		{"log.enabled", true},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := cfg.Get(tt.key)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	for _, key := range []string{"", "ui", "ui.colour", "seed.users", "version.major"} {
		t.Run("unknown "+key, func(t *testing.T) {
			_, err := cfg.Get(key)
			require.ErrorIs(t, err, ErrUnknownKey)
		})
	}
}

func TestSaveTOML_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := Default()
	cfg.UI.Theme = "dark"
	require.NoError(t, SaveTOML(cfg, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	if info.Mode().Perm() != 0600 {
		t.Errorf("config permissions = %v, want 0600", info.Mode().Perm())
	}

	loaded, err := LoadFromPath(path)
	require.NoError(t, err)
	require.Equal(t, "dark", loaded.UI.Theme)
	require.Equal(t, cfg.Seed, loaded.Seed)
}
