// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for accessdash.
//
// Supports both TOML and JSON configuration formats, with defaults,
// environment variable overrides, validation, and change notification.
//
// # Key Types
//
//   - Config: Main configuration structure
//   - UIConfig: Theme, layout and start tab
//   - LogConfig: Where the TUI writes its log
//   - SeedConfig: Users and roles the dashboard starts with
//   - Watcher: Reloads the config file when it changes on disk
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (ACCESSDASH_*)
//   - --config <path>, or ~/.accessdash/config.toml, or ~/.accessdash/config.json
//   - Built-in defaults
//
// # Seeds
//
// Seed users and roles are only read at start-up. The dashboard keeps every
// change in memory and never writes it back; a reload from Watcher only
// affects [ui] settings.
//
// Usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	users, roles, err := cfg.Seed.Build()
package config
