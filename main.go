// accessdash - a terminal dashboard for users, roles and permissions.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/jeranaias/accessdash/internal/cli"
	"github.com/jeranaias/accessdash/internal/config"
	"github.com/jeranaias/accessdash/internal/store"
	"github.com/jeranaias/accessdash/internal/ui/dashboard"
	"github.com/jeranaias/accessdash/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse(os.Args[1:])

	if err := run(cmd, args); err != nil {
		out := os.Stderr
		if args.JSON {
			out = os.Stdout
		}
		cli.DisplayError(out, cmd.String(), err, args.JSON)
		os.Exit(cli.GetExitCode(err))
	}
}

// run routes a parsed command to its handler.
func run(cmd cli.Command, args cli.Args) error {
	switch cmd {
	case cli.CmdVersion:
		return cli.HandleVersion(os.Stdout, args)
	case cli.CmdHelp:
		cli.HandleHelp(os.Stdout)
		return nil
	case cli.CmdUnknown:
		return cli.NewUsageError("unknown command: "+args.Name, "run 'accessdash help'")
	}

	cfg, path, err := loadConfig(args)
	if err != nil {
		// config path and init must work even when the current file is broken
		if cmd != cli.CmdConfig || (args.Subcommand != "path" && args.Subcommand != "init") {
			return err
		}
		cfg = config.Default()
	}
	config.SetGlobal(cfg)

	switch cmd {
	case cli.CmdDump:
		return cli.HandleDump(os.Stdout, cfg, args)
	case cli.CmdConfig:
		return cli.HandleConfig(os.Stdout, args, cfg, path)
	default:
		return runTUI(cfg, path, args)
	}
}

// loadConfig loads the --config file, or the default one. The returned
// path is "" when built-in defaults are in use.
func loadConfig(args cli.Args) (*config.Config, string, error) {
	if args.ConfigPath != "" {
		cfg, err := config.LoadFromPath(args.ConfigPath)
		return cfg, args.ConfigPath, err
	}
	path := config.Resolve()
	cfg, err := config.Load()
	return cfg, path, err
}

// =============================================================================
// TUI
// =============================================================================

// runTUI starts the dashboard and blocks until it exits.
func runTUI(cfg *config.Config, path string, args cli.Args) error {
	closeLog, err := setupLogging(cfg, args.NoLog)
	if err != nil {
		return err
	}
	defer closeLog()

	users, roles, err := cfg.Seed.Build()
	if err != nil {
		return fmt.Errorf("invalid seed data: %w", err)
	}
	tab, _ := store.ParseTab(cfg.UI.StartTab)

	st := store.NewStore(store.New(users, roles, tab), log.Default())

	theme := styles.NewThemeFor(cfg.UI.Theme)
	theme.Compact = cfg.UI.Compact

	m := dashboard.New(st, dashboard.Options{
		Theme:    theme,
		ShowHelp: cfg.UI.ShowHelp,
		Logger:   log.Default(),
	})

	p := tea.NewProgram(m, tea.WithAltScreen())

	if path != "" {
		stop := watchConfig(p, path)
		defer stop()
	}

	log.Printf("SESSION_START | users=%d roles=%d config=%q tab=%s", len(users), len(roles), path, tab)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running accessdash: %w", err)
	}
	log.Printf("SESSION_END")
	return nil
}

// setupLogging sends the std logger to the configured file, tagged with a
// per-run session id. With logging disabled output is discarded.
func setupLogging(cfg *config.Config, disabled bool) (func(), error) {
	if disabled || !cfg.Log.Enabled {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	path, err := cfg.LogPath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve log path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	session := uuid.NewString()[:8]
	f, err := tea.LogToFile(path, "accessdash["+session+"] ")
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return func() { _ = f.Close() }, nil
}

// watchConfig reloads the config file on change and forwards the result to
// the program. The returned func stops watching.
func watchConfig(p *tea.Program, path string) func() {
	w, err := config.NewWatcher(path, config.DefaultDebounce, func(cfg *config.Config, err error) {
		if err == nil {
			logReload(config.Global(), cfg)
			config.SetGlobal(cfg)
		}
		p.Send(dashboard.ConfigReloadedMsg{Config: cfg, Err: err})
	})
	if err != nil {
		log.Printf("CONFIG_WATCH_FAILED | path=%s error=%v", path, err)
		return func() {}
	}
	if err := w.Watch(); err != nil {
		log.Printf("CONFIG_WATCH_FAILED | path=%s error=%v", path, err)
		_ = w.Close()
		return func() {}
	}
	return func() { _ = w.Close() }
}

// logReload records which keys a reload changed. Only ui.compact and
// ui.show_help take effect without a restart.
func logReload(prev, next *config.Config) {
	changed := config.ChangedKeys(prev, next)
	if len(changed) == 0 {
		log.Printf("CONFIG_CHANGED | keys=none")
		return
	}
	var restart []string
	for _, k := range changed {
		if k != "ui.compact" && k != "ui.show_help" {
			restart = append(restart, k)
		}
	}
	log.Printf("CONFIG_CHANGED | keys=%s needs_restart=%s",
		strings.Join(changed, ","), strings.Join(restart, ","))
}
