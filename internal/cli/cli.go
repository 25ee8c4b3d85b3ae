// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command dispatch for accessdash.
package cli

import (
	"fmt"
	"io"
	"runtime"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdDump
	CmdConfig
	CmdVersion
	CmdHelp
	CmdUnknown
)

// String returns the command name as typed on the command line.
func (c Command) String() string {
	switch c {
	case CmdTUI:
		return "tui"
	case CmdDump:
		return "dump"
	case CmdConfig:
		return "config"
	case CmdVersion:
		return "version"
	case CmdHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	ConfigPath string // --config <path>
	NoLog      bool   // --no-log
	JSON       bool   // --json

	// Format is the dump output format, "table" or "json".
	Format string

	// Command-specific
	Subcommand string
	ConfigKey  string
	Force      bool

	// Name is the unrecognised command word for CmdUnknown.
	Name string
}

const usageText = `accessdash - terminal dashboard for users, roles and permissions

Usage:
  accessdash                     Start the dashboard (default)
  accessdash tui                 Start the dashboard
  accessdash dump [--json]       Print the seeded users and roles
    --format table|json          Output format (default table)
  accessdash config path         Show which config file is used
  accessdash config show [key]   Show the effective configuration or one key
  accessdash config init         Write a default config file
    --force                      Overwrite an existing file
  accessdash version [--json]    Show version information
  accessdash help                Show this help

Global flags:
  --config <path>                Use this config file (.toml or .json)
  --no-log                       Disable the log file

Dashboard keys:
  tab / 1 / 2   switch between Users and Roles
  n  add        e  edit        d  delete
  y  copy email /  search      ?  help       q  quit

Environment:
  ACCESSDASH_THEME        auto, dark or light
  ACCESSDASH_START_TAB    users or roles
  ACCESSDASH_COMPACT      1 to remove blank lines between rows
  ACCESSDASH_LOG_PATH     log file location
  ACCESSDASH_NO_LOG       1 to disable logging

Version: %s
`

// PrintUsage prints the usage/help text.
func PrintUsage(w io.Writer) {
	fmt.Fprintf(w, usageText, Version)
}

// PrintVersion prints version information.
func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, "accessdash version %s\n", Version)
	fmt.Fprintf(w, "  Git commit: %s\n", GitCommit)
	fmt.Fprintf(w, "  Build date: %s\n", BuildDate)
	fmt.Fprintf(w, "  Go version: %s\n", runtime.Version())
}

// Parse parses command-line arguments (without the program name) and
// returns the command and args.
func Parse(argv []string) (Command, Args) {
	remaining, parsedArgs := parseGlobalFlags(argv)

	// If no remaining args, default to TUI
	if len(remaining) == 0 {
		return CmdTUI, parsedArgs
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]

	switch cmd {
	case "tui":
		return CmdTUI, parsedArgs

	case "dump", "list", "ls":
		p := NewArgParser(remaining)
		parsedArgs.Format = strings.ToLower(p.FlagOrDefault("format", "table"))
		parsedArgs.JSON = parsedArgs.JSON || p.BoolFlag("json") || parsedArgs.Format == "json"
		return CmdDump, parsedArgs

	case "config", "cfg":
		parseConfigArgs(&parsedArgs, remaining)
		return CmdConfig, parsedArgs

	case "version", "--version", "-v":
		return CmdVersion, parsedArgs

	case "help", "--help", "-h":
		return CmdHelp, parsedArgs

	default:
		parsedArgs.Name = cmd
		return CmdUnknown, parsedArgs
	}
}

// parseGlobalFlags extracts global flags from args and returns remaining args.
func parseGlobalFlags(args []string) ([]string, Args) {
	var remaining []string
	var parsedArgs Args

	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch {
		case arg == "--no-log":
			parsedArgs.NoLog = true
		case arg == "--json":
			parsedArgs.JSON = true
		case arg == "--config":
			if i+1 < len(args) {
				i++
				parsedArgs.ConfigPath = args[i]
			}
		case strings.HasPrefix(arg, "--config="):
			parsedArgs.ConfigPath = strings.TrimPrefix(arg, "--config=")
		default:
			remaining = append(remaining, arg)
		}
	}

	return remaining, parsedArgs
}

// parseConfigArgs parses config command specific arguments.
func parseConfigArgs(args *Args, remaining []string) {
	p := NewArgParser(remaining)
	args.Subcommand = strings.ToLower(p.Subcommand())
	args.ConfigKey = p.Positional(1)
	args.Force = p.BoolFlag("force")
	args.JSON = args.JSON || p.BoolFlag("json")
}

// =============================================================================
// COMMAND HANDLERS
// =============================================================================

// VersionData is the JSON payload of the version command.
type VersionData struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
}

// HandleVersion handles the "version" command.
func HandleVersion(w io.Writer, args Args) error {
	if args.JSON {
		return NewJSONResponse("version", VersionData{
			Version:   Version,
			GitCommit: GitCommit,
			BuildDate: BuildDate,
			GoVersion: runtime.Version(),
		}).Print(w)
	}
	PrintVersion(w)
	return nil
}

// HandleHelp handles the "help" command.
func HandleHelp(w io.Writer) {
	PrintUsage(w)
}
