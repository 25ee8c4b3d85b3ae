// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command-line parsing and the non-interactive
// commands for accessdash.
//
// # Key Types
//
//   - Command: the command to run (tui, dump, config, version, help)
//   - Args: parsed global and command-specific flags
//   - ArgParser: flag/positional splitting for subcommands
//   - JSONResponse: the envelope written by every --json command
//
// # Usage
//
//	cmd, args := cli.Parse(os.Args[1:])
//	switch cmd {
//	case cli.CmdDump:
//	    err = cli.HandleDump(os.Stdout, cfg, args)
//	case cli.CmdConfig:
//	    err = cli.HandleConfig(os.Stdout, args, cfg, path)
//	}
//
// Handlers write to the io.Writer they are given and return errors;
// GetExitCode maps an error to the process exit status.
package cli
