// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Error types and exit codes for the CLI commands.
//
// Handlers always return errors and let main decide how to show them.

package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/jeranaias/accessdash/internal/config"
)

// =============================================================================
// EXIT CODES
// =============================================================================

const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0
	// ExitGeneralError indicates a general/unknown error
	ExitGeneralError = 1
	// ExitUsageError indicates invalid command usage or arguments
	ExitUsageError = 2
	// ExitConfigError indicates configuration file or settings error
	ExitConfigError = 3
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// CommandError represents a CLI command error with context.
type CommandError struct {
	Command string
	Action  string
	Reason  string
	Err     error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%s %s failed: %s", e.Command, e.Action, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// UsageError reports a bad command line.
type UsageError struct {
	Message string
	Hint    string
}

func (e *UsageError) Error() string {
	if e.Hint != "" {
		return e.Message + " (" + e.Hint + ")"
	}
	return e.Message
}

// NewCommandError creates a new command error.
func NewCommandError(command, action, reason string, err error) error {
	return &CommandError{Command: command, Action: action, Reason: reason, Err: err}
}

// NewUsageError creates a new usage error.
func NewUsageError(message, hint string) error {
	return &UsageError{Message: message, Hint: hint}
}

// =============================================================================
// ERROR DISPLAY
// =============================================================================

// DisplayError writes err in a consistent format. In JSON mode the error
// uses the same envelope as successful output, with details under data.
func DisplayError(w io.Writer, command string, err error, jsonMode bool) {
	if err == nil {
		return
	}

	if jsonMode {
		displayErrorJSON(w, command, err)
		return
	}

	fmt.Fprintf(w, "%s %s\n", render(ErrorStyle, "[ERROR]"), err.Error())
}

func displayErrorJSON(w io.Writer, command string, err error) {
	output := map[string]interface{}{}

	var cmdErr *CommandError
	var usageErr *UsageError
	var cfgErrs config.ValidateErrors
	switch {
	case errors.As(err, &usageErr):
		output["error_type"] = "usage_error"
		if usageErr.Hint != "" {
			output["hint"] = usageErr.Hint
		}
	case errors.As(err, &cfgErrs):
		output["error_type"] = "config_error"
		fields := make([]string, len(cfgErrs))
		for i, e := range cfgErrs {
			fields[i] = e.Field
		}
		output["fields"] = fields
	case errors.As(err, &cmdErr):
		output["error_type"] = "command_error"
		output["action"] = cmdErr.Action
		output["reason"] = cmdErr.Reason
	default:
		output["error_type"] = "generic_error"
	}

	resp := NewJSONErrorResponse(command, err)
	resp.Data = output
	_ = resp.Print(w)
}

// GetExitCode determines the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return ExitUsageError
	}

	var cfgErrs config.ValidateErrors
	var cfgErr config.ValidationError
	if errors.As(err, &cfgErrs) || errors.As(err, &cfgErr) || errors.Is(err, config.ErrUnknownKey) {
		return ExitConfigError
	}

	return ExitGeneralError
}
