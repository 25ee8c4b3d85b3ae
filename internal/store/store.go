// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"log"
)

// Store owns the current State for the UI loop. It is not safe for
// concurrent use; bubbletea calls Update from a single goroutine.
type Store struct {
	state  State
	logger *log.Logger
}

// NewStore wraps initial. A nil logger logs through the standard logger.
func NewStore(initial State, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	return &Store{state: initial, logger: logger}
}

// State returns the current state.
func (st *Store) State() State {
	return st.state
}

// Dispatch applies a to the current state.
func (st *Store) Dispatch(a Action) {
	next, line := reduce(st.state, a)
	if line != "" {
		st.logger.Print(line)
	}
	st.state = next
}
