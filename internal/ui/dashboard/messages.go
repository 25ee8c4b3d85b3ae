// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package dashboard

import "github.com/jeranaias/accessdash/internal/config"

// ConfigReloadedMsg is sent by the config watcher after the file changed.
// Err is set when the new file could not be loaded; Config is then nil.
type ConfigReloadedMsg struct {
	Config *config.Config
	Err    error
}

// ClipboardFunc writes text to the system clipboard.
type ClipboardFunc func(text string) error
