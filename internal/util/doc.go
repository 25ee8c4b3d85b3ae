// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared by the accessdash packages.
//
// # Key Functions
//
// String Utilities:
//   - TruncateWidth: Display-width truncation with an ellipsis
//   - PadWidth: Right-pads to a display width
//   - StringWidth: Terminal columns a string occupies
//   - FitWidth: Truncates or pads to exactly a display width
//
// # Usage
//
//	// Fit a table cell that may hold wide characters
//	cell := util.PadWidth(util.TruncateWidth(name, 20), 20)
package util
