// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package dashboard implements the access management view: a Users tab and a
// Roles tab, each a table with add, edit and delete, plus the editor and
// delete confirmation dialogs.
//
// The Model owns widget state only (cursors, text inputs, focus). Records and
// dialog state live in a *store.Store and change only through dispatched
// store actions, so the dialogs shown always match store.State.
//
// Usage:
//
//	st := store.NewStore(store.New(users, roles, store.TabUsers), nil)
//	m := dashboard.New(st, dashboard.Options{ShowHelp: true})
//	p := tea.NewProgram(m, tea.WithAltScreen())
package dashboard
