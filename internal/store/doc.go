// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package store holds the dashboard's application state and the reducer that
changes it.

State is a plain value: the user and role collections, the selected tab, and
one dialog state per modal. Every change goes through Reduce, which returns a
new State and never modifies the one it was given. Store wraps a State for the
UI loop and logs each change.

# Dialog states

Editor dialogs are Closed, Creating or Editing(id). The delete confirmation is
Closed or Confirming(target). A closed dialog cannot carry a target.

# Upsert

SaveUser and SaveRole create or update depending on the editor state: in
Editing mode the form is merged into the target (its id is kept), otherwise a
new record is appended with an id that has never been used before.

# Deletion

ConfirmDelete removes exactly the record named by the pending target. Removing
a role does not touch users that name it; see rbac.UnassignedUsers.

Usage:

	st := store.NewStore(store.New(users, roles, store.TabUsers), nil)
	st.Dispatch(store.OpenUserEditor{})
	form := st.State().UserForm()
	form.Name = "Ada"
	st.Dispatch(store.SaveUser{Form: form})
*/
package store
