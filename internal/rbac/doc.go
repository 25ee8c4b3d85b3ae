// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package rbac defines the users, roles and permissions managed by accessdash.
//
// # Permissions
//
// The permission catalogue is fixed. Roles hold a subset of it:
//
//   - users.view:   list users
//   - users.create: add users
//   - users.edit:   modify users
//   - users.delete: remove users
//   - roles.manage: create, edit and delete roles
//
// There is no dependency between permissions; granting users.edit does not
// imply users.view.
//
// # References
//
// A User names its role by value (User.Role == Role.Name), not by id. Nothing
// keeps the two in sync: renaming or deleting a role leaves users pointing at
// a name that no longer exists. UnassignedUsers reports those users.
//
// Usage:
//
//	ids := rbac.NewIDAllocator(rbac.UserIDs(users)...)
//	id, ids := ids.Next()
//	u := rbac.User{ID: id, Name: "Ada", Role: "admin", Status: rbac.StatusActive}
//
//	admin := rbac.Role{ID: 1, Name: "admin", Permissions: rbac.NewPermissionSet(rbac.AllPermissions()...)}
//	if admin.Grants(rbac.PermUsersDelete) {
//	    // ...
//	}
package rbac
