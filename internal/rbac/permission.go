// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package rbac

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownPermission is returned when a string is not in the permission catalogue.
var ErrUnknownPermission = errors.New("unknown permission")

// =============================================================================
// PERMISSION CATALOGUE
// =============================================================================

// Permission is an atomic capability string checked against a role.
type Permission string

const (
	PermUsersView   Permission = "users.view"
	PermUsersCreate Permission = "users.create"
	PermUsersEdit   Permission = "users.edit"
	PermUsersDelete Permission = "users.delete"
	PermRolesManage Permission = "roles.manage"
)

// catalogue is the display order used by editors and tables.
var catalogue = []Permission{
	PermUsersView,
	PermUsersCreate,
	PermUsersEdit,
	PermUsersDelete,
	PermRolesManage,
}

// AllPermissions returns the permission catalogue in display order.
func AllPermissions() []Permission {
	out := make([]Permission, len(catalogue))
	copy(out, catalogue)
	return out
}

// ParsePermission validates s against the catalogue.
func ParsePermission(s string) (Permission, error) {
	p := Permission(strings.TrimSpace(s))
	if p.Valid() {
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPermission, s)
}

// Valid reports whether p is in the catalogue.
func (p Permission) Valid() bool {
	return p.index() >= 0
}

func (p Permission) index() int {
	for i, c := range catalogue {
		if c == p {
			return i
		}
	}
	return -1
}

func (p Permission) String() string {
	return string(p)
}

// =============================================================================
// PERMISSION SET
// =============================================================================

// PermissionSet is a duplicate-free set of permissions. Values are treated as
// immutable: Toggle and Clone return new sets.
type PermissionSet struct {
	perms map[Permission]struct{}
}

// NewPermissionSet builds a set from perms, dropping duplicates.
func NewPermissionSet(perms ...Permission) PermissionSet {
	s := PermissionSet{perms: make(map[Permission]struct{}, len(perms))}
	for _, p := range perms {
		s.perms[p] = struct{}{}
	}
	return s
}

// ParsePermissionSet parses a list of permission strings.
func ParsePermissionSet(values []string) (PermissionSet, error) {
	perms := make([]Permission, 0, len(values))
	for _, v := range values {
		p, err := ParsePermission(v)
		if err != nil {
			return PermissionSet{}, err
		}
		perms = append(perms, p)
	}
	return NewPermissionSet(perms...), nil
}

// Has reports whether p is in the set.
func (s PermissionSet) Has(p Permission) bool {
	_, ok := s.perms[p]
	return ok
}

// Len returns the number of permissions in the set.
func (s PermissionSet) Len() int {
	return len(s.perms)
}

// Toggle returns a copy of s with p added if absent or removed if present.
// Other permissions are untouched.
func (s PermissionSet) Toggle(p Permission) PermissionSet {
	out := s.Clone()
	if out.Has(p) {
		delete(out.perms, p)
	} else {
		out.perms[p] = struct{}{}
	}
	return out
}

// Clone returns an independent copy of s.
func (s PermissionSet) Clone() PermissionSet {
	out := PermissionSet{perms: make(map[Permission]struct{}, len(s.perms))}
	for p := range s.perms {
		out.perms[p] = struct{}{}
	}
	return out
}

// Slice returns the permissions in catalogue order. Permissions outside the
// catalogue sort last, alphabetically.
func (s PermissionSet) Slice() []Permission {
	out := make([]Permission, 0, len(s.perms))
	for _, p := range catalogue {
		if s.Has(p) {
			out = append(out, p)
		}
	}
	var extra []Permission
	for p := range s.perms {
		if !p.Valid() {
			extra = append(extra, p)
		}
	}
	slices.Sort(extra)
	return append(out, extra...)
}

// Strings returns Slice as plain strings, for encoding.
func (s PermissionSet) Strings() []string {
	perms := s.Slice()
	out := make([]string, len(perms))
	for i, p := range perms {
		out[i] = string(p)
	}
	return out
}

// Equal reports whether both sets hold the same permissions.
func (s PermissionSet) Equal(other PermissionSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	for p := range s.perms {
		if !other.Has(p) {
			return false
		}
	}
	return true
}
