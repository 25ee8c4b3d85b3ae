// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package rbac

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// =============================================================================
// PERMISSION TESTS
// =============================================================================

func TestAllPermissions_Order(t *testing.T) {
	want := []Permission{PermUsersView, PermUsersCreate, PermUsersEdit, PermUsersDelete, PermRolesManage}
	require.Equal(t, want, AllPermissions())

	// Callers must not be able to reorder the catalogue.
	perms := AllPermissions()
	perms[0] = "mutated"
	require.Equal(t, PermUsersView, AllPermissions()[0])
}

func TestParsePermission(t *testing.T) {
	tests := []struct {
		in      string
		want    Permission
		wantErr bool
	}{
		{"users.view", PermUsersView, false},
		{" roles.manage ", PermRolesManage, false},
		{"roles.delete", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePermission(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownPermission) {
					t.Errorf("expected ErrUnknownPermission, got %v", err)
				}
				return
			}
			require.NoError(t, err)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPermissionSet_ToggleAddsAndRemoves(t *testing.T) {
	base := NewPermissionSet(PermUsersView, PermUsersEdit)

	added := base.Toggle(PermUsersDelete)
	require.True(t, added.Has(PermUsersDelete))
	require.True(t, added.Has(PermUsersView))
	require.True(t, added.Has(PermUsersEdit))
	require.Equal(t, 3, added.Len())

	removed := added.Toggle(PermUsersView)
	require.False(t, removed.Has(PermUsersView))
	require.True(t, removed.Has(PermUsersEdit))
	require.True(t, removed.Has(PermUsersDelete))

	// Toggle never modifies its receiver.
	require.Equal(t, []Permission{PermUsersView, PermUsersEdit}, base.Slice())
}

func TestPermissionSet_ToggleNoImplication(t *testing.T) {
	s := NewPermissionSet().Toggle(PermUsersEdit)
	if s.Has(PermUsersView) {
		t.Error("granting users.edit must not imply users.view")
	}
}

func TestPermissionSet_ZeroValue(t *testing.T) {
	var s PermissionSet
	require.Equal(t, 0, s.Len())
	require.False(t, s.Has(PermUsersView))
	require.Empty(t, s.Slice())
	require.True(t, s.Toggle(PermUsersView).Has(PermUsersView))
}

func TestPermissionSet_SliceCatalogueOrder(t *testing.T) {
	s := NewPermissionSet(PermRolesManage, "zeta.custom", PermUsersView, "alpha.custom", PermUsersView)
	require.Equal(t, []Permission{PermUsersView, PermRolesManage, "alpha.custom", "zeta.custom"}, s.Slice())
	require.Equal(t, []string{"users.view", "roles.manage", "alpha.custom", "zeta.custom"}, s.Strings())
}

func TestParsePermissionSet(t *testing.T) {
	s, err := ParsePermissionSet([]string{"users.view", "users.view", "roles.manage"})
	require.NoError(t, err)
	require.True(t, s.Equal(NewPermissionSet(PermUsersView, PermRolesManage)))

	_, err = ParsePermissionSet([]string{"users.view", "nope"})
	require.ErrorIs(t, err, ErrUnknownPermission)
}

// =============================================================================
// STATUS TESTS
// =============================================================================

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    Status
		wantErr bool
	}{
		{"", StatusActive, false},
		{"active", StatusActive, false},
		{"Inactive", StatusInactive, false},
		{"banned", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStatus(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownStatus)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestStatus_LabelAndToggle(t *testing.T) {
	require.Equal(t, "Active", StatusActive.Label())
	require.Equal(t, "Inactive", StatusInactive.Label())
	require.Equal(t, StatusInactive, StatusActive.Toggle())
	require.Equal(t, StatusActive, StatusInactive.Toggle())
}

// =============================================================================
// ROLE / USER RELATIONSHIP TESTS
// =============================================================================

func TestUnassignedUsers(t *testing.T) {
	roles := []Role{{ID: 1, Name: "admin"}, {ID: 2, Name: "editor"}}
	users := []User{
		{ID: 1, Name: "John", Role: "admin"},
		{ID: 2, Name: "Jane", Role: "viewer"},
		{ID: 3, Name: "Nobody", Role: ""},
	}

	got := UnassignedUsers(users, roles)
	require.Len(t, got, 2)
	require.Equal(t, ID(2), got[0].ID)
	require.Equal(t, ID(3), got[1].ID)

	require.Len(t, UnassignedUsers(users[:1], roles), 0)
}

func TestCountMembersAndGrants(t *testing.T) {
	admin := Role{ID: 1, Name: "admin", Permissions: NewPermissionSet(AllPermissions()...)}
	users := []User{{Role: "admin"}, {Role: "editor"}, {Role: "admin"}}

	require.Equal(t, 2, CountMembers(admin, users))
	require.True(t, admin.Grants(PermRolesManage))
	require.Equal(t, []string{"admin"}, RoleNames([]Role{admin}))
}

func TestRole_CloneIsIndependent(t *testing.T) {
	r := Role{ID: 1, Name: "editor", Permissions: NewPermissionSet(PermUsersView)}
	c := r.Clone()
	c.Permissions = c.Permissions.Toggle(PermUsersEdit)
	c.Name = "changed"

	require.Equal(t, "editor", r.Name)
	require.False(t, r.Grants(PermUsersEdit))
}

// =============================================================================
// ID ALLOCATION TESTS
// =============================================================================

func TestIDAllocator(t *testing.T) {
	a := NewIDAllocator()
	id, a := a.Next()
	require.Equal(t, ID(1), id)
	id, a = a.Next()
	require.Equal(t, ID(2), id)
	require.Equal(t, ID(3), a.Peek())
}

func TestIDAllocator_StartsAfterMax(t *testing.T) {
	a := NewIDAllocator(4, 1, 9, 2)
	require.Equal(t, ID(10), a.Peek())
}

func TestIDAllocator_ValueSemantics(t *testing.T) {
	a := NewIDAllocator(1)
	first, _ := a.Next()
	again, _ := a.Next()
	// a itself never advanced, so the same id comes back from it.
	require.Equal(t, first, again)
}
