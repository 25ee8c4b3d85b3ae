// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package rbac

// IDAllocator hands out increasing ids. An id is never handed out twice, even
// after the record holding it is deleted.
type IDAllocator struct {
	next ID
}

// NewIDAllocator starts after the largest id in existing.
func NewIDAllocator(existing ...ID) IDAllocator {
	a := IDAllocator{next: 1}
	for _, id := range existing {
		if id >= a.next {
			a.next = id + 1
		}
	}
	return a
}

// Next returns a fresh id and the allocator that follows it.
func (a IDAllocator) Next() (ID, IDAllocator) {
	id := a.next
	a.next++
	return id, a
}

// Peek returns the id Next would hand out.
func (a IDAllocator) Peek() ID {
	return a.next
}

// UserIDs collects the ids of users.
func UserIDs(users []User) []ID {
	ids := make([]ID, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}
	return ids
}

// RoleIDs collects the ids of roles.
func RoleIDs(roles []Role) []ID {
	ids := make([]ID, len(roles))
	for i, r := range roles {
		ids[i] = r.ID
	}
	return ids
}
