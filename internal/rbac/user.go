// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package rbac

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrUnknownStatus is returned when a string is neither "active" nor "inactive".
var ErrUnknownStatus = errors.New("unknown status")

// ID identifies a user or a role within its own collection.
type ID int

// Status is the account state of a user.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

var titleCaser = cases.Title(language.English)

// ParseStatus parses s case-insensitively. An empty string yields StatusActive,
// the default for new users.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(StatusActive):
		return StatusActive, nil
	case string(StatusInactive):
		return StatusInactive, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

func (s Status) String() string {
	return string(s)
}

// Label returns the status in title case for display ("Active").
func (s Status) Label() string {
	return titleCaser.String(string(s))
}

// Toggle flips between active and inactive.
func (s Status) Toggle() Status {
	if s == StatusActive {
		return StatusInactive
	}
	return StatusActive
}

// User is a managed account. Role holds a Role.Name, matched by value.
type User struct {
	ID     ID     `toml:"id" json:"id"`
	Name   string `toml:"name" json:"name"`
	Email  string `toml:"email" json:"email"`
	Role   string `toml:"role" json:"role"`
	Status Status `toml:"status" json:"status"`
}

// UnassignedUsers returns the users whose Role does not name any role in
// roles. Users with an empty Role are included.
func UnassignedUsers(users []User, roles []Role) []User {
	names := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		names[r.Name] = struct{}{}
	}
	var out []User
	for _, u := range users {
		if _, ok := names[u.Role]; !ok {
			out = append(out, u)
		}
	}
	return out
}
