package enums

import (
	"fmt"
	"strings"
)

// Role is the single authorization class carried by an access token.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleUser    Role = "user"
	RoleClient  Role = "client"
	RoleTrainer Role = "trainer"
	RoleCenter  Role = "center"
	RoleStore   Role = "store"
	RoleDriver  Role = "driver"
	RolePartner Role = "partner"
)

var validRoles = []Role{
	RoleAdmin,
	RoleUser,
	RoleClient,
	RoleTrainer,
	RoleCenter,
	RoleStore,
	RoleDriver,
	RolePartner,
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// IsValid reports whether the value is a known Role.
func (r Role) IsValid() bool {
	for _, candidate := range validRoles {
		if candidate == r {
			return true
		}
	}
	return false
}

// Equals compares two role names ignoring case.
func (r Role) Equals(other string) bool {
	return strings.EqualFold(string(r), other)
}

// ParseRole converts raw input into a Role, case-insensitively.
func ParseRole(value string) (Role, error) {
	for _, candidate := range validRoles {
		if strings.EqualFold(string(candidate), value) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid role %q", value)
}
