package identity

import (
	"strings"

	"github.com/gymgrid/gymgrid-backend/pkg/db/models"
	"github.com/gymgrid/gymgrid-backend/pkg/enums"
)

// UserPrincipal adapts a persisted user to the auth.Principal contract. The
// single role expands into an uppercased ROLE_ authority for clients that
// expect an authority list.
type UserPrincipal struct {
	id       int64
	username string
	role     enums.Role
	active   bool
}

// NewUserPrincipal builds a principal from the persisted user row.
func NewUserPrincipal(user *models.User) *UserPrincipal {
	if user == nil {
		return nil
	}
	return &UserPrincipal{
		id:       user.ID,
		username: user.Email,
		role:     user.Role,
		active:   user.IsActive,
	}
}

// ID returns the numeric user id.
func (p *UserPrincipal) ID() int64 {
	if p == nil {
		return 0
	}
	return p.id
}

// Username returns the login identifier (the email).
func (p *UserPrincipal) Username() string {
	if p == nil {
		return ""
	}
	return p.username
}

// Role returns the principal's single authorization class.
func (p *UserPrincipal) Role() enums.Role {
	if p == nil {
		return ""
	}
	return p.role
}

// IsActive reports whether the account is enabled.
func (p *UserPrincipal) IsActive() bool {
	if p == nil {
		return false
	}
	return p.active
}

// HasRole compares against the principal's role ignoring case.
func (p *UserPrincipal) HasRole(role string) bool {
	if p == nil {
		return false
	}
	return p.role.Equals(role)
}

// Authorities returns the ROLE_-prefixed authority list derived from the
// single role.
func (p *UserPrincipal) Authorities() []string {
	if p == nil || p.role == "" {
		return nil
	}
	return []string{"ROLE_" + strings.ToUpper(string(p.role))}
}
