package auth

import (
	"strconv"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gymgrid/gymgrid-backend/pkg/enums"
)

// TokenPayload captures the data available when minting an access token.
type TokenPayload struct {
	Subject string
	Role    enums.Role
	UserID  int64
}

// Claims represents the typed JWT issued to clients. The numeric user id
// rides in the registered jti claim, serialized as a string.
type Claims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// UserID parses the numeric identity out of the jti claim. Password-reset
// tokens carry no id and return false.
func (c *Claims) UserID() (int64, bool) {
	if c == nil || c.ID == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(c.ID, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// HasRole compares the role claim ignoring case. Absent role never matches.
func (c *Claims) HasRole(role string) bool {
	if c == nil || c.Role == "" {
		return false
	}
	return enums.Role(c.Role).Equals(role)
}
