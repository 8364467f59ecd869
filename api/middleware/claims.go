package middleware

import (
	"context"

	"github.com/gymgrid/gymgrid-backend/pkg/enums"
)

// Claim accessors for handlers. Every predicate answers false on anonymous
// requests instead of failing, so handlers can branch on identity without
// guarding against missing context.

// CurrentUsername returns the authenticated subject, or "" when anonymous.
func CurrentUsername(ctx context.Context) string {
	claims := ClaimsFromContext(ctx)
	if claims == nil {
		return ""
	}
	return claims.Subject
}

// CurrentUserID returns the numeric user id from the token, or false when
// the request is anonymous or the token carries no id.
func CurrentUserID(ctx context.Context) (int64, bool) {
	claims := ClaimsFromContext(ctx)
	if claims == nil {
		return 0, false
	}
	return claims.UserID()
}

// HasRole reports whether the current token carries the role,
// case-insensitively.
func HasRole(ctx context.Context, role string) bool {
	claims := ClaimsFromContext(ctx)
	if claims == nil {
		return false
	}
	return claims.HasRole(role)
}

func IsAdmin(ctx context.Context) bool   { return HasRole(ctx, string(enums.RoleAdmin)) }
func IsUser(ctx context.Context) bool    { return HasRole(ctx, string(enums.RoleUser)) }
func IsClient(ctx context.Context) bool  { return HasRole(ctx, string(enums.RoleClient)) }
func IsTrainer(ctx context.Context) bool { return HasRole(ctx, string(enums.RoleTrainer)) }
func IsCenter(ctx context.Context) bool  { return HasRole(ctx, string(enums.RoleCenter)) }
func IsStore(ctx context.Context) bool   { return HasRole(ctx, string(enums.RoleStore)) }
func IsDriver(ctx context.Context) bool  { return HasRole(ctx, string(enums.RoleDriver)) }
func IsPartner(ctx context.Context) bool { return HasRole(ctx, string(enums.RolePartner)) }
