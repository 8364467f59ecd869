package middleware

import (
	"context"

	pkgauth "github.com/gymgrid/gymgrid-backend/pkg/auth"
)

type contextKey string

const (
	ctxClaims    contextKey = "auth_claims"
	ctxPrincipal contextKey = "auth_principal"
)

// WithClaims injects parsed token claims into the context.
func WithClaims(ctx context.Context, claims *pkgauth.Claims) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxClaims, claims)
}

// WithPrincipal injects the resolved principal into the context.
func WithPrincipal(ctx context.Context, principal pkgauth.Principal) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxPrincipal, principal)
}

// ClaimsFromContext returns the parsed claims, or nil on anonymous requests.
func ClaimsFromContext(ctx context.Context) *pkgauth.Claims {
	if ctx == nil {
		return nil
	}
	if claims, ok := ctx.Value(ctxClaims).(*pkgauth.Claims); ok {
		return claims
	}
	return nil
}

// PrincipalFromContext returns the authenticated principal, or nil on
// anonymous requests.
func PrincipalFromContext(ctx context.Context) pkgauth.Principal {
	if ctx == nil {
		return nil
	}
	if principal, ok := ctx.Value(ctxPrincipal).(pkgauth.Principal); ok {
		return principal
	}
	return nil
}
