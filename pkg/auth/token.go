package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gymgrid/gymgrid-backend/pkg/config"
)

var jwtSigningMethod = jwt.SigningMethodHS256

// Mint issues a signed access token for the provided payload using the
// configured TTL (24h by default).
func Mint(cfg config.JWTConfig, now time.Time, payload TokenPayload) (string, error) {
	if cfg.Secret == "" {
		return "", fmt.Errorf("jwt secret is required")
	}
	if payload.Subject == "" {
		return "", fmt.Errorf("token subject is required")
	}
	if !payload.Role.IsValid() {
		return "", fmt.Errorf("invalid role %q", payload.Role)
	}
	if payload.UserID <= 0 {
		return "", fmt.Errorf("user id must be positive")
	}

	claims := Claims{
		Role: string(payload.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			Subject:   payload.Subject,
			ID:        strconv.FormatInt(payload.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.AccessTokenTTL())),
		},
	}

	token := jwt.NewWithClaims(jwtSigningMethod, claims)
	signed, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("signing jwt: %w", err)
	}
	return signed, nil
}

// MintPasswordResetToken issues a short-lived token carrying only the
// subject. It is accepted by the password-reset flow and nothing else.
func MintPasswordResetToken(cfg config.JWTConfig, now time.Time, subject string) (string, error) {
	if cfg.Secret == "" {
		return "", fmt.Errorf("jwt secret is required")
	}
	if subject == "" {
		return "", fmt.Errorf("token subject is required")
	}

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.ResetTokenTTL())),
		},
	}

	token := jwt.NewWithClaims(jwtSigningMethod, claims)
	signed, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("signing jwt: %w", err)
	}
	return signed, nil
}

// Parse checks structure and signature and returns typed claims. Expiry is
// deliberately not validated here: an expired token still parses, and the
// gate decides what an expired token is worth. Tampering with any part of
// the token fails the whole parse.
func Parse(cfg config.JWTConfig, tokenString string) (*Claims, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}

	claims := &Claims{}
	parser := jwt.NewParser(
		jwt.WithoutClaimsValidation(),
		jwt.WithValidMethods([]string{jwtSigningMethod.Alg()}),
	)
	_, err := parser.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			if token.Method != jwtSigningMethod {
				return nil, fmt.Errorf("unexpected signing method %s", token.Header["alg"])
			}
			return []byte(cfg.Secret), nil
		},
	)
	if err != nil {
		return nil, err
	}

	return claims, nil
}

// ExtractSubject decodes the token and projects the subject claim.
func ExtractSubject(cfg config.JWTConfig, tokenString string) (string, error) {
	claims, err := Parse(cfg, tokenString)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// ExtractID decodes the token and projects the string-encoded numeric id.
func ExtractID(cfg config.JWTConfig, tokenString string) (string, error) {
	claims, err := Parse(cfg, tokenString)
	if err != nil {
		return "", err
	}
	return claims.ID, nil
}

// ExtractExpiry decodes the token and projects the expiry timestamp.
func ExtractExpiry(cfg config.JWTConfig, tokenString string) (time.Time, error) {
	claims, err := Parse(cfg, tokenString)
	if err != nil {
		return time.Time{}, err
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, fmt.Errorf("token has no expiry")
	}
	return claims.ExpiresAt.Time, nil
}

// IsExpired reports whether the claims are stale at the given instant. The
// boundary counts as expired; there is no grace window.
func IsExpired(claims *Claims, now time.Time) bool {
	if claims == nil || claims.ExpiresAt == nil {
		return true
	}
	return !now.Before(claims.ExpiresAt.Time)
}

// IsValid reports whether the claims identify the principal and are still
// live. Role freshness is not re-checked against the persisted principal;
// a role change takes effect when the token is reissued.
func IsValid(claims *Claims, principal Principal, now time.Time) bool {
	if claims == nil || principal == nil {
		return false
	}
	if claims.Subject == "" || claims.Subject != principal.Username() {
		return false
	}
	return !IsExpired(claims, now)
}
