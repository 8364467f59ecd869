package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/gymgrid/gymgrid-backend/pkg/config"
	"github.com/gymgrid/gymgrid-backend/pkg/enums"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{Secret: "test-secret", Issuer: "gymgrid", ExpirationHours: 24, ResetTokenTTLHours: 1}
}

type stubPrincipal struct {
	username string
	role     string
}

func (p stubPrincipal) Username() string { return p.username }
func (p stubPrincipal) HasRole(role string) bool {
	return strings.EqualFold(p.role, role)
}
func (p stubPrincipal) Authorities() []string { return []string{"ROLE_" + strings.ToUpper(p.role)} }

func TestMintParseRoundTrip(t *testing.T) {
	cfg := testJWTConfig()
	now := time.Unix(1700000000, 0)

	token, err := Mint(cfg, now, TokenPayload{Subject: "coach@gymgrid.app", Role: enums.RoleTrainer, UserID: 77})
	require.NoError(t, err)

	claims, err := Parse(cfg, token)
	require.NoError(t, err)
	assert.Equal(t, "coach@gymgrid.app", claims.Subject)
	assert.Equal(t, "trainer", claims.Role)
	assert.Equal(t, "77", claims.ID)

	id, ok := claims.UserID()
	require.True(t, ok)
	assert.Equal(t, int64(77), id)
}

func TestMintRejectsBadPayload(t *testing.T) {
	cfg := testJWTConfig()
	now := time.Now()

	_, err := Mint(cfg, now, TokenPayload{Subject: "", Role: enums.RoleUser, UserID: 1})
	assert.Error(t, err)

	_, err = Mint(cfg, now, TokenPayload{Subject: "a@b.c", Role: enums.Role("superhero"), UserID: 1})
	assert.Error(t, err)

	_, err = Mint(cfg, now, TokenPayload{Subject: "a@b.c", Role: enums.RoleUser, UserID: 0})
	assert.Error(t, err)
}

func TestParseRejectsTamperedToken(t *testing.T) {
	cfg := testJWTConfig()
	token, err := Mint(cfg, time.Now(), TokenPayload{Subject: "a@b.c", Role: enums.RoleAdmin, UserID: 1})
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	forgedPayload := strings.Join([]string{parts[0], flipFirstChar(parts[1]), parts[2]}, ".")
	_, err = Parse(cfg, forgedPayload)
	assert.Error(t, err, "tampered payload must not parse")

	forgedSignature := strings.Join([]string{parts[0], parts[1], flipFirstChar(parts[2])}, ".")
	_, err = Parse(cfg, forgedSignature)
	assert.Error(t, err, "tampered signature must not parse")
}

func TestParseRejectsWrongSecret(t *testing.T) {
	cfg := testJWTConfig()
	token, err := Mint(cfg, time.Now(), TokenPayload{Subject: "a@b.c", Role: enums.RoleAdmin, UserID: 1})
	require.NoError(t, err)

	other := cfg
	other.Secret = "other-secret"
	_, err = Parse(other, token)
	assert.Error(t, err)
}

func TestParseKeepsExpiredTokenReadable(t *testing.T) {
	cfg := testJWTConfig()
	past := time.Now().Add(-48 * time.Hour)
	token, err := Mint(cfg, past, TokenPayload{Subject: "a@b.c", Role: enums.RoleUser, UserID: 2})
	require.NoError(t, err)

	claims, err := Parse(cfg, token)
	require.NoError(t, err)
	assert.True(t, IsExpired(claims, time.Now()))
	assert.Equal(t, "a@b.c", claims.Subject)
}

func TestExpiryBoundary(t *testing.T) {
	cfg := testJWTConfig()
	issued := time.Unix(1700000000, 0)
	token, err := Mint(cfg, issued, TokenPayload{Subject: "a@b.c", Role: enums.RoleUser, UserID: 3})
	require.NoError(t, err)

	claims, err := Parse(cfg, token)
	require.NoError(t, err)

	expiry, err := ExtractExpiry(cfg, token)
	require.NoError(t, err)
	assert.Equal(t, issued.Add(24*time.Hour), expiry)

	assert.False(t, IsExpired(claims, issued.Add(24*time.Hour-time.Millisecond)))
	assert.True(t, IsExpired(claims, issued.Add(24*time.Hour)))
}

func TestExtractProjections(t *testing.T) {
	cfg := testJWTConfig()
	token, err := Mint(cfg, time.Unix(1700000000, 0), TokenPayload{Subject: "lift@gymgrid.app", Role: enums.RoleClient, UserID: 9})
	require.NoError(t, err)

	sub, err := ExtractSubject(cfg, token)
	require.NoError(t, err)
	assert.Equal(t, "lift@gymgrid.app", sub)

	id, err := ExtractID(cfg, token)
	require.NoError(t, err)
	assert.Equal(t, "9", id)

	_, err = ExtractSubject(cfg, "not-a-token")
	assert.Error(t, err)
}

func TestIsValidMatchesSubjectAndLiveness(t *testing.T) {
	cfg := testJWTConfig()
	now := time.Unix(1700000000, 0)
	token, err := Mint(cfg, now, TokenPayload{Subject: "a@b.c", Role: enums.RoleUser, UserID: 4})
	require.NoError(t, err)
	claims, err := Parse(cfg, token)
	require.NoError(t, err)

	assert.True(t, IsValid(claims, stubPrincipal{username: "a@b.c", role: "user"}, now.Add(time.Hour)))
	assert.False(t, IsValid(claims, stubPrincipal{username: "other@b.c", role: "user"}, now.Add(time.Hour)))
	assert.False(t, IsValid(claims, stubPrincipal{username: "a@b.c", role: "user"}, now.Add(25*time.Hour)))
	assert.False(t, IsValid(nil, stubPrincipal{username: "a@b.c"}, now))
	assert.False(t, IsValid(claims, nil, now))
}

func TestPasswordResetTokenShape(t *testing.T) {
	cfg := testJWTConfig()
	issued := time.Unix(1700000000, 0)
	token, err := MintPasswordResetToken(cfg, issued, "forgot@gymgrid.app")
	require.NoError(t, err)

	claims, err := Parse(cfg, token)
	require.NoError(t, err)
	assert.Equal(t, "forgot@gymgrid.app", claims.Subject)
	assert.Empty(t, claims.Role)

	_, ok := claims.UserID()
	assert.False(t, ok)

	require.NotNil(t, claims.ExpiresAt)
	assert.Equal(t, issued.Add(time.Hour), claims.ExpiresAt.Time)
}

func flipFirstChar(s string) string {
	if s == "" {
		return s
	}
	head := "A"
	if s[0] == 'A' {
		head = "B"
	}
	return head + s[1:]
}
