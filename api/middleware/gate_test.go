package middleware

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgauth "github.com/gymgrid/gymgrid-backend/pkg/auth"
	"github.com/gymgrid/gymgrid-backend/pkg/config"
	"github.com/gymgrid/gymgrid-backend/pkg/enums"
	"github.com/gymgrid/gymgrid-backend/pkg/logger"
	"github.com/gymgrid/gymgrid-backend/pkg/metrics"
)

type fakePrincipal struct {
	username string
	role     string
	active   bool
}

func (p *fakePrincipal) Username() string { return p.username }
func (p *fakePrincipal) HasRole(role string) bool {
	return strings.EqualFold(p.role, role)
}
func (p *fakePrincipal) Authorities() []string {
	return []string{"ROLE_" + strings.ToUpper(p.role)}
}
func (p *fakePrincipal) IsActive() bool { return p.active }

type fakeResolver struct {
	principals map[string]*fakePrincipal
	calls      int
}

func (r *fakeResolver) ResolvePrincipal(_ context.Context, username string) (pkgauth.Principal, error) {
	r.calls++
	if p, ok := r.principals[username]; ok {
		return p, nil
	}
	return nil, errUnknownUser
}

var errUnknownUser = &notFoundErr{}

type notFoundErr struct{}

func (*notFoundErr) Error() string { return "unknown username" }

func gateJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:          "gate-secret",
		Issuer:          "gymgrid",
		ExpirationHours: 24,
	}
}

func mintToken(t *testing.T, now time.Time, email string, role enums.Role) string {
	t.Helper()
	token, err := pkgauth.Mint(gateJWTConfig(), now, pkgauth.TokenPayload{
		Subject: email,
		Role:    role,
		UserID:  7,
	})
	require.NoError(t, err)
	return token
}

type captured struct {
	called    bool
	principal pkgauth.Principal
	username  string
	userID    int64
	hasUserID bool
	isTrainer bool
}

func buildGate(resolver *fakeResolver) (func(http.Handler) http.Handler, *captured) {
	cap := &captured{}
	gate := Gate(GateParams{
		JWTConfig: gateJWTConfig(),
		Resolver:  resolver,
		Metrics:   metrics.NewGateMetrics(prometheus.NewRegistry()),
	})
	return gate, cap
}

func captureHandler(cap *captured) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cap.called = true
		cap.principal = PrincipalFromContext(r.Context())
		cap.username = CurrentUsername(r.Context())
		cap.userID, cap.hasUserID = CurrentUserID(r.Context())
		cap.isTrainer = IsTrainer(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestGateAttachesPrincipalOnValidToken(t *testing.T) {
	resolver := &fakeResolver{principals: map[string]*fakePrincipal{
		"trainer@gymgrid.test": {username: "trainer@gymgrid.test", role: "trainer", active: true},
	}}
	gate, cap := buildGate(resolver)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, time.Now(), "trainer@gymgrid.test", enums.RoleTrainer))
	rec := httptest.NewRecorder()

	gate(captureHandler(cap)).ServeHTTP(rec, req)

	require.True(t, cap.called)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, cap.principal)
	assert.Equal(t, "trainer@gymgrid.test", cap.username)
	assert.Equal(t, int64(7), cap.userID)
	assert.True(t, cap.hasUserID)
	assert.True(t, cap.isTrainer)
}

func TestGateForwardsAnonymousWithoutToken(t *testing.T) {
	gate, cap := buildGate(&fakeResolver{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	rec := httptest.NewRecorder()

	gate(captureHandler(cap)).ServeHTTP(rec, req)

	// The gate never rejects; the handler still runs, just anonymous.
	require.True(t, cap.called)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, cap.principal)
	assert.Empty(t, cap.username)
	assert.False(t, cap.hasUserID)
	assert.False(t, cap.isTrainer)
}

func TestGateForwardsAnonymousOnNonBearerScheme(t *testing.T) {
	resolver := &fakeResolver{principals: map[string]*fakePrincipal{
		"trainer@gymgrid.test": {username: "trainer@gymgrid.test", role: "trainer", active: true},
	}}
	gate, cap := buildGate(resolver)

	// A valid token under any scheme other than Bearer is not a credential.
	for _, header := range []string{
		mintToken(t, time.Now(), "trainer@gymgrid.test", enums.RoleTrainer),
		"Basic " + mintToken(t, time.Now(), "trainer@gymgrid.test", enums.RoleTrainer),
	} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()

		gate(captureHandler(cap)).ServeHTTP(rec, req)

		require.True(t, cap.called)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, cap.principal)
		assert.Empty(t, cap.username)
	}
	assert.Zero(t, resolver.calls)
}

func TestGateForwardsAnonymousOnGarbageToken(t *testing.T) {
	resolver := &fakeResolver{}
	gate, cap := buildGate(resolver)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")
	rec := httptest.NewRecorder()

	gate(captureHandler(cap)).ServeHTTP(rec, req)

	require.True(t, cap.called)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, cap.principal)
	assert.Zero(t, resolver.calls)
}

func TestGateForwardsAnonymousOnExpiredToken(t *testing.T) {
	resolver := &fakeResolver{principals: map[string]*fakePrincipal{
		"trainer@gymgrid.test": {username: "trainer@gymgrid.test", role: "trainer", active: true},
	}}
	gate, cap := buildGate(resolver)

	stale := mintToken(t, time.Now().Add(-25*time.Hour), "trainer@gymgrid.test", enums.RoleTrainer)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	req.Header.Set("Authorization", "Bearer "+stale)
	rec := httptest.NewRecorder()

	gate(captureHandler(cap)).ServeHTTP(rec, req)

	require.True(t, cap.called)
	assert.Nil(t, cap.principal)
	assert.False(t, cap.isTrainer)
}

func TestGateForwardsAnonymousOnUnknownSubject(t *testing.T) {
	gate, cap := buildGate(&fakeResolver{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, time.Now(), "ghost@gymgrid.test", enums.RoleUser))
	rec := httptest.NewRecorder()

	gate(captureHandler(cap)).ServeHTTP(rec, req)

	require.True(t, cap.called)
	assert.Nil(t, cap.principal)
}

func TestGateForwardsAnonymousOnDisabledAccount(t *testing.T) {
	resolver := &fakeResolver{principals: map[string]*fakePrincipal{
		"banned@gymgrid.test": {username: "banned@gymgrid.test", role: "user", active: false},
	}}
	gate, cap := buildGate(resolver)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, time.Now(), "banned@gymgrid.test", enums.RoleUser))
	rec := httptest.NewRecorder()

	gate(captureHandler(cap)).ServeHTTP(rec, req)

	require.True(t, cap.called)
	assert.Nil(t, cap.principal)
}

func TestGateAnnotatesRemoteAddrForAudit(t *testing.T) {
	resolver := &fakeResolver{principals: map[string]*fakePrincipal{
		"trainer@gymgrid.test": {username: "trainer@gymgrid.test", role: "trainer", active: true},
	}}

	var buf bytes.Buffer
	logg := logger.New(logger.Options{ServiceName: "test", Output: &buf})
	gate := Gate(GateParams{
		JWTConfig: gateJWTConfig(),
		Resolver:  resolver,
		Metrics:   metrics.NewGateMetrics(prometheus.NewRegistry()),
		Logger:    logg,
	})
	handler := gate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logg.Info(r.Context(), "handled")
		w.WriteHeader(http.StatusOK)
	}))

	// Authenticated request: the source address rides on the request logger.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, time.Now(), "trainer@gymgrid.test", enums.RoleTrainer))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	line := buf.String()
	assert.Contains(t, line, `"remote_addr":"`+req.RemoteAddr+`"`)
	assert.Contains(t, line, `"username":"trainer@gymgrid.test"`)

	// Rejected token: the audit fields still carry the source address.
	buf.Reset()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	line = buf.String()
	assert.Contains(t, line, `"remote_addr":"`+req.RemoteAddr+`"`)
	assert.Contains(t, line, `"auth_outcome":"invalid"`)
}

func TestGateShortCircuitsPreflight(t *testing.T) {
	gate, cap := buildGate(&fakeResolver{})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/orders", nil)
	rec := httptest.NewRecorder()

	gate(captureHandler(cap)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, cap.called)
}

func TestGateSkipsTokenOnPublicPath(t *testing.T) {
	resolver := &fakeResolver{}
	gate, cap := buildGate(resolver)

	// Garbage credentials on a public path must not block the request.
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
	req.Header.Set("Authorization", "Bearer complete-garbage")
	rec := httptest.NewRecorder()

	gate(captureHandler(cap)).ServeHTTP(rec, req)

	require.True(t, cap.called)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, cap.principal)
	assert.Zero(t, resolver.calls)
}

func TestRequireAuthRejectsAnonymous(t *testing.T) {
	handler := RequireAuth(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole(t *testing.T) {
	handler := RequireRole("admin", nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	principal := &fakePrincipal{username: "user@gymgrid.test", role: "user", active: true}
	claims := &pkgauth.Claims{Role: "user"}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/users", nil)
	ctx := WithPrincipal(req.Context(), principal)
	ctx = WithClaims(ctx, claims)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req.WithContext(ctx))

	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Anonymous requests get a 401, not a 403.
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/users", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRolePredicatesOnEmptyContext(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, CurrentUsername(ctx))
	_, ok := CurrentUserID(ctx)
	assert.False(t, ok)
	assert.False(t, HasRole(ctx, "admin"))
	assert.False(t, IsAdmin(ctx))
	assert.False(t, IsUser(ctx))
	assert.False(t, IsClient(ctx))
	assert.False(t, IsTrainer(ctx))
	assert.False(t, IsCenter(ctx))
	assert.False(t, IsStore(ctx))
	assert.False(t, IsDriver(ctx))
	assert.False(t, IsPartner(ctx))
}
