package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	pkgauth "github.com/gymgrid/gymgrid-backend/pkg/auth"
	"github.com/gymgrid/gymgrid-backend/pkg/config"
	"github.com/gymgrid/gymgrid-backend/pkg/logger"
	"github.com/gymgrid/gymgrid-backend/pkg/metrics"
)

// PrincipalResolver loads the account behind a token subject.
type PrincipalResolver interface {
	ResolvePrincipal(ctx context.Context, username string) (pkgauth.Principal, error)
}

// Paths the gate never inspects a token on. Requests here flow through as
// anonymous even when they carry a valid token.
var defaultPublicPaths = []string{
	"/api/v1/auth/login",
	"/api/v1/auth/register",
	"/api/v1/auth/password-reset",
	"/healthz",
	"/metrics",
}

// GateParams bundles the gate's dependencies.
type GateParams struct {
	JWTConfig   config.JWTConfig
	Resolver    PrincipalResolver
	Metrics     *metrics.GateMetrics
	Logger      *logger.Logger
	PublicPaths []string
}

// Gate authenticates requests without ever rejecting them. A parseable,
// live token whose subject resolves gets its claims and principal attached
// to the context; anything else (no token, malformed, expired, tampered,
// unknown or disabled subject) passes through anonymous. Authorization is
// the job of RequireAuth/RequireRole and the handlers, never the gate.
func Gate(params GateParams) func(http.Handler) http.Handler {
	public := params.PublicPaths
	if public == nil {
		public = defaultPublicPaths
	}
	publicSet := make(map[string]bool, len(public))
	for _, p := range public {
		publicSet[p] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// CORS preflights never reach the handler chain.
			if r.Method == http.MethodOptions {
				params.Metrics.IncOutcome(metrics.GateOutcomePreflight)
				w.WriteHeader(http.StatusOK)
				return
			}

			if publicSet[r.URL.Path] {
				params.Metrics.IncOutcome(metrics.GateOutcomePublic)
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			ctx, outcome := resolve(r.Context(), params, r.Header.Get("Authorization"), r.RemoteAddr)
			params.Metrics.IncOutcome(outcome)
			params.Metrics.ObserveDuration(time.Since(start))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func resolve(ctx context.Context, params GateParams, header, remoteAddr string) (context.Context, string) {
	token := bearerToken(header)
	if token == "" {
		return ctx, metrics.GateOutcomeAnonymous
	}

	claims, err := pkgauth.Parse(params.JWTConfig, token)
	if err != nil {
		return audit(ctx, params.Logger, map[string]any{
			"auth_outcome": "invalid",
			"remote_addr":  remoteAddr,
		}), metrics.GateOutcomeInvalid
	}

	if claims.Subject == "" {
		return audit(ctx, params.Logger, map[string]any{
			"auth_outcome": "invalid",
			"remote_addr":  remoteAddr,
		}), metrics.GateOutcomeInvalid
	}

	principal, err := params.Resolver.ResolvePrincipal(ctx, claims.Subject)
	if err != nil || principal == nil {
		return audit(ctx, params.Logger, map[string]any{
			"auth_outcome": "unresolved",
			"remote_addr":  remoteAddr,
			"username":     claims.Subject,
		}), metrics.GateOutcomeInvalid
	}

	// A disabled account keeps its token until expiry but loses access now.
	if active, ok := principal.(interface{ IsActive() bool }); ok && !active.IsActive() {
		return audit(ctx, params.Logger, map[string]any{
			"auth_outcome": "disabled",
			"remote_addr":  remoteAddr,
			"username":     claims.Subject,
		}), metrics.GateOutcomeInvalid
	}

	now := time.Now().UTC()
	if !pkgauth.IsValid(claims, principal, now) {
		outcome := metrics.GateOutcomeInvalid
		if pkgauth.IsExpired(claims, now) {
			outcome = metrics.GateOutcomeExpired
		}
		return audit(ctx, params.Logger, map[string]any{
			"auth_outcome": outcome,
			"remote_addr":  remoteAddr,
			"username":     claims.Subject,
		}), outcome
	}

	ctx = WithClaims(ctx, claims)
	ctx = WithPrincipal(ctx, principal)
	if params.Logger != nil {
		ctx = params.Logger.WithField(ctx, "remote_addr", remoteAddr)
		ctx = params.Logger.WithUsername(ctx, principal.Username())
		ctx = params.Logger.WithRole(ctx, claims.Role)
	}
	return ctx, metrics.GateOutcomeAuthenticated
}

// bearerToken extracts the credential from an Authorization header. Only the
// Bearer scheme carries a token; any other scheme means no token at all.
func bearerToken(header string) string {
	raw := strings.TrimSpace(header)
	if !strings.HasPrefix(strings.ToLower(raw), "bearer ") {
		return ""
	}
	return strings.TrimSpace(raw[7:])
}

func audit(ctx context.Context, logg *logger.Logger, fields map[string]any) context.Context {
	if logg == nil {
		return ctx
	}
	return logg.WithFields(ctx, fields)
}
