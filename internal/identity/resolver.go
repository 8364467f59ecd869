// Package identity resolves token subjects into authenticated principals.
package identity

import (
	"context"
	"strings"

	pkgauth "github.com/gymgrid/gymgrid-backend/pkg/auth"
	"github.com/gymgrid/gymgrid-backend/pkg/db"
	"github.com/gymgrid/gymgrid-backend/pkg/db/models"
	pkgerrors "github.com/gymgrid/gymgrid-backend/pkg/errors"
)

type userRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// Resolver turns a username into a principal. Every resolution hits the
// database; nothing is cached, so a disabled account loses access on the
// next request.
type Resolver struct {
	users userRepository
}

// NewResolver binds the resolver to a users repository.
func NewResolver(users userRepository) *Resolver {
	return &Resolver{users: users}
}

// LoadByUsername fetches the user behind the subject claim. Unknown subjects
// map to a not-found error so the gate can treat the token as anonymous.
func (r *Resolver) LoadByUsername(ctx context.Context, username string) (*UserPrincipal, error) {
	normalized := strings.ToLower(strings.TrimSpace(username))
	if normalized == "" {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "empty username")
	}

	user, err := r.users.FindByEmail(ctx, normalized)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "unknown username")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup principal")
	}

	return NewUserPrincipal(user), nil
}

// ResolvePrincipal adapts LoadByUsername to the auth.Principal interface
// expected by the request gate.
func (r *Resolver) ResolvePrincipal(ctx context.Context, username string) (pkgauth.Principal, error) {
	principal, err := r.LoadByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return principal, nil
}
