package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gymgrid/gymgrid-backend/internal/serializer"
	"github.com/gymgrid/gymgrid-backend/internal/users"
	pkgauth "github.com/gymgrid/gymgrid-backend/pkg/auth"
	"github.com/gymgrid/gymgrid-backend/pkg/config"
	"github.com/gymgrid/gymgrid-backend/pkg/db"
	"github.com/gymgrid/gymgrid-backend/pkg/db/models"
	"github.com/gymgrid/gymgrid-backend/pkg/enums"
	pkgerrors "github.com/gymgrid/gymgrid-backend/pkg/errors"
	"github.com/gymgrid/gymgrid-backend/pkg/security"
)

const invalidCredentialsMessage = "invalid credentials"

// Roles a caller may self-assign at signup. Everything else is provisioned
// by an admin.
var selfServiceRoles = map[enums.Role]bool{
	enums.RoleUser:    true,
	enums.RoleClient:  true,
	enums.RoleTrainer: true,
	enums.RolePartner: true,
}

// Service defines the behavior needed by the auth controller.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error)
	RequestPasswordReset(ctx context.Context, req PasswordResetRequest) error
	ResetPassword(ctx context.Context, req PasswordResetConfirm) error
}

type userRepository interface {
	Create(ctx context.Context, dto users.CreateUserDTO) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateLastLogin(ctx context.Context, id int64, at time.Time) error
	UpdatePasswordHash(ctx context.Context, id int64, hash string) error
}

type resetMailer interface {
	SendPasswordReset(ctx context.Context, to, token string) error
}

type service struct {
	users       userRepository
	mailer      resetMailer
	jwtCfg      config.JWTConfig
	passwordCfg config.PasswordConfig
	now         func() time.Time
}

// ServiceParams bundles the dependencies required to build an auth service.
type ServiceParams struct {
	UserRepo       userRepository
	Mailer         resetMailer
	JWTConfig      config.JWTConfig
	PasswordConfig config.PasswordConfig
	Now            func() time.Time
}

// NewService constructs an auth service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.UserRepo == nil {
		return nil, fmt.Errorf("user repository is required")
	}
	if params.Mailer == nil {
		return nil, fmt.Errorf("mailer is required")
	}
	now := params.Now
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &service{
		users:       params.UserRepo,
		mailer:      params.Mailer,
		jwtCfg:      params.JWTConfig,
		passwordCfg: params.PasswordConfig,
		now:         now,
	}, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if err := s.users.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update last login")
	}
	user.LastLoginAt = &now

	return s.tokenResponse(user, now)
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	role, err := enums.ParseRole(req.Role)
	if err != nil || !selfServiceRoles[role] {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("role %q is not open for signup", req.Role))
	}

	hash, err := security.HashPassword(req.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	user, err := s.users.Create(ctx, users.CreateUserDTO{
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Role:         role,
	})
	if err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create user")
	}

	login, err := s.tokenResponse(user, s.now())
	if err != nil {
		return nil, err
	}
	return &RegisterResponse{
		AccessToken: login.AccessToken,
		ExpiresIn:   login.ExpiresIn,
		User:        login.User,
	}, nil
}

// RequestPasswordReset never reveals whether the email exists. Unknown
// addresses return success without sending anything.
func (s *service) RequestPasswordReset(ctx context.Context, req PasswordResetRequest) error {
	user, err := s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if db.IsNotFound(err) {
			return nil
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup user")
	}
	if !user.IsActive {
		return nil
	}

	token, err := pkgauth.MintPasswordResetToken(s.jwtCfg, s.now(), user.Email)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint reset token")
	}
	if err := s.mailer.SendPasswordReset(ctx, user.Email, token); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "send reset email")
	}
	return nil
}

func (s *service) ResetPassword(ctx context.Context, req PasswordResetConfirm) error {
	claims, err := pkgauth.Parse(s.jwtCfg, req.Token)
	if err != nil {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid reset token")
	}
	if pkgauth.IsExpired(claims, s.now()) {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "reset token expired")
	}
	// Access tokens carry a role and jti; a reset token must carry neither.
	if claims.Role != "" || claims.ID != "" {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid reset token")
	}

	user, err := s.users.FindByEmail(ctx, claims.Subject)
	if err != nil {
		if db.IsNotFound(err) {
			return pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid reset token")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup user")
	}

	hash, err := security.HashPassword(req.NewPassword, s.passwordCfg)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}
	if err := s.users.UpdatePasswordHash(ctx, user.ID, hash); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update password")
	}
	return nil
}

func (s *service) authenticate(ctx context.Context, email, password string) (*models.User, error) {
	input := strings.TrimSpace(email)
	if input == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}
	user, err := s.users.FindByEmail(ctx, strings.ToLower(input))
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup user")
	}

	valid, err := security.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	if !valid || !user.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}
	return user, nil
}

func (s *service) tokenResponse(user *models.User, now time.Time) (*LoginResponse, error) {
	token, err := pkgauth.Mint(s.jwtCfg, now, pkgauth.TokenPayload{
		Subject: user.Email,
		Role:    user.Role,
		UserID:  user.ID,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint jwt")
	}

	view, err := serializer.User(user)
	if err != nil {
		return nil, err
	}
	return &LoginResponse{
		AccessToken: token,
		ExpiresIn:   int64(s.jwtCfg.AccessTokenTTL().Seconds()),
		User:        view,
	}, nil
}
