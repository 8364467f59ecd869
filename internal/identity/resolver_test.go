package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/gymgrid/gymgrid-backend/internal/users"
	"github.com/gymgrid/gymgrid-backend/pkg/db/models"
	"github.com/gymgrid/gymgrid-backend/pkg/enums"
	pkgerrors "github.com/gymgrid/gymgrid-backend/pkg/errors"
)

func setupIdentityTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&models.User{}))
	return gdb
}

func seedUser(t *testing.T, gdb *gorm.DB, email string, role enums.Role, active bool) *models.User {
	t.Helper()

	user := &models.User{
		Email:        email,
		PasswordHash: "$argon2id$stub",
		FirstName:    "Grace",
		LastName:     "Hopper",
		Role:         role,
		IsActive:     active,
	}
	require.NoError(t, gdb.Create(user).Error)
	return user
}

func TestLoadByUsername(t *testing.T) {
	gdb := setupIdentityTestDB(t)
	seeded := seedUser(t, gdb, "trainer@gymgrid.test", enums.RoleTrainer, true)

	resolver := NewResolver(users.NewRepository(gdb))
	principal, err := resolver.LoadByUsername(context.Background(), "trainer@gymgrid.test")
	require.NoError(t, err)

	assert.Equal(t, seeded.ID, principal.ID())
	assert.Equal(t, "trainer@gymgrid.test", principal.Username())
	assert.Equal(t, enums.RoleTrainer, principal.Role())
	assert.True(t, principal.IsActive())
	assert.Equal(t, []string{"ROLE_TRAINER"}, principal.Authorities())
}

func TestLoadByUsernameNormalizesCase(t *testing.T) {
	gdb := setupIdentityTestDB(t)
	seedUser(t, gdb, "member@gymgrid.test", enums.RoleUser, true)

	resolver := NewResolver(users.NewRepository(gdb))
	principal, err := resolver.LoadByUsername(context.Background(), "  Member@GymGrid.Test ")
	require.NoError(t, err)
	assert.Equal(t, "member@gymgrid.test", principal.Username())
}

func TestLoadByUsernameUnknown(t *testing.T) {
	gdb := setupIdentityTestDB(t)

	resolver := NewResolver(users.NewRepository(gdb))
	_, err := resolver.LoadByUsername(context.Background(), "ghost@gymgrid.test")
	require.Error(t, err)

	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestLoadByUsernameEmpty(t *testing.T) {
	gdb := setupIdentityTestDB(t)

	resolver := NewResolver(users.NewRepository(gdb))
	_, err := resolver.LoadByUsername(context.Background(), "   ")
	require.Error(t, err)

	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestPrincipalRoleChecks(t *testing.T) {
	principal := NewUserPrincipal(&models.User{
		ID:       4,
		Email:    "admin@gymgrid.test",
		Role:     enums.RoleAdmin,
		IsActive: true,
	})

	assert.True(t, principal.HasRole("admin"))
	assert.True(t, principal.HasRole("ADMIN"))
	assert.False(t, principal.HasRole("user"))
	assert.Equal(t, []string{"ROLE_ADMIN"}, principal.Authorities())
}

func TestNilPrincipalIsInert(t *testing.T) {
	var principal *UserPrincipal

	assert.Equal(t, int64(0), principal.ID())
	assert.Empty(t, principal.Username())
	assert.False(t, principal.HasRole("admin"))
	assert.False(t, principal.IsActive())
	assert.Nil(t, principal.Authorities())
}
