package orders

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/gymgrid/gymgrid-backend/pkg/db"
	"github.com/gymgrid/gymgrid-backend/pkg/db/models"
	"github.com/gymgrid/gymgrid-backend/pkg/enums"
	"github.com/gymgrid/gymgrid-backend/pkg/pagination"
)

func setupOrdersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&models.Order{}, &models.OrderDetail{}))
	return gdb
}

func seedBuyer(t *testing.T, gdb *gorm.DB, email string) *models.User {
	t.Helper()

	user := &models.User{
		Email:        email,
		PasswordHash: "$argon2id$stub",
		FirstName:    "Jo",
		LastName:     "Mendez",
		Role:         enums.RoleUser,
		IsActive:     true,
	}
	require.NoError(t, gdb.Create(user).Error)
	return user
}

func seedProduct(t *testing.T, gdb *gorm.DB, name string) *models.Product {
	t.Helper()

	owner := seedBuyer(t, gdb, name+"-owner@gymgrid.test")
	partner := &models.Partner{UserID: owner.ID, CompanyName: name + " partner"}
	require.NoError(t, gdb.Create(partner).Error)
	store := &models.Store{PartnerID: partner.ID, Name: name + " store"}
	require.NoError(t, gdb.Create(store).Error)

	product := &models.Product{
		Name:    name,
		Price:   decimal.NewFromInt(20),
		Stock:   5,
		StoreID: store.ID,
	}
	require.NoError(t, gdb.Create(product).Error)
	return product
}

func seedOrder(t *testing.T, gdb *gorm.DB, userID int64, product *models.Product) *models.Order {
	t.Helper()

	order := &models.Order{
		UserID: userID,
		Status: enums.OrderStatusPending,
		Total:  decimal.NewFromInt(40),
		Details: []models.OrderDetail{
			{ProductID: product.ID, Quantity: 2, UnitPrice: product.Price},
		},
	}
	require.NoError(t, gdb.Create(order).Error)
	return order
}

func TestFindByIDLoadsGraph(t *testing.T) {
	gdb := setupOrdersTestDB(t)
	repo := NewRepository(gdb)

	buyer := seedBuyer(t, gdb, "buyer@gymgrid.test")
	product := seedProduct(t, gdb, "resistance bands")
	seeded := seedOrder(t, gdb, buyer.ID, product)

	order, err := repo.FindByID(context.Background(), seeded.ID)
	require.NoError(t, err)

	require.NotNil(t, order.User)
	assert.Equal(t, "buyer@gymgrid.test", order.User.Email)
	require.Len(t, order.Details, 1)
	require.NotNil(t, order.Details[0].Product)
	assert.Equal(t, "resistance bands", order.Details[0].Product.Name)
	assert.Nil(t, order.Driver)
}

func TestFindByIDUnknownOrder(t *testing.T) {
	gdb := setupOrdersTestDB(t)
	repo := NewRepository(gdb)

	_, err := repo.FindByID(context.Background(), 4242)
	require.Error(t, err)
	assert.True(t, db.IsNotFound(err))
}

func TestListByUserPaginates(t *testing.T) {
	gdb := setupOrdersTestDB(t)
	repo := NewRepository(gdb)

	buyer := seedBuyer(t, gdb, "pager@gymgrid.test")
	product := seedProduct(t, gdb, "kettlebell")
	first := seedOrder(t, gdb, buyer.ID, product)
	second := seedOrder(t, gdb, buyer.ID, product)
	third := seedOrder(t, gdb, buyer.ID, product)

	page, err := repo.ListByUser(context.Background(), buyer.ID, nil, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, first.ID, page[0].ID)
	assert.Equal(t, second.ID, page[1].ID)

	rest, err := repo.ListByUser(context.Background(), buyer.ID, &pagination.Cursor{ID: second.ID}, 2)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, third.ID, rest[0].ID)
}

func TestListByUserExcludesOtherBuyers(t *testing.T) {
	gdb := setupOrdersTestDB(t)
	repo := NewRepository(gdb)

	product := seedProduct(t, gdb, "yoga mat")
	mine := seedBuyer(t, gdb, "mine@gymgrid.test")
	other := seedBuyer(t, gdb, "other@gymgrid.test")
	seedOrder(t, gdb, mine.ID, product)
	seedOrder(t, gdb, other.ID, product)

	page, err := repo.ListByUser(context.Background(), mine.ID, nil, 10)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, mine.ID, page[0].UserID)
}

func TestUpdateStatus(t *testing.T) {
	gdb := setupOrdersTestDB(t)
	repo := NewRepository(gdb)

	buyer := seedBuyer(t, gdb, "status@gymgrid.test")
	product := seedProduct(t, gdb, "jump rope")
	order := seedOrder(t, gdb, buyer.ID, product)

	require.NoError(t, repo.UpdateStatus(context.Background(), order.ID, enums.OrderStatusConfirmed))

	updated, err := repo.FindByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusConfirmed, updated.Status)
	assert.NotNil(t, updated.LastUpdate)

	err = repo.UpdateStatus(context.Background(), 4242, enums.OrderStatusConfirmed)
	assert.True(t, db.IsNotFound(err))
}

func TestAssignDriverOnlyOnce(t *testing.T) {
	gdb := setupOrdersTestDB(t)
	repo := NewRepository(gdb)

	buyer := seedBuyer(t, gdb, "assign@gymgrid.test")
	product := seedProduct(t, gdb, "foam roller")
	order := seedOrder(t, gdb, buyer.ID, product)

	driver := &models.Driver{FirstName: "Sam", LastName: "Ruiz", IsActive: true}
	require.NoError(t, gdb.Create(driver).Error)

	require.NoError(t, repo.AssignDriver(context.Background(), order.ID, driver.ID))

	// A second assignment must not steal the order.
	err := repo.AssignDriver(context.Background(), order.ID, driver.ID)
	assert.True(t, db.IsNotFound(err))

	updated, err := repo.FindByID(context.Background(), order.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.Driver)
	assert.Equal(t, driver.ID, updated.Driver.ID)
}
