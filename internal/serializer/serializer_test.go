package serializer

import (
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gymgrid/gymgrid-backend/pkg/db/models"
	"github.com/gymgrid/gymgrid-backend/pkg/enums"
	pkgerrors "github.com/gymgrid/gymgrid-backend/pkg/errors"
)

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func testUser(id int64) *models.User {
	return &models.User{
		ID:        id,
		Email:     "member@gymgrid.test",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Role:      enums.RoleUser,
		IsActive:  true,
		CreatedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestUserOmitsPasswordHash(t *testing.T) {
	u := testUser(7)
	u.PasswordHash = "$argon2id$..."

	view, err := User(u)
	require.NoError(t, err)

	raw, err := json.Marshal(view)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "argon2id")
	assert.NotContains(t, string(raw), "password")
}

func TestUserNullTimestamps(t *testing.T) {
	view, err := User(testUser(7))
	require.NoError(t, err)

	raw, err := json.Marshal(view)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Nil(t, decoded["last_update"])
	assert.Nil(t, decoded["last_login"])
	assert.Equal(t, "2025-03-01T10:00:00Z", decoded["created_at"])
}

func TestUserBinaryPhoto(t *testing.T) {
	u := testUser(7)
	u.Photo = []byte{0x89, 0x50, 0x4e, 0x47}

	view, err := User(u)
	require.NoError(t, err)

	raw, err := json.Marshal(view)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	encoded, ok := decoded["photo"].(string)
	require.True(t, ok)
	got, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	assert.Equal(t, u.Photo, got)
}

func TestUserAbsentPhotoIsNull(t *testing.T) {
	view, err := User(testUser(7))
	require.NoError(t, err)

	raw, err := json.Marshal(view)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Nil(t, decoded["photo"])
}

func TestUserNilEntity(t *testing.T) {
	_, err := User(nil)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeSerialization, typed.Code())
}

func TestOrderWithDetails(t *testing.T) {
	order := &models.Order{
		ID:     42,
		UserID: 7,
		User:   testUser(7),
		Status: enums.OrderStatusPending,
		Total:  decimal.RequireFromString("59.98"),
		Details: []models.OrderDetail{
			{
				ID:        2,
				OrderID:   42,
				ProductID: 11,
				Product:   &models.Product{ID: 11, Name: "Resistance Bands"},
				Quantity:  1,
				UnitPrice: decimal.RequireFromString("19.99"),
			},
			{
				ID:        1,
				OrderID:   42,
				ProductID: 10,
				Product:   &models.Product{ID: 10, Name: "Protein Powder"},
				Quantity:  2,
				UnitPrice: decimal.RequireFromString("39.99"),
			},
		},
	}

	view, err := Order(order)
	require.NoError(t, err)

	require.Len(t, view.Details, 2)
	// Lines come back sorted by id regardless of fetch order.
	assert.Equal(t, int64(1), view.Details[0].ID)
	assert.Equal(t, ProductSummary{ID: 10, Name: "Protein Powder"}, view.Details[0].Product)
	assert.Equal(t, int64(2), view.Details[1].ID)
	assert.Equal(t, ProductSummary{ID: 11, Name: "Resistance Bands"}, view.Details[1].Product)
	assert.Equal(t, UserSummary{ID: 7, Email: "member@gymgrid.test", FirstName: "Ada", LastName: "Lovelace"}, view.User)
	assert.Nil(t, view.Driver)
}

func TestOrderMissingUserFaults(t *testing.T) {
	order := &models.Order{
		ID:     42,
		UserID: 7,
		Status: enums.OrderStatusPending,
		Total:  decimal.Zero,
	}

	view, err := Order(order)
	require.Error(t, err)
	assert.Nil(t, view)

	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeSerialization, typed.Code())
}

func TestOrderMissingDetailProductFaults(t *testing.T) {
	order := &models.Order{
		ID:     42,
		UserID: 7,
		User:   testUser(7),
		Status: enums.OrderStatusPending,
		Total:  decimal.Zero,
		Details: []models.OrderDetail{
			{ID: 1, OrderID: 42, ProductID: 10, Quantity: 1, UnitPrice: decimal.Zero},
		},
	}

	_, err := Order(order)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeSerialization, typed.Code())
}

func TestOrderOptionalDriver(t *testing.T) {
	driverID := int64(3)
	order := &models.Order{
		ID:       42,
		UserID:   7,
		User:     testUser(7),
		Status:   enums.OrderStatusShipped,
		Total:    decimal.Zero,
		DriverID: &driverID,
		Driver:   &models.Driver{ID: 3, FirstName: "Max", LastName: "Verst"},
	}

	view, err := Order(order)
	require.NoError(t, err)
	require.NotNil(t, view.Driver)
	assert.Equal(t, DriverSummary{ID: 3, FirstName: "Max", LastName: "Verst"}, *view.Driver)
}

func TestProductRequiresStore(t *testing.T) {
	product := &models.Product{
		ID:    11,
		Name:  "Protein Powder",
		Price: decimal.RequireFromString("39.99"),
	}

	_, err := Product(product)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeSerialization, typed.Code())
}

func TestProductCategoriesSorted(t *testing.T) {
	product := &models.Product{
		ID:      11,
		Name:    "Protein Powder",
		Price:   decimal.RequireFromString("39.99"),
		StoreID: 5,
		Store:   &models.Store{ID: 5, Name: "Supps"},
		Categories: []models.Category{
			{ID: 9, Name: "Nutrition"},
			{ID: 2, Name: "Featured"},
		},
		IsActive:  true,
		CreatedAt: time.Now(),
	}

	view, err := Product(product)
	require.NoError(t, err)
	require.Len(t, view.Categories, 2)
	assert.Equal(t, int64(2), view.Categories[0].ID)
	assert.Equal(t, int64(9), view.Categories[1].ID)
	assert.Equal(t, StoreSummary{ID: 5, Name: "Supps"}, view.Store)
}

func TestSerializingLeavesEntityCollectionsUntouched(t *testing.T) {
	product := &models.Product{
		ID:      11,
		Name:    "Protein Powder",
		Price:   decimal.RequireFromString("39.99"),
		StoreID: 5,
		Store:   &models.Store{ID: 5, Name: "Supps"},
		Categories: []models.Category{
			{ID: 9, Name: "Nutrition"},
			{ID: 2, Name: "Featured"},
		},
	}

	_, err := Product(product)
	require.NoError(t, err)

	// Ordering on the wire must not reorder the aggregate itself.
	assert.Equal(t, int64(9), product.Categories[0].ID)
	assert.Equal(t, int64(2), product.Categories[1].ID)

	order := &models.Order{
		ID:    21,
		User:  testUser(7),
		Total: decimal.RequireFromString("40.00"),
		Details: []models.OrderDetail{
			{ID: 6, ProductID: 11, Product: &models.Product{ID: 11, Name: "Protein Powder"}, Quantity: 1, UnitPrice: decimal.RequireFromString("39.99")},
			{ID: 4, ProductID: 12, Product: &models.Product{ID: 12, Name: "Shaker"}, Quantity: 1, UnitPrice: decimal.RequireFromString("0.01")},
		},
	}

	view, err := Order(order)
	require.NoError(t, err)
	require.Len(t, view.Details, 2)
	assert.Equal(t, int64(4), view.Details[0].ID)
	assert.Equal(t, int64(6), order.Details[0].ID)
	assert.Equal(t, int64(4), order.Details[1].ID)
}

func TestProductUnloadedCategoriesEmptyArray(t *testing.T) {
	product := &models.Product{
		ID:      11,
		Name:    "Protein Powder",
		Price:   decimal.Zero,
		StoreID: 5,
		Store:   &models.Store{ID: 5, Name: "Supps"},
	}

	view, err := Product(product)
	require.NoError(t, err)

	raw, err := json.Marshal(view)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	categories, ok := decoded["categories"].([]any)
	require.True(t, ok, "categories must encode as an array, not null")
	assert.Empty(t, categories)
}

func TestTrainerOptionalCenter(t *testing.T) {
	trainer := &models.Trainer{
		ID:         4,
		UserID:     7,
		User:       testUser(7),
		HourlyRate: decimal.RequireFromString("45.00"),
		IsActive:   true,
		CreatedAt:  time.Now(),
	}

	view, err := Trainer(trainer)
	require.NoError(t, err)
	assert.Nil(t, view.Center)

	centerID := int64(8)
	trainer.CenterID = &centerID
	trainer.Center = &models.Center{ID: 8, Name: "Downtown Gym"}

	view, err = Trainer(trainer)
	require.NoError(t, err)
	require.NotNil(t, view.Center)
	assert.Equal(t, CenterSummary{ID: 8, Name: "Downtown Gym"}, *view.Center)
}

func TestCenterRequiresPartnerAndSortsTrainers(t *testing.T) {
	center := &models.Center{
		ID:      8,
		Name:    "Downtown Gym",
		Address: "1 Main St",
	}

	_, err := Center(center)
	require.Error(t, err)

	center.PartnerID = 2
	center.Partner = &models.Partner{ID: 2, CompanyName: "FitCo"}
	center.Trainers = []models.Trainer{
		{ID: 5, UserID: 20},
		{ID: 4, UserID: 19},
	}

	view, err := Center(center)
	require.NoError(t, err)
	assert.Equal(t, PartnerSummary{ID: 2, CompanyName: "FitCo"}, view.Partner)
	require.Len(t, view.Trainers, 2)
	assert.Equal(t, int64(4), view.Trainers[0].ID)
	assert.Equal(t, int64(5), view.Trainers[1].ID)
}

func TestSubscriptionRequiresBothRelations(t *testing.T) {
	sub := &models.Subscription{
		ID:       15,
		UserID:   7,
		CenterID: 8,
		Plan:     "monthly",
		Price:    decimal.RequireFromString("29.99"),
		Status:   enums.SubscriptionStatusActive,
		StartsAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	_, err := Subscription(sub)
	require.Error(t, err)

	sub.User = testUser(7)
	_, err = Subscription(sub)
	require.Error(t, err)

	sub.Center = &models.Center{ID: 8, Name: "Downtown Gym"}
	view, err := Subscription(sub)
	require.NoError(t, err)
	assert.Equal(t, "2025-06-01T00:00:00Z", view.StartsAt)
	assert.Nil(t, view.EndsAt)
}

func TestCategoryTagsSorted(t *testing.T) {
	cat := &models.Category{
		ID:   3,
		Name: "Nutrition",
		Tags: []models.Tag{
			{ID: 7, Name: "vegan"},
			{ID: 1, Name: "protein"},
		},
		CreatedAt: time.Now(),
	}

	view, err := Category(cat)
	require.NoError(t, err)
	require.Len(t, view.Tags, 2)
	assert.Equal(t, TagSummary{ID: 1, Name: "protein"}, view.Tags[0])
	assert.Equal(t, TagSummary{ID: 7, Name: "vegan"}, view.Tags[1])
}

func TestStoreChainStopsAtPartnerSummary(t *testing.T) {
	store := &models.Store{
		ID:        5,
		Name:      "Supps",
		PartnerID: 2,
		// The partner's own user relation is not loaded. A full partner
		// serializer would fault; the summary must not care.
		Partner:   &models.Partner{ID: 2, CompanyName: "FitCo"},
		CreatedAt: time.Now(),
	}

	view, err := Store(store)
	require.NoError(t, err)
	assert.Equal(t, PartnerSummary{ID: 2, CompanyName: "FitCo"}, view.Partner)
}

func TestPartnerRequiresUser(t *testing.T) {
	partner := &models.Partner{ID: 2, CompanyName: "FitCo", UserID: 7}

	_, err := Partner(partner)
	require.Error(t, err)

	partner.User = testUser(7)
	view, err := Partner(partner)
	require.NoError(t, err)
	assert.Equal(t, UserSummary{ID: 7, Email: "member@gymgrid.test", FirstName: "Ada", LastName: "Lovelace"}, view.User)
}

func TestDriverNullableFields(t *testing.T) {
	d := &models.Driver{
		ID:         3,
		FirstName:  "Max",
		LastName:   "Verst",
		Phone:      strPtr("+34600000000"),
		IsActive:   true,
		CreatedAt:  time.Now(),
		LastUpdate: timePtr(time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)),
	}

	view, err := Driver(d)
	require.NoError(t, err)
	require.NotNil(t, view.LastUpdate)
	assert.Equal(t, "2025-07-01T12:00:00Z", *view.LastUpdate)
	assert.Nil(t, view.Vehicle)
}
