package drivers

import (
	"context"

	"github.com/gymgrid/gymgrid-backend/pkg/db/models"
	"github.com/gymgrid/gymgrid-backend/pkg/pagination"
	"gorm.io/gorm"
)

// Repository handles driver persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to driver operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new driver row.
func (r *Repository) Create(ctx context.Context, driver *models.Driver) error {
	return r.db.WithContext(ctx).Create(driver).Error
}

// FindByID loads a driver.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Driver, error) {
	var driver models.Driver
	if err := r.db.WithContext(ctx).First(&driver, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &driver, nil
}

// List returns active drivers after the cursor, ordered by id.
func (r *Repository) List(ctx context.Context, cursor *pagination.Cursor, limit int) ([]models.Driver, error) {
	query := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id").
		Limit(limit)
	if cursor != nil {
		query = query.Where("id > ?", cursor.ID)
	}

	var drivers []models.Driver
	if err := query.Find(&drivers).Error; err != nil {
		return nil, err
	}
	return drivers, nil
}

// Update saves the provided driver.
func (r *Repository) Update(ctx context.Context, driver *models.Driver) error {
	if driver == nil {
		return gorm.ErrInvalidValue
	}
	return r.db.WithContext(ctx).Save(driver).Error
}
