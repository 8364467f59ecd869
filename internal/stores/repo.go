package stores

import (
	"context"

	"github.com/gymgrid/gymgrid-backend/pkg/db/models"
	"github.com/gymgrid/gymgrid-backend/pkg/pagination"
	"gorm.io/gorm"
)

// Repository handles store persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to store operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new store row.
func (r *Repository) Create(ctx context.Context, store *models.Store) error {
	return r.db.WithContext(ctx).Create(store).Error
}

// FindByID loads a store with its owning partner.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Store, error) {
	var store models.Store
	if err := r.db.WithContext(ctx).
		Preload("Partner").
		First(&store, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

// List returns active stores after the cursor, ordered by id.
func (r *Repository) List(ctx context.Context, cursor *pagination.Cursor, limit int) ([]models.Store, error) {
	query := r.db.WithContext(ctx).
		Preload("Partner").
		Where("is_active = ?", true).
		Order("id").
		Limit(limit)
	if cursor != nil {
		query = query.Where("id > ?", cursor.ID)
	}

	var stores []models.Store
	if err := query.Find(&stores).Error; err != nil {
		return nil, err
	}
	return stores, nil
}

// ListByPartner returns every store belonging to the partner.
func (r *Repository) ListByPartner(ctx context.Context, partnerID int64) ([]models.Store, error) {
	var stores []models.Store
	if err := r.db.WithContext(ctx).
		Preload("Partner").
		Where("partner_id = ?", partnerID).
		Order("id").
		Find(&stores).Error; err != nil {
		return nil, err
	}
	return stores, nil
}

// Update saves the provided store.
func (r *Repository) Update(ctx context.Context, store *models.Store) error {
	if store == nil {
		return gorm.ErrInvalidValue
	}
	return r.db.WithContext(ctx).Save(store).Error
}
