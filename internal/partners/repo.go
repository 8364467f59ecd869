package partners

import (
	"context"

	"github.com/gymgrid/gymgrid-backend/pkg/db/models"
	"github.com/gymgrid/gymgrid-backend/pkg/pagination"
	"gorm.io/gorm"
)

// Repository handles partner persistence. Reads preload the owning user.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to partner operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new partner row.
func (r *Repository) Create(ctx context.Context, partner *models.Partner) error {
	return r.db.WithContext(ctx).Create(partner).Error
}

// FindByID loads a partner with its user.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Partner, error) {
	var partner models.Partner
	if err := r.db.WithContext(ctx).
		Preload("User").
		First(&partner, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &partner, nil
}

// FindByUserID loads the partner profile behind a user account.
func (r *Repository) FindByUserID(ctx context.Context, userID int64) (*models.Partner, error) {
	var partner models.Partner
	if err := r.db.WithContext(ctx).
		Preload("User").
		First(&partner, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &partner, nil
}

// List returns active partners after the cursor, ordered by id.
func (r *Repository) List(ctx context.Context, cursor *pagination.Cursor, limit int) ([]models.Partner, error) {
	query := r.db.WithContext(ctx).
		Preload("User").
		Where("is_active = ?", true).
		Order("id").
		Limit(limit)
	if cursor != nil {
		query = query.Where("id > ?", cursor.ID)
	}

	var partners []models.Partner
	if err := query.Find(&partners).Error; err != nil {
		return nil, err
	}
	return partners, nil
}

// Update saves the provided partner.
func (r *Repository) Update(ctx context.Context, partner *models.Partner) error {
	if partner == nil {
		return gorm.ErrInvalidValue
	}
	return r.db.WithContext(ctx).Save(partner).Error
}
