package centers

import (
	"context"

	"github.com/gymgrid/gymgrid-backend/pkg/db/models"
	"github.com/gymgrid/gymgrid-backend/pkg/pagination"
	"gorm.io/gorm"
)

// Repository handles center persistence. Reads preload the owning partner
// and the employed trainers.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to center operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new center row.
func (r *Repository) Create(ctx context.Context, center *models.Center) error {
	return r.db.WithContext(ctx).Create(center).Error
}

// FindByID loads a center with its partner and trainer roster.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Center, error) {
	var center models.Center
	if err := r.db.WithContext(ctx).
		Preload("Partner").
		Preload("Trainers").
		First(&center, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &center, nil
}

// List returns active centers after the cursor, ordered by id.
func (r *Repository) List(ctx context.Context, cursor *pagination.Cursor, limit int) ([]models.Center, error) {
	query := r.db.WithContext(ctx).
		Preload("Partner").
		Preload("Trainers").
		Where("is_active = ?", true).
		Order("id").
		Limit(limit)
	if cursor != nil {
		query = query.Where("id > ?", cursor.ID)
	}

	var centers []models.Center
	if err := query.Find(&centers).Error; err != nil {
		return nil, err
	}
	return centers, nil
}

// ListByPartner returns every center belonging to the partner.
func (r *Repository) ListByPartner(ctx context.Context, partnerID int64) ([]models.Center, error) {
	var centers []models.Center
	if err := r.db.WithContext(ctx).
		Preload("Partner").
		Preload("Trainers").
		Where("partner_id = ?", partnerID).
		Order("id").
		Find(&centers).Error; err != nil {
		return nil, err
	}
	return centers, nil
}

// Update saves the provided center.
func (r *Repository) Update(ctx context.Context, center *models.Center) error {
	if center == nil {
		return gorm.ErrInvalidValue
	}
	return r.db.WithContext(ctx).Save(center).Error
}
