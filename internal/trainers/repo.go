package trainers

import (
	"context"

	"github.com/gymgrid/gymgrid-backend/pkg/db/models"
	"github.com/gymgrid/gymgrid-backend/pkg/pagination"
	"gorm.io/gorm"
)

// Repository handles trainer persistence. Reads preload the account user
// and the employing center.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to trainer operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new trainer profile.
func (r *Repository) Create(ctx context.Context, trainer *models.Trainer) error {
	return r.db.WithContext(ctx).Create(trainer).Error
}

// FindByID loads a trainer with its user and center.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Trainer, error) {
	var trainer models.Trainer
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Center").
		First(&trainer, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &trainer, nil
}

// FindByUserID loads the trainer profile behind a user account.
func (r *Repository) FindByUserID(ctx context.Context, userID int64) (*models.Trainer, error) {
	var trainer models.Trainer
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Center").
		First(&trainer, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &trainer, nil
}

// List returns active trainers after the cursor, ordered by id.
func (r *Repository) List(ctx context.Context, cursor *pagination.Cursor, limit int) ([]models.Trainer, error) {
	query := r.db.WithContext(ctx).
		Preload("User").
		Preload("Center").
		Where("is_active = ?", true).
		Order("id").
		Limit(limit)
	if cursor != nil {
		query = query.Where("id > ?", cursor.ID)
	}

	var trainers []models.Trainer
	if err := query.Find(&trainers).Error; err != nil {
		return nil, err
	}
	return trainers, nil
}

// Update saves the provided trainer.
func (r *Repository) Update(ctx context.Context, trainer *models.Trainer) error {
	if trainer == nil {
		return gorm.ErrInvalidValue
	}
	return r.db.WithContext(ctx).Save(trainer).Error
}

// AssignCenter attaches the trainer to a center.
func (r *Repository) AssignCenter(ctx context.Context, id, centerID int64) error {
	result := r.db.WithContext(ctx).
		Model(&models.Trainer{}).
		Where("id = ?", id).
		UpdateColumn("center_id", centerID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
