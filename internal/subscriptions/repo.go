package subscriptions

import (
	"context"
	"time"

	"github.com/gymgrid/gymgrid-backend/pkg/db/models"
	"github.com/gymgrid/gymgrid-backend/pkg/enums"
	"gorm.io/gorm"
)

// Repository handles subscription persistence. Reads preload the member and
// the center so both required relations serialize.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to subscription operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new subscription row.
func (r *Repository) Create(ctx context.Context, sub *models.Subscription) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

// FindByID loads a subscription with its member and center.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Subscription, error) {
	var sub models.Subscription
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Center").
		First(&sub, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

// ListByUser returns a member's subscriptions ordered by id.
func (r *Repository) ListByUser(ctx context.Context, userID int64) ([]models.Subscription, error) {
	var subs []models.Subscription
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Center").
		Where("user_id = ?", userID).
		Order("id").
		Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

// ListByCenter returns a center's subscriptions ordered by id.
func (r *Repository) ListByCenter(ctx context.Context, centerID int64) ([]models.Subscription, error) {
	var subs []models.Subscription
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Center").
		Where("center_id = ?", centerID).
		Order("id").
		Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

// UpdateStatus moves the subscription to the given status.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status enums.SubscriptionStatus) error {
	result := r.db.WithContext(ctx).
		Model(&models.Subscription{}).
		Where("id = ?", id).
		UpdateColumns(map[string]any{
			"status":      status,
			"last_update": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ExpireOverdue flips active subscriptions whose end date has passed.
func (r *Repository) ExpireOverdue(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Subscription{}).
		Where("status = ? AND ends_at IS NOT NULL AND ends_at < ?", enums.SubscriptionStatusActive, now).
		UpdateColumns(map[string]any{
			"status":      enums.SubscriptionStatusExpired,
			"last_update": now,
		})
	return result.RowsAffected, result.Error
}
