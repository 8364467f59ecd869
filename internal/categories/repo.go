package categories

import (
	"context"

	"github.com/gymgrid/gymgrid-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository handles category and tag persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to category operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new category, including any attached tags.
func (r *Repository) Create(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

// FindByID loads a category with its tags.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).
		Preload("Tags").
		First(&category, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// List returns every category with its tags, ordered by id. The catalog is
// small enough that categories are not paginated.
func (r *Repository) List(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.WithContext(ctx).
		Preload("Tags").
		Order("id").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Update saves the provided category.
func (r *Repository) Update(ctx context.Context, category *models.Category) error {
	if category == nil {
		return gorm.ErrInvalidValue
	}
	return r.db.WithContext(ctx).Save(category).Error
}
