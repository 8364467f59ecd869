package products

import (
	"context"

	"github.com/gymgrid/gymgrid-backend/pkg/db/models"
	"github.com/gymgrid/gymgrid-backend/pkg/pagination"
	"gorm.io/gorm"
)

// Repository handles product persistence. Reads preload the store and the
// category set so the serializer never faults on a required relation.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to product operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new product row.
func (r *Repository) Create(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// FindByID loads a product with its store and categories.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).
		Preload("Store").
		Preload("Categories").
		First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// List returns active products after the cursor, ordered by id. Callers pass
// a buffered limit to detect the next page.
func (r *Repository) List(ctx context.Context, cursor *pagination.Cursor, limit int) ([]models.Product, error) {
	query := r.db.WithContext(ctx).
		Preload("Store").
		Preload("Categories").
		Where("is_active = ?", true).
		Order("id").
		Limit(limit)
	if cursor != nil {
		query = query.Where("id > ?", cursor.ID)
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ListByStore returns a store's products ordered by id.
func (r *Repository) ListByStore(ctx context.Context, storeID int64) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).
		Preload("Store").
		Preload("Categories").
		Where("store_id = ?", storeID).
		Order("id").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Update saves the provided product.
func (r *Repository) Update(ctx context.Context, product *models.Product) error {
	if product == nil {
		return gorm.ErrInvalidValue
	}
	return r.db.WithContext(ctx).Save(product).Error
}

// AdjustStock decrements stock atomically and fails when it would go
// negative.
func (r *Repository) AdjustStock(ctx context.Context, id int64, delta int) error {
	result := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ? AND stock + ? >= 0", id, delta).
		UpdateColumn("stock", gorm.Expr("stock + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
