package orders

import (
	"context"
	"time"

	"github.com/gymgrid/gymgrid-backend/pkg/db/models"
	"github.com/gymgrid/gymgrid-backend/pkg/enums"
	"github.com/gymgrid/gymgrid-backend/pkg/pagination"
	"gorm.io/gorm"
)

// Repository handles order persistence. Reads preload the buyer, the
// optional driver and every detail line's product.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to order operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func withOrderGraph(query *gorm.DB) *gorm.DB {
	return query.
		Preload("User").
		Preload("Driver").
		Preload("Details").
		Preload("Details.Product")
}

// Create persists an order together with its detail lines.
func (r *Repository) Create(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// FindByID loads an order with its full serializable graph.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Order, error) {
	var order models.Order
	if err := withOrderGraph(r.db.WithContext(ctx)).
		First(&order, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// ListByUser returns a user's orders after the cursor, ordered by id.
func (r *Repository) ListByUser(ctx context.Context, userID int64, cursor *pagination.Cursor, limit int) ([]models.Order, error) {
	query := withOrderGraph(r.db.WithContext(ctx)).
		Where("user_id = ?", userID).
		Order("id").
		Limit(limit)
	if cursor != nil {
		query = query.Where("id > ?", cursor.ID)
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ListByDriver returns orders assigned to the driver, ordered by id.
func (r *Repository) ListByDriver(ctx context.Context, driverID int64) ([]models.Order, error) {
	var orders []models.Order
	if err := withOrderGraph(r.db.WithContext(ctx)).
		Where("driver_id = ?", driverID).
		Order("id").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateStatus moves the order to the given status and stamps last_update.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status enums.OrderStatus) error {
	result := r.db.WithContext(ctx).
		Model(&models.Order{}).
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

// AssignDriver sets the driver on an unassigned order.
func (r *Repository) AssignDriver(ctx context.Context, id, driverID int64) error {
	result := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ? AND driver_id IS NULL", id).
		UpdateColumns(map[string]any{
			"driver_id":   driverID,
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
