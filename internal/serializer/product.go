package serializer

import (
	"sort"

	"github.com/gymgrid/gymgrid-backend/pkg/db/models"
	"github.com/gymgrid/gymgrid-backend/pkg/lazy"
	"github.com/shopspring/decimal"
)

// ProductView is the wire representation of a product.
type ProductView struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	Description *string           `json:"description"`
	Price       decimal.Decimal   `json:"price"`
	Stock       int               `json:"stock"`
	Image       []byte            `json:"image"`
	Store       StoreSummary      `json:"store"`
	Categories  []CategorySummary `json:"categories"`
	IsActive    bool              `json:"is_active"`
	CreatedAt   string            `json:"created_at"`
	LastUpdate  *string           `json:"last_update"`
}

// Product flattens a product. The owning store is required; the store's own
// relations (partner, partner user) are never followed from here.
func Product(p *models.Product) (*ProductView, error) {
	if p == nil {
		return nil, errNilEntity("product")
	}

	store, err := lazy.Require(lazy.Loaded(p.Store), "store", "product", p.ID)
	if err != nil {
		return nil, fault("product", p.ID, err)
	}

	view := &ProductView{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		Image:       p.Image,
		Store:       storeSummary(store),
		Categories:  []CategorySummary{},
		IsActive:    p.IsActive,
		CreatedAt:   formatTime(p.CreatedAt),
		LastUpdate:  timeString(p.LastUpdate),
	}

	if loaded, ok := lazy.LoadedSlice(p.Categories).Get(); ok {
		categories := append([]models.Category(nil), loaded...)
		sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })
		for i := range categories {
			view.Categories = append(view.Categories, categorySummary(&categories[i]))
		}
	}

	return view, nil
}
