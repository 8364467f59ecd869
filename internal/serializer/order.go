package serializer

import (
	"sort"

	"github.com/gymgrid/gymgrid-backend/pkg/db/models"
	"github.com/gymgrid/gymgrid-backend/pkg/enums"
	"github.com/gymgrid/gymgrid-backend/pkg/lazy"
	"github.com/shopspring/decimal"
)

// OrderView is the wire representation of an order.
type OrderView struct {
	ID         int64             `json:"id"`
	User       UserSummary       `json:"user"`
	Status     enums.OrderStatus `json:"status"`
	Total      decimal.Decimal   `json:"total"`
	Address    *string           `json:"address"`
	Driver     *DriverSummary    `json:"driver"`
	Details    []OrderDetailView `json:"details"`
	Date       *string           `json:"date"`
	LastUpdate *string           `json:"last_update"`
}

// OrderDetailView is one product line inside an order. The product rides as
// a bounded summary, never its full relationship graph.
type OrderDetailView struct {
	ID        int64           `json:"id"`
	Product   ProductSummary  `json:"product"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// Order flattens an order. The buying user is a required relation; the
// driver is optional. Each detail line requires its product to be loaded.
func Order(o *models.Order) (*OrderView, error) {
	if o == nil {
		return nil, errNilEntity("order")
	}

	user, err := lazy.Require(lazy.Loaded(o.User), "user", "order", o.ID)
	if err != nil {
		return nil, fault("order", o.ID, err)
	}

	view := &OrderView{
		ID:         o.ID,
		User:       userSummary(user),
		Status:     o.Status,
		Total:      o.Total,
		Address:    o.Address,
		Details:    []OrderDetailView{},
		Date:       timeString(o.Date),
		LastUpdate: timeString(o.LastUpdate),
	}

	if driver, ok := lazy.Loaded(o.Driver).Get(); ok {
		summary := driverSummary(driver)
		view.Driver = &summary
	}

	loaded, ok := lazy.LoadedSlice(o.Details).Get()
	if ok {
		details := append([]models.OrderDetail(nil), loaded...)
		sort.Slice(details, func(i, j int) bool { return details[i].ID < details[j].ID })
		for i := range details {
			detail := &details[i]
			product, err := lazy.Require(lazy.Loaded(detail.Product), "product", "order_detail", detail.ID)
			if err != nil {
				return nil, fault("order", o.ID, err)
			}
			view.Details = append(view.Details, OrderDetailView{
				ID:        detail.ID,
				Product:   productSummary(product),
				Quantity:  detail.Quantity,
				UnitPrice: detail.UnitPrice,
			})
		}
	}

	return view, nil
}
