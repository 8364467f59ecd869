package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gymgrid/gymgrid-backend/api/middleware"
	"github.com/gymgrid/gymgrid-backend/api/responses"
	"github.com/gymgrid/gymgrid-backend/api/validators"
	"github.com/gymgrid/gymgrid-backend/internal/orders"
	"github.com/gymgrid/gymgrid-backend/internal/serializer"
	"github.com/gymgrid/gymgrid-backend/pkg/db"
	"github.com/gymgrid/gymgrid-backend/pkg/enums"
	pkgerrors "github.com/gymgrid/gymgrid-backend/pkg/errors"
	"github.com/gymgrid/gymgrid-backend/pkg/logger"
	"github.com/gymgrid/gymgrid-backend/pkg/pagination"
)

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type assignDriverRequest struct {
	DriverID int64 `json:"driver_id" validate:"required,gt=0"`
}

// ListMyOrders returns the caller's order history.
func ListMyOrders(repo *orders.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.CurrentUserID(r.Context())
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required"))
			return
		}

		cursor, limit, err := pageInputs(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		rows, err := repo.ListByUser(r.Context(), userID, cursor, pagination.LimitWithBuffer(limit))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, mapLookupErr(err, "orders"))
			return
		}

		hasMore := len(rows) > limit
		if hasMore {
			rows = rows[:limit]
		}
		views, err := serializeAll(rows, serializer.Order)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var lastID int64
		if len(rows) > 0 {
			lastID = rows[len(rows)-1].ID
		}
		responses.WriteSuccess(w, newListPage(views, lastID, hasMore))
	}
}

// GetOrder returns one order. Owners see their own; admins see all. Other
// callers get a 404 rather than confirming the order exists.
func GetOrder(repo *orders.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.PathID(chi.URLParam(r, "orderId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := repo.FindByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, mapLookupErr(err, "order"))
			return
		}

		userID, _ := middleware.CurrentUserID(r.Context())
		if order.UserID != userID && !middleware.IsAdmin(r.Context()) {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "order not found"))
			return
		}

		view, err := serializer.Order(order)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// UpdateOrderStatus moves an order through its lifecycle. Admin only at the
// route level.
func UpdateOrderStatus(repo *orders.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.PathID(chi.URLParam(r, "orderId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateOrderStatusRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		status := enums.OrderStatus(payload.Status)
		if !status.IsValid() {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "unknown order status").
				WithDetails(map[string]any{"status": payload.Status}))
			return
		}

		if err := repo.UpdateStatus(r.Context(), id, status); err != nil {
			responses.WriteError(r.Context(), logg, w, mapLookupErr(err, "order"))
			return
		}

		order, err := repo.FindByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, mapLookupErr(err, "order"))
			return
		}
		view, err := serializer.Order(order)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// AssignOrderDriver attaches a driver to an unassigned order.
func AssignOrderDriver(repo *orders.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.PathID(chi.URLParam(r, "orderId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload assignDriverRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := repo.AssignDriver(r.Context(), id, payload.DriverID); err != nil {
			if db.IsNotFound(err) {
				// Either the order does not exist or it already has a driver.
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "order unavailable for assignment"))
				return
			}
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "assign driver"))
			return
		}

		order, err := repo.FindByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, mapLookupErr(err, "order"))
			return
		}
		view, err := serializer.Order(order)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}
