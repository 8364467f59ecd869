package controllers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/gymgrid/gymgrid-backend/api/middleware"
	"github.com/gymgrid/gymgrid-backend/api/responses"
	"github.com/gymgrid/gymgrid-backend/api/validators"
	"github.com/gymgrid/gymgrid-backend/internal/centers"
	"github.com/gymgrid/gymgrid-backend/internal/serializer"
	"github.com/gymgrid/gymgrid-backend/internal/subscriptions"
	"github.com/gymgrid/gymgrid-backend/pkg/db/models"
	"github.com/gymgrid/gymgrid-backend/pkg/enums"
	pkgerrors "github.com/gymgrid/gymgrid-backend/pkg/errors"
	"github.com/gymgrid/gymgrid-backend/pkg/logger"
)

type createSubscriptionRequest struct {
	CenterID int64  `json:"center_id" validate:"required,gt=0"`
	Plan     string `json:"plan" validate:"required,min=2,max=64"`
	Price    string `json:"price" validate:"required"`
}

// ListMySubscriptions returns the caller's plans across all centers.
func ListMySubscriptions(repo *subscriptions.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.CurrentUserID(r.Context())
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required"))
			return
		}

		rows, err := repo.ListByUser(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, mapLookupErr(err, "subscriptions"))
			return
		}

		views, err := serializeAll(rows, serializer.Subscription)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, views)
	}
}

// GetSubscription returns one plan, visible to its owner and to admins.
func GetSubscription(repo *subscriptions.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.PathID(chi.URLParam(r, "subscriptionId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		sub, err := repo.FindByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, mapLookupErr(err, "subscription"))
			return
		}

		userID, _ := middleware.CurrentUserID(r.Context())
		if sub.UserID != userID && !middleware.IsAdmin(r.Context()) {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "subscription not found"))
			return
		}

		view, err := serializer.Subscription(sub)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// CreateSubscription signs the caller up for a plan at a center.
func CreateSubscription(repo *subscriptions.Repository, centerRepo *centers.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.CurrentUserID(r.Context())
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required"))
			return
		}

		var payload createSubscriptionRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		price, err := decimal.NewFromString(payload.Price)
		if err != nil || price.IsNegative() {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid price").
				WithDetails(map[string]any{"price": payload.Price}))
			return
		}

		if _, err := centerRepo.FindByID(r.Context(), payload.CenterID); err != nil {
			responses.WriteError(r.Context(), logg, w, mapLookupErr(err, "center"))
			return
		}

		sub := &models.Subscription{
			UserID:   userID,
			CenterID: payload.CenterID,
			Plan:     payload.Plan,
			Price:    price,
			Status:   enums.SubscriptionStatusActive,
			StartsAt: time.Now().UTC(),
		}
		if err := repo.Create(r.Context(), sub); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create subscription"))
			return
		}

		created, err := repo.FindByID(r.Context(), sub.ID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, mapLookupErr(err, "subscription"))
			return
		}
		view, err := serializer.Subscription(created)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, view)
	}
}

// CancelSubscription cancels a plan. Owners cancel their own; admins any.
func CancelSubscription(repo *subscriptions.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.PathID(chi.URLParam(r, "subscriptionId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		sub, err := repo.FindByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, mapLookupErr(err, "subscription"))
			return
		}

		userID, _ := middleware.CurrentUserID(r.Context())
		if sub.UserID != userID && !middleware.IsAdmin(r.Context()) {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "subscription not found"))
			return
		}

		if err := repo.UpdateStatus(r.Context(), id, enums.SubscriptionStatusCanceled); err != nil {
			responses.WriteError(r.Context(), logg, w, mapLookupErr(err, "subscription"))
			return
		}

		canceled, err := repo.FindByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, mapLookupErr(err, "subscription"))
			return
		}
		view, err := serializer.Subscription(canceled)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}
