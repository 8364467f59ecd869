package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gymgrid/gymgrid-backend/api/responses"
	"github.com/gymgrid/gymgrid-backend/api/validators"
	"github.com/gymgrid/gymgrid-backend/internal/centers"
	"github.com/gymgrid/gymgrid-backend/internal/serializer"
	"github.com/gymgrid/gymgrid-backend/internal/subscriptions"
	"github.com/gymgrid/gymgrid-backend/pkg/logger"
	"github.com/gymgrid/gymgrid-backend/pkg/pagination"
)

func ListCenters(repo *centers.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cursor, limit, err := pageInputs(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		rows, err := repo.List(r.Context(), cursor, pagination.LimitWithBuffer(limit))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, mapLookupErr(err, "centers"))
			return
		}

		hasMore := len(rows) > limit
		if hasMore {
			rows = rows[:limit]
		}
		views, err := serializeAll(rows, serializer.Center)
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

func GetCenter(repo *centers.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.PathID(chi.URLParam(r, "centerId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		center, err := repo.FindByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, mapLookupErr(err, "center"))
			return
		}

		view, err := serializer.Center(center)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// ListCenterSubscriptions exposes a center's member plans. Route-level role
// checks restrict this to staff.
func ListCenterSubscriptions(centerRepo *centers.Repository, subRepo *subscriptions.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.PathID(chi.URLParam(r, "centerId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if _, err := centerRepo.FindByID(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, mapLookupErr(err, "center"))
			return
		}

		rows, err := subRepo.ListByCenter(r.Context(), id)
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
