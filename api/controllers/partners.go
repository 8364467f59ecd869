package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gymgrid/gymgrid-backend/api/middleware"
	"github.com/gymgrid/gymgrid-backend/api/responses"
	"github.com/gymgrid/gymgrid-backend/api/validators"
	"github.com/gymgrid/gymgrid-backend/internal/partners"
	"github.com/gymgrid/gymgrid-backend/internal/serializer"
	pkgerrors "github.com/gymgrid/gymgrid-backend/pkg/errors"
	"github.com/gymgrid/gymgrid-backend/pkg/logger"
	"github.com/gymgrid/gymgrid-backend/pkg/pagination"
)

// MyPartner returns the partner record bound to the caller's account.
func MyPartner(repo *partners.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.CurrentUserID(r.Context())
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required"))
			return
		}

		partner, err := repo.FindByUserID(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, mapLookupErr(err, "partner profile"))
			return
		}

		view, err := serializer.Partner(partner)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

func ListPartners(repo *partners.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cursor, limit, err := pageInputs(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		rows, err := repo.List(r.Context(), cursor, pagination.LimitWithBuffer(limit))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, mapLookupErr(err, "partners"))
			return
		}

		hasMore := len(rows) > limit
		if hasMore {
			rows = rows[:limit]
		}
		views, err := serializeAll(rows, serializer.Partner)
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

func GetPartner(repo *partners.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.PathID(chi.URLParam(r, "partnerId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		partner, err := repo.FindByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, mapLookupErr(err, "partner"))
			return
		}

		view, err := serializer.Partner(partner)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}
