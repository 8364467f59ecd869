package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gymgrid/gymgrid-backend/api/responses"
	"github.com/gymgrid/gymgrid-backend/api/validators"
	"github.com/gymgrid/gymgrid-backend/internal/categories"
	"github.com/gymgrid/gymgrid-backend/internal/serializer"
	"github.com/gymgrid/gymgrid-backend/pkg/logger"
)

// ListCategories returns the full category tree. The set is small and
// changes rarely, so no cursor.
func ListCategories(repo *categories.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := repo.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, mapLookupErr(err, "categories"))
			return
		}

		views, err := serializeAll(rows, serializer.Category)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, views)
	}
}

func GetCategory(repo *categories.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.PathID(chi.URLParam(r, "categoryId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		category, err := repo.FindByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, mapLookupErr(err, "category"))
			return
		}

		view, err := serializer.Category(category)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}
