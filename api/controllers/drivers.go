package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gymgrid/gymgrid-backend/api/responses"
	"github.com/gymgrid/gymgrid-backend/api/validators"
	"github.com/gymgrid/gymgrid-backend/internal/drivers"
	"github.com/gymgrid/gymgrid-backend/internal/serializer"
	"github.com/gymgrid/gymgrid-backend/pkg/logger"
	"github.com/gymgrid/gymgrid-backend/pkg/pagination"
)

func ListDrivers(repo *drivers.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cursor, limit, err := pageInputs(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		rows, err := repo.List(r.Context(), cursor, pagination.LimitWithBuffer(limit))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, mapLookupErr(err, "drivers"))
			return
		}

		hasMore := len(rows) > limit
		if hasMore {
			rows = rows[:limit]
		}
		views, err := serializeAll(rows, serializer.Driver)
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

func GetDriver(repo *drivers.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.PathID(chi.URLParam(r, "driverId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		driver, err := repo.FindByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, mapLookupErr(err, "driver"))
			return
		}

		view, err := serializer.Driver(driver)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}
