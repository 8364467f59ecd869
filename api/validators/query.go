package validators

import (
	"net/http"
	"strconv"

	pkgerrors "github.com/gymgrid/gymgrid-backend/pkg/errors"
	"github.com/gymgrid/gymgrid-backend/pkg/pagination"
)

// PaginationParams pulls limit and cursor from the query string.
func PaginationParams(r *http.Request) (pagination.Params, error) {
	params := pagination.Params{Cursor: r.URL.Query().Get("cursor")}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return params, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid limit").
				WithDetails(map[string]any{"limit": raw})
		}
		params.Limit = limit
	}
	return params, nil
}

// PathID parses a positive numeric path parameter.
func PathID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "invalid id").
			WithDetails(map[string]any{"id": raw})
	}
	return id, nil
}
