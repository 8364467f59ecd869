// Package controllers holds the HTTP handlers. Handlers decode and validate
// input, call services or repositories, serialize the result and hand it to
// the shared response writer. Authorization beyond route-level role checks
// happens here, next to the data it guards.
package controllers

import (
	"net/http"

	"github.com/gymgrid/gymgrid-backend/api/validators"
	"github.com/gymgrid/gymgrid-backend/pkg/db"
	pkgerrors "github.com/gymgrid/gymgrid-backend/pkg/errors"
	"github.com/gymgrid/gymgrid-backend/pkg/pagination"
)

// listPage is the common paginated listing envelope.
type listPage struct {
	Items      any     `json:"items"`
	NextCursor *string `json:"next_cursor"`
}

func newListPage(items any, lastID int64, hasMore bool) listPage {
	page := listPage{Items: items}
	if hasMore {
		cursor := pagination.EncodeCursor(pagination.Cursor{ID: lastID})
		page.NextCursor = &cursor
	}
	return page
}

// pageInputs reads cursor and limit from the query string and normalizes the
// limit. The returned limit is the page size, not the buffered query limit.
func pageInputs(r *http.Request) (*pagination.Cursor, int, error) {
	params, err := validators.PaginationParams(r)
	if err != nil {
		return nil, 0, err
	}
	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, 0, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
	}
	return cursor, pagination.NormalizeLimit(params.Limit), nil
}

// serializeAll maps rows through a serializer, failing the whole page on the
// first fault. A partially serialized page never leaves the handler.
func serializeAll[M any, V any](rows []M, serialize func(*M) (*V, error)) ([]*V, error) {
	views := make([]*V, 0, len(rows))
	for i := range rows {
		view, err := serialize(&rows[i])
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// mapLookupErr converts repository errors from point lookups into API
// errors without leaking driver details.
func mapLookupErr(err error, resource string) error {
	if db.IsNotFound(err) {
		return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, resource+" not found")
	}
	return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load "+resource)
}
