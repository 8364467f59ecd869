// Package serializer flattens persistent aggregates into their wire views.
//
// Every full serializer unwraps its associations exactly once, at its entry
// point, via pkg/lazy. Referenced aggregates are emitted through bounded
// summary builders (id plus minimal display fields), which keeps traversal
// to one extra hop no matter how deep the relational graph goes. Summary
// builders receive already-concrete values and do not re-check loadedness.
//
// A missing required relation is a serialization fault: the whole response
// is aborted, nothing partial is written.
package serializer

import (
	"fmt"
	"time"

	pkgerrors "github.com/gymgrid/gymgrid-backend/pkg/errors"
)

// timeString renders a timestamp in RFC3339. Nil stays nil so the encoder
// emits an explicit JSON null instead of panicking on absent dates.
func timeString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

func fault(entity string, id int64, err error) error {
	return pkgerrors.Wrap(pkgerrors.CodeSerialization, err, fmt.Sprintf("serialize %s %d", entity, id)).
		WithDetails(map[string]any{"entity": entity, "id": id})
}

func errNilEntity(entity string) error {
	return pkgerrors.New(pkgerrors.CodeSerialization, fmt.Sprintf("serialize %s: nil entity", entity))
}
