// Package lazy models associations that may not have been fetched together
// with their root entity. A Ref is either loaded or not; serializers unwrap
// it exactly once at their entry point and hand concrete values to nested
// summary builders.
package lazy

import "fmt"

// Ref wraps an association pointer fetched (or not) at the repository
// boundary.
type Ref[T any] struct {
	value *T
}

// Loaded wraps a fetched association. A nil pointer still counts as not
// loaded.
func Loaded[T any](v *T) Ref[T] {
	return Ref[T]{value: v}
}

// NotLoaded returns an empty reference.
func NotLoaded[T any]() Ref[T] {
	return Ref[T]{}
}

// Get returns the underlying value and whether it was loaded.
func (r Ref[T]) Get() (*T, bool) {
	if r.value == nil {
		return nil, false
	}
	return r.value, true
}

// IsLoaded reports whether the association was fetched.
func (r Ref[T]) IsLoaded() bool {
	return r.value != nil
}

// Require returns the underlying value or an error naming the entity and id
// it hangs off. Callers treat the error as a serialization fault.
func Require[T any](r Ref[T], relation, entity string, id int64) (*T, error) {
	v, ok := r.Get()
	if !ok {
		return nil, fmt.Errorf("%s %d: relation %s not loaded", entity, id, relation)
	}
	return v, nil
}

// Slice wraps a fetched collection. Nil slices mean the collection was never
// loaded; empty non-nil slices mean it was loaded and is empty.
type Slice[T any] struct {
	values []T
	loaded bool
}

// LoadedSlice wraps a fetched collection.
func LoadedSlice[T any](values []T) Slice[T] {
	if values == nil {
		return Slice[T]{}
	}
	return Slice[T]{values: values, loaded: true}
}

// Get returns the collection and whether it was loaded.
func (s Slice[T]) Get() ([]T, bool) {
	return s.values, s.loaded
}
