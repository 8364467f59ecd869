package lazy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	Name string
}

func TestLoadedRef(t *testing.T) {
	ref := Loaded(&widget{Name: "bench press"})
	v, ok := ref.Get()
	require.True(t, ok)
	assert.Equal(t, "bench press", v.Name)
	assert.True(t, ref.IsLoaded())
}

func TestNilPointerIsNotLoaded(t *testing.T) {
	var w *widget
	ref := Loaded(w)
	_, ok := ref.Get()
	assert.False(t, ok)
	assert.False(t, ref.IsLoaded())
}

func TestRequireFaultsOnMissingRelation(t *testing.T) {
	_, err := Require(NotLoaded[widget](), "user", "order", 42)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "order 42")
	assert.Contains(t, err.Error(), "relation user not loaded")
}

func TestLoadedSliceDistinguishesEmptyFromMissing(t *testing.T) {
	_, ok := LoadedSlice[widget](nil).Get()
	assert.False(t, ok)

	vals, ok := LoadedSlice([]widget{}).Get()
	require.True(t, ok)
	assert.Empty(t, vals)
}
