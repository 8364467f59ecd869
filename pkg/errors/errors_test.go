package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadataForKnownCodes(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, MetadataFor(CodeUnauthorized).HTTPStatus)
	assert.Equal(t, http.StatusForbidden, MetadataFor(CodeForbidden).HTTPStatus)
	assert.Equal(t, http.StatusInternalServerError, MetadataFor(CodeSerialization).HTTPStatus)
	assert.False(t, MetadataFor(CodeSerialization).Retryable)
}

func TestMetadataForUnknownCodeFallsBackToInternal(t *testing.T) {
	meta := MetadataFor(Code("NOPE"))
	assert.Equal(t, http.StatusInternalServerError, meta.HTTPStatus)
	assert.Equal(t, "internal server error", meta.PublicMessage)
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stdErrors.New("boom")
	err := Wrap(CodeDependency, cause, "ping redis")
	require.ErrorIs(t, err, cause)
	assert.Equal(t, CodeDependency, err.Code())
	assert.Equal(t, "DEPENDENCY_ERROR: ping redis", err.Error())
}

func TestAsFindsTypedErrorInChain(t *testing.T) {
	inner := New(CodeNotFound, "user missing")
	wrapped := fmt.Errorf("load principal: %w", inner)
	typed := As(wrapped)
	require.NotNil(t, typed)
	assert.Equal(t, CodeNotFound, typed.Code())
}

func TestAsReturnsNilForUntyped(t *testing.T) {
	assert.Nil(t, As(stdErrors.New("plain")))
	assert.Nil(t, As(nil))
}

func TestDumpCollectsChain(t *testing.T) {
	err := Wrap(CodeSerialization, stdErrors.New("relation not loaded"), "serialize order")
	dump := Dump(err)
	assert.Equal(t, CodeSerialization, dump.Code)
	assert.Len(t, dump.Chain, 2)
}
