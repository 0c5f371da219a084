package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(CodeNotFound, "duel not found")

	assert.Equal(t, "duel not found", err.Error())
	assert.Equal(t, CodeNotFound, err.Code)
	assert.Nil(t, err.Unwrap())
	assert.True(t, IsNotFound(err))
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		code Code
		msg  string
	}{
		{"not found", NotFoundf("result %s", "a"), CodeNotFound, "result a"},
		{"invalid argument", InvalidArgument("bad"), CodeInvalidArgument, "bad"},
		{"invalid argument f", InvalidArgumentf("bad %d", 1), CodeInvalidArgument, "bad 1"},
		{"already exists", AlreadyExistsf("dup %s", "x"), CodeAlreadyExists, "dup x"},
		{"internal", Internalf("boom %s", "now"), CodeInternal, "boom now"},
		{"validation", Validationf("cost %d", -1), CodeValidation, "cost -1"},
		{"newf", Newf(CodeUnknown, "%s-%s", "a", "b"), CodeUnknown, "a-b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.msg, tt.err.Error())
			assert.Equal(t, tt.code, GetCode(tt.err))
		})
	}
}

func TestWrap(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, "context"))
		assert.Nil(t, Wrapf(nil, "context %d", 1))
	})

	t.Run("keeps the code of an application error", func(t *testing.T) {
		inner := InvalidArgument("missing name").WithMeta("field", "name")
		wrapped := Wrap(inner, "failed to create caster")

		assert.Equal(t, "failed to create caster: missing name", wrapped.Error())
		assert.True(t, IsInvalidArgument(wrapped))
		assert.Equal(t, map[string]any{"field": "name"}, GetMeta(wrapped))
		assert.True(t, errors.Is(wrapped, inner))

		// the copy of the metadata is independent
		wrapped.WithMeta("extra", 1)
		assert.Len(t, inner.Meta, 1)
	})

	t.Run("unknown code for foreign errors", func(t *testing.T) {
		wrapped := Wrapf(context.Canceled, "duel %s interrupted", "d1")

		assert.Equal(t, CodeUnknown, wrapped.Code)
		assert.ErrorIs(t, wrapped, context.Canceled)
	})

	t.Run("explicit code", func(t *testing.T) {
		wrapped := WrapWithCode(errors.New("dial tcp"), CodeInternal, "redis unavailable")

		assert.Equal(t, CodeInternal, GetCode(wrapped))
		assert.Equal(t, "redis unavailable: dial tcp", wrapped.Error())
	})
}

func TestIs_ThroughStdlibWrapping(t *testing.T) {
	err := fmt.Errorf("failed to get result a: %w", NotFoundf("result not found: a"))

	assert.True(t, IsNotFound(err))
	assert.False(t, IsAlreadyExists(err))
	assert.Equal(t, CodeNotFound, GetCode(err))
}

func TestIs_PlainErrors(t *testing.T) {
	err := errors.New("plain")

	assert.False(t, Is(err, CodeUnknown))
	assert.Equal(t, CodeUnknown, GetCode(err))
	assert.Nil(t, GetMeta(err))
}

func TestWithMeta(t *testing.T) {
	err := InvalidArgumentf("negative stats").
		WithMeta("health", -1).
		WithMeta("mana", 5)

	require.NotNil(t, err.Meta)
	assert.Equal(t, -1, err.Meta["health"])
	assert.Equal(t, 5, GetMeta(err)["mana"])
}
