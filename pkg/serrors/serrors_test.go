package serrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-todo/pkg/serrors"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrValidation,
		serrors.ErrNotFound,
		serrors.ErrConflict,
		serrors.ErrInvalidCredentials,
		serrors.ErrInvalidStateTransition,
		serrors.ErrInvalidToken,
		serrors.ErrUnauthorized,
		serrors.ErrForbidden,
		serrors.ErrInternal,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("db down")

	e1 := serrors.With(serrors.ErrNotFound, "todo %s not found", "abc")
	require.Equal(t, "todo abc not found", e1.Error())

	e2 := serrors.Wrap(serrors.ErrInternal, base, "saving todo")
	require.Equal(t, "saving todo: db down", e2.Error())

	e3 := serrors.KindOnly(serrors.ErrConflict)
	require.Equal(t, "CONFLICT", e3.Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	require.ErrorIs(t, e, serrors.ErrNotFound)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrConflict)
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("use case: %w", serrors.With(serrors.ErrConflict, "email taken"))
	require.Equal(t, serrors.ErrConflict, serrors.KindOf(wrapped))
	require.Equal(t, serrors.ErrNotFound, serrors.KindOf(serrors.ErrNotFound))
	require.Equal(t, serrors.ErrInternal, serrors.KindOf(errors.New("plain")))
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrInvalidToken, base, "parse token")
	require.Equal(t, serrors.ErrInvalidToken, e.Kind())
	require.Equal(t, "parse token", e.Message())
	require.Equal(t, base, e.Cause())
}
