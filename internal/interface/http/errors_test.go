package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-todo/pkg/serrors"
)

func TestStatusFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want int
	}{
		{serrors.With(serrors.ErrValidation, "bad"), http.StatusBadRequest},
		{serrors.KindOnly(serrors.ErrInvalidCredentials), http.StatusUnauthorized},
		{serrors.KindOnly(serrors.ErrInvalidToken), http.StatusUnauthorized},
		{serrors.KindOnly(serrors.ErrUnauthorized), http.StatusUnauthorized},
		{serrors.KindOnly(serrors.ErrForbidden), http.StatusForbidden},
		{serrors.With(serrors.ErrNotFound, "todo with id x not found"), http.StatusNotFound},
		{serrors.KindOnly(serrors.ErrConflict), http.StatusConflict},
		{serrors.KindOnly(serrors.ErrInvalidStateTransition), http.StatusUnprocessableEntity},
		{fmt.Errorf("save todo: %w", serrors.KindOnly(serrors.ErrConflict)), http.StatusConflict},
		{errors.New("connection reset"), http.StatusInternalServerError},
		{serrors.KindOnly(serrors.ErrInternal), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, statusFor(tt.err), tt.err.Error())
	}
}

func TestWriteErrorHidesInternalMessage(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	writeError(c, logger, errors.New("dial tcp 10.0.0.3:5432: connection refused"))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.NotContains(t, w.Body.String(), "10.0.0.3")
	require.True(t, c.IsAborted())
}
