package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-todo/pkg/helpers"
	"github.com/oksasatya/go-ddd-todo/pkg/response"
	"github.com/oksasatya/go-ddd-todo/pkg/serrors"
	"github.com/oksasatya/go-ddd-todo/pkg/validation"
)

var kindStatus = []struct {
	kind   serrors.Kind
	status int
}{
	{serrors.ErrValidation, http.StatusBadRequest},
	{serrors.ErrInvalidCredentials, http.StatusUnauthorized},
	{serrors.ErrInvalidToken, http.StatusUnauthorized},
	{serrors.ErrUnauthorized, http.StatusUnauthorized},
	{serrors.ErrForbidden, http.StatusForbidden},
	{serrors.ErrNotFound, http.StatusNotFound},
	{serrors.ErrConflict, http.StatusConflict},
	{serrors.ErrInvalidStateTransition, http.StatusUnprocessableEntity},
}

// statusFor maps an error kind to its HTTP status. Unknown errors are 500.
func statusFor(err error) int {
	for _, ks := range kindStatus {
		if errors.Is(err, ks.kind) {
			return ks.status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the status for err. Internal failures are logged
// and their message is never sent to the client.
func writeError(c *gin.Context, logger *logrus.Logger, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		if logger != nil {
			helpers.LogError(logger, "request failed", err, logrus.Fields{
				"path":       c.FullPath(),
				"request_id": c.GetString("request_id"),
			})
		}
		_ = c.Error(err)
		response.Error[any](c, status, "internal server error", nil)
		return
	}
	response.Error[any](c, status, err.Error(), nil)
}

// writeBindError answers 400 with per field details.
func writeBindError(c *gin.Context, err error) {
	response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
}
