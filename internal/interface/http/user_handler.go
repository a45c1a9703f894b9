package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-todo/internal/application"
	"github.com/oksasatya/go-ddd-todo/internal/application/dto"
	"github.com/oksasatya/go-ddd-todo/pkg/response"
	"github.com/oksasatya/go-ddd-todo/pkg/serrors"
	"github.com/oksasatya/go-ddd-todo/pkg/validation"
)

type UserHandler struct {
	Create  *application.CreateUserUseCase
	Get     *application.GetUserByIDUseCase
	Update  *application.UpdateUserUseCase
	Delete  *application.DeleteUserUseCase
	Promote *application.PromoteUserUseCase
	Search  *application.SearchUsersUseCase
	Logger  *logrus.Logger
}

func NewUserHandler(
	create *application.CreateUserUseCase,
	get *application.GetUserByIDUseCase,
	update *application.UpdateUserUseCase,
	del *application.DeleteUserUseCase,
	promote *application.PromoteUserUseCase,
	search *application.SearchUsersUseCase,
	logger *logrus.Logger,
) *UserHandler {
	validation.Init()
	return &UserHandler{Create: create, Get: get, Update: update, Delete: del, Promote: promote, Search: search, Logger: logger}
}

// Register POST /api/users
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.CreateUserDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	u, err := h.Create.Execute(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, u, "user created", nil)
}

// GetUser GET /api/users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id := c.Param("id")
	if err := requireSelfOrAdmin(c, id); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	u, err := h.Get.Execute(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, u, "user", nil)
}

// UpdateUser PUT /api/users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id := c.Param("id")
	if err := requireSelfOrAdmin(c, id); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	var req dto.UpdateUserDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	u, err := h.Update.Execute(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, u, "user updated", nil)
}

// DeleteUser DELETE /api/users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id := c.Param("id")
	if err := requireSelfOrAdmin(c, id); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	if err := h.Delete.Execute(c.Request.Context(), id); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.NoContent(c)
}

// PromoteUser POST /api/users/:id/promote (admin only)
func (h *UserHandler) PromoteUser(c *gin.Context) {
	u, err := h.Promote.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, u, "user promoted", nil)
}

// SearchUsers GET /api/users/search?q=&limit= (admin only)
func (h *UserHandler) SearchUsers(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(c, h.Logger, serrors.With(serrors.ErrValidation, "limit must be a number"))
			return
		}
		limit = n
	}
	hits, err := h.Search.Execute(c.Request.Context(), c.Query("q"), limit)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, hits, "users", map[string]any{"count": len(hits)})
}
