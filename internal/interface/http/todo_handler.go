package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-todo/internal/application"
	"github.com/oksasatya/go-ddd-todo/internal/application/dto"
	"github.com/oksasatya/go-ddd-todo/internal/interface/middleware"
	"github.com/oksasatya/go-ddd-todo/pkg/response"
	"github.com/oksasatya/go-ddd-todo/pkg/validation"
)

type TodoHandler struct {
	Create *application.CreateTodoUseCase
	Get    *application.GetTodoByIDUseCase
	List   *application.GetUserTodosUseCase
	Update *application.UpdateTodoUseCase
	Delete *application.DeleteTodoUseCase
	Logger *logrus.Logger
}

func NewTodoHandler(
	create *application.CreateTodoUseCase,
	get *application.GetTodoByIDUseCase,
	list *application.GetUserTodosUseCase,
	update *application.UpdateTodoUseCase,
	del *application.DeleteTodoUseCase,
	logger *logrus.Logger,
) *TodoHandler {
	validation.Init()
	return &TodoHandler{Create: create, Get: get, List: list, Update: update, Delete: del, Logger: logger}
}

// CreateTodo POST /api/todos
// The todo belongs to the caller. Admins may create on behalf of user_id.
func (h *TodoHandler) CreateTodo(c *gin.Context) {
	var req dto.CreateTodoDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	if req.UserID == "" || !isAdmin(c) {
		req.UserID = c.GetString(middleware.CtxUserIDKey)
	}
	t, err := h.Create.Execute(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, t, "todo created", nil)
}

// ListTodos GET /api/todos
// Admins may list another user's todos with ?user_id=.
func (h *TodoHandler) ListTodos(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserIDKey)
	if q := c.Query("user_id"); q != "" && isAdmin(c) {
		userID = q
	}
	todos, err := h.List.Execute(c.Request.Context(), userID)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, todos, "todos", map[string]any{"count": len(todos)})
}

// GetTodo GET /api/todos/:id
func (h *TodoHandler) GetTodo(c *gin.Context) {
	t, ok := h.ownedTodo(c)
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, t, "todo", nil)
}

// UpdateTodo PUT /api/todos/:id
func (h *TodoHandler) UpdateTodo(c *gin.Context) {
	var req dto.UpdateTodoDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	if _, ok := h.ownedTodo(c); !ok {
		return
	}
	t, err := h.Update.Execute(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, t, "todo updated", nil)
}

// DeleteTodo DELETE /api/todos/:id
func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	if _, ok := h.ownedTodo(c); !ok {
		return
	}
	if err := h.Delete.Execute(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.NoContent(c)
}

// ownedTodo loads the todo in the path as the caller, which fails unless the
// caller owns it or is an admin. On failure the response is already written.
func (h *TodoHandler) ownedTodo(c *gin.Context) (*dto.TodoDTO, bool) {
	t, err := h.Get.ExecuteAs(c.Request.Context(), c.Param("id"), middleware.ClaimsFrom(c))
	if err != nil {
		writeError(c, h.Logger, err)
		return nil, false
	}
	return t, true
}
