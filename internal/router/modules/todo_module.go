package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-ddd-todo/internal/container"
	handlers "github.com/oksasatya/go-ddd-todo/internal/interface/http"
	"github.com/oksasatya/go-ddd-todo/internal/interface/middleware"
)

// TodoModule wires the todo CRUD endpoints. Every route requires a token;
// the owner of a todo or an admin may act on it.
type TodoModule struct {
	Handler *handlers.TodoHandler
	Authn   middleware.Authenticator
}

func NewTodoModule(h *handlers.TodoHandler, authn middleware.Authenticator) *TodoModule {
	return &TodoModule{Handler: h, Authn: authn}
}

func (m *TodoModule) Register(rg *gin.RouterGroup) {
	todos := rg.Group("/todos")
	todos.Use(middleware.Auth(m.Authn))
	todos.Use(
		middleware.RateLimit(container.GetScripter(), 300, time.Minute, middleware.KeyByUserID(), nil, container.GetLogger()),
	)
	{
		todos.POST("", m.Handler.CreateTodo)
		todos.GET("", m.Handler.ListTodos)
		todos.GET("/:id", m.Handler.GetTodo)
		todos.PUT("/:id", m.Handler.UpdateTodo)
		todos.DELETE("/:id", m.Handler.DeleteTodo)
	}
}
