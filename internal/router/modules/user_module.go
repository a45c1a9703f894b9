package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-ddd-todo/internal/container"
	handlers "github.com/oksasatya/go-ddd-todo/internal/interface/http"
	"github.com/oksasatya/go-ddd-todo/internal/interface/middleware"
)

// UserModule wires registration and user management.
// Public: POST /api/users
// Protected: GET|PUT|DELETE /api/users/:id (self or admin)
// Admin: GET /api/users/search, POST /api/users/:id/promote
type UserModule struct {
	Handler *handlers.UserHandler
	Authn   middleware.Authenticator
}

func NewUserModule(h *handlers.UserHandler, authn middleware.Authenticator) *UserModule {
	return &UserModule{Handler: h, Authn: authn}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	cfg := container.GetConfig()
	rdb, logger := container.GetScripter(), container.GetLogger()

	registerLimiter := middleware.RateLimit(rdb, cfg.AuthRateLimit, cfg.AuthRateWindow, middleware.KeyByIPAndPath(), nil, logger)
	rg.POST("/users", registerLimiter, m.Handler.Register)

	users := rg.Group("/users")
	users.Use(middleware.Auth(m.Authn))
	users.Use(middleware.RateLimit(rdb, 120, time.Minute, middleware.KeyByUserID(),
		middleware.AnyOf(middleware.AllowAdmin(), middleware.AllowPrivateIP()), logger))
	{
		users.GET("/search", middleware.RequireAdmin(), m.Handler.SearchUsers)
		users.GET("/:id", m.Handler.GetUser)
		users.PUT("/:id", m.Handler.UpdateUser)
		users.DELETE("/:id", m.Handler.DeleteUser)
		users.POST("/:id/promote", middleware.RequireAdmin(), m.Handler.PromoteUser)
	}
}
