package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-ddd-todo/internal/container"
	handlers "github.com/oksasatya/go-ddd-todo/internal/interface/http"
	"github.com/oksasatya/go-ddd-todo/internal/interface/middleware"
)

// AuthModule wires login, logout and the current user endpoint.
// Public: POST /api/auth/login
// Protected: POST /api/auth/logout, GET /api/auth/me
type AuthModule struct {
	Handler *handlers.AuthHandler
	Authn   middleware.Authenticator
}

func NewAuthModule(h *handlers.AuthHandler, authn middleware.Authenticator) *AuthModule {
	return &AuthModule{Handler: h, Authn: authn}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	cfg := container.GetConfig()
	loginLimiter := middleware.RateLimit(container.GetScripter(), cfg.AuthRateLimit, cfg.AuthRateWindow,
		middleware.KeyByIPAndPath(), nil, container.GetLogger())

	rg.POST("/auth/login", loginLimiter, m.Handler.HandleLogin)

	auth := rg.Group("/auth")
	auth.Use(middleware.Auth(m.Authn))
	{
		auth.POST("/logout", m.Handler.HandleLogout)
		auth.GET("/me", m.Handler.HandleMe)
	}
}
