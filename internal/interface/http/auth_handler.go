package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-todo/internal/application"
	"github.com/oksasatya/go-ddd-todo/internal/application/dto"
	"github.com/oksasatya/go-ddd-todo/internal/interface/middleware"
	"github.com/oksasatya/go-ddd-todo/pkg/helpers"
	"github.com/oksasatya/go-ddd-todo/pkg/response"
	"github.com/oksasatya/go-ddd-todo/pkg/validation"
)

type AuthHandler struct {
	Login    *application.LoginUseCase
	Logout   *application.LogoutUseCase
	GetUser  *application.GetUserByIDUseCase
	Cookies  *helpers.Manager
	TokenTTL time.Duration
	Logger   *logrus.Logger
}

func NewAuthHandler(
	login *application.LoginUseCase,
	logout *application.LogoutUseCase,
	getUser *application.GetUserByIDUseCase,
	cookies *helpers.Manager,
	tokenTTL time.Duration,
	logger *logrus.Logger,
) *AuthHandler {
	validation.Init()
	return &AuthHandler{Login: login, Logout: logout, GetUser: getUser, Cookies: cookies, TokenTTL: tokenTTL, Logger: logger}
}

// HandleLogin POST /api/auth/login
func (h *AuthHandler) HandleLogin(c *gin.Context) {
	var req dto.LoginUserDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	res, err := h.Login.Execute(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	expiresAt := time.Now().Add(h.TokenTTL)
	if h.Cookies != nil {
		h.Cookies.SetAccess(c, res.Token, expiresAt)
	}
	response.Success(c, http.StatusOK, res, "login successful", map[string]any{"expires_at": expiresAt.UTC()})
}

// HandleLogout POST /api/auth/logout (auth required)
func (h *AuthHandler) HandleLogout(c *gin.Context) {
	if err := h.Logout.Execute(c.Request.Context(), middleware.ClaimsFrom(c)); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	if h.Cookies != nil {
		h.Cookies.Clear(c)
	}
	response.Success[any](c, http.StatusOK, map[string]any{"logged_out": true}, "logged out", nil)
}

// HandleMe GET /api/auth/me (auth required)
func (h *AuthHandler) HandleMe(c *gin.Context) {
	u, err := h.GetUser.Execute(c.Request.Context(), c.GetString(middleware.CtxUserIDKey))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, u, "profile", nil)
}
