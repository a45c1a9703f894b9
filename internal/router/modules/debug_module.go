package modules

import (
	"expvar"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/oksasatya/go-ddd-todo/internal/container"
	"github.com/oksasatya/go-ddd-todo/internal/interface/middleware"
)

type DebugModule struct {
	Registry *prometheus.Registry
}

func NewDebugModule(reg *prometheus.Registry) *DebugModule { return &DebugModule{Registry: reg} }

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	// Public metrics endpoints, rate-limited per IP; scrapers on private networks are exempt
	rl := middleware.RateLimit(container.GetScripter(), 120, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP(), container.GetLogger())
	rg.GET("/debug/vars", rl, gin.WrapH(expvar.Handler()))
	rg.GET("/metrics", rl, gin.WrapH(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})))
}
