package container

import (
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-todo/config"
	"github.com/oksasatya/go-ddd-todo/internal/infrastructure/auth"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	pgPool      *pgxpool.Pool
	redisClient *redis.Client
	esClient    *elasticsearch.Client

	jwtService *auth.JWTService

	registry *prometheus.Registry
)

func SetConfig(c *config.Config)    { cfg = c }
func GetConfig() *config.Config     { return cfg }
func SetLogger(l *logrus.Logger)    { logger = l }
func GetLogger() *logrus.Logger     { return logger }
func SetPGPool(p *pgxpool.Pool)     { pgPool = p }
func GetPGPool() *pgxpool.Pool      { return pgPool }
func SetRedis(r *redis.Client)      { redisClient = r }
func GetRedis() *redis.Client       { return redisClient }
func SetES(c *elasticsearch.Client) { esClient = c }
func GetES() *elasticsearch.Client  { return esClient }

// GetScripter returns the redis client for the rate limiter, or a nil
// interface when redis is not configured so the limiter disables itself.
func GetScripter() redis.Scripter {
	if redisClient == nil {
		return nil
	}
	return redisClient
}

func SetJWT(s *auth.JWTService) { jwtService = s }
func GetJWT() *auth.JWTService {
	if jwtService != nil {
		return jwtService
	}
	if cfg != nil {
		return auth.NewJWTService(cfg.JWTSecret, cfg.JWTTTL, cfg.JWTIssuer)
	}
	return auth.NewJWTService("devsecret", auth.DefaultTTL, "")
}

func SetMetricsRegistry(r *prometheus.Registry) { registry = r }

// GetMetricsRegistry lazily creates the registry so modules can always
// register collectors.
func GetMetricsRegistry() *prometheus.Registry {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	return registry
}
