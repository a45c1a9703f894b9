package router

import (
	"github.com/oksasatya/go-ddd-todo/internal/application"
	"github.com/oksasatya/go-ddd-todo/internal/container"
	repo "github.com/oksasatya/go-ddd-todo/internal/domain/repository"
	"github.com/oksasatya/go-ddd-todo/internal/domain/service"
	esinfra "github.com/oksasatya/go-ddd-todo/internal/infrastructure/elasticsearch"
	pginfra "github.com/oksasatya/go-ddd-todo/internal/infrastructure/postgres"
	redisinfra "github.com/oksasatya/go-ddd-todo/internal/infrastructure/redis"
	handlers "github.com/oksasatya/go-ddd-todo/internal/interface/http"
	"github.com/oksasatya/go-ddd-todo/internal/router/modules"
	"github.com/oksasatya/go-ddd-todo/pkg/helpers"
)

// NewUserRepository returns the postgres user repository. When an
// Elasticsearch client is configured, saves and deletes are mirrored into the
// user directory, which is returned as well.
func NewUserRepository() (repo.UserRepository, repo.UserDirectory) {
	users := pginfra.NewUserRepository(container.GetPGPool())
	client := container.GetES()
	if client == nil {
		return users, nil
	}
	directory := esinfra.NewUserDirectory(client, container.GetConfig().ESUsersIndex)
	return esinfra.NewIndexedUserRepository(users, directory, container.GetLogger()), directory
}

func newRevocationStore() service.TokenRevocationStore {
	rdb := container.GetRedis()
	if rdb == nil {
		return nil
	}
	return redisinfra.NewRevocationStore(rdb)
}

type moduleDeps struct {
	Authn *application.AuthenticateUseCase
	Auth  *handlers.AuthHandler
	User  *handlers.UserHandler
	Todo  *handlers.TodoHandler
}

func buildDeps() moduleDeps {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	tokens := container.GetJWT()
	revocations := newRevocationStore()

	users, directory := NewUserRepository()
	todos := pginfra.NewTodoRepository(container.GetPGPool())

	getUser := application.NewGetUserByIDUseCase(users)

	authHandler := handlers.NewAuthHandler(
		application.NewLoginUseCase(users, tokens, logger),
		application.NewLogoutUseCase(revocations),
		getUser,
		helpers.NewCookie(cfg.CookieDomain, cfg.CookieSecure),
		tokens.TTL,
		logger,
	)
	userHandler := handlers.NewUserHandler(
		application.NewCreateUserUseCase(users, logger),
		getUser,
		application.NewUpdateUserUseCase(users, logger),
		application.NewDeleteUserUseCase(users, logger),
		application.NewPromoteUserUseCase(users),
		application.NewSearchUsersUseCase(directory, logger),
		logger,
	)
	todoHandler := handlers.NewTodoHandler(
		application.NewCreateTodoUseCase(todos, logger),
		application.NewGetTodoByIDUseCase(todos),
		application.NewGetUserTodosUseCase(todos),
		application.NewUpdateTodoUseCase(todos, logger),
		application.NewDeleteTodoUseCase(todos, logger),
		logger,
	)

	return moduleDeps{
		Authn: application.NewAuthenticateUseCase(tokens, revocations, logger),
		Auth:  authHandler,
		User:  userHandler,
		Todo:  todoHandler,
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	deps := buildDeps()
	r.Add(modules.NewAuthModule(deps.Auth, deps.Authn))
	r.Add(modules.NewUserModule(deps.User, deps.Authn))
	r.Add(modules.NewTodoModule(deps.Todo, deps.Authn))
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(container.GetMetricsRegistry()))
	}
}
