package main

import (
	"context"
	"errors"
	"log"

	"github.com/joho/godotenv"

	"github.com/oksasatya/go-ddd-todo/config"
	"github.com/oksasatya/go-ddd-todo/internal/application"
	"github.com/oksasatya/go-ddd-todo/internal/application/dto"
	"github.com/oksasatya/go-ddd-todo/internal/container"
	repo "github.com/oksasatya/go-ddd-todo/internal/domain/repository"
	vo "github.com/oksasatya/go-ddd-todo/internal/domain/valueobject"
	esinfra "github.com/oksasatya/go-ddd-todo/internal/infrastructure/elasticsearch"
	pginfra "github.com/oksasatya/go-ddd-todo/internal/infrastructure/postgres"
	"github.com/oksasatya/go-ddd-todo/internal/router"
	"github.com/oksasatya/go-ddd-todo/pkg/helpers"
	"github.com/oksasatya/go-ddd-todo/pkg/serrors"
)

// seed creates the admin account from SEED_ADMIN_* (or reuses an existing
// account with that email) and makes sure it has the ADMIN role.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)

	if cfg.SeedAdminPassword == "" {
		log.Fatal("SEED_ADMIN_PASSWORD is required")
	}

	ctx := context.Background()
	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()
	if err := pginfra.RunMigrations(cfg.PostgresDSN(), cfg.MigrationsDir, logger); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	container.SetConfig(cfg)
	container.SetLogger(logger)
	container.SetPGPool(pool)
	if addrs := cfg.ESAddrs(); len(addrs) > 0 {
		if esClient, err := esinfra.NewClient(addrs, cfg.ElasticsearchUser, cfg.ElasticsearchPass); err == nil {
			container.SetES(esClient)
		}
	}
	users, _ := router.NewUserRepository()

	id, err := ensureUser(ctx, application.NewCreateUserUseCase(users, logger), users, cfg)
	if err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}

	admin, err := application.NewPromoteUserUseCase(users).Execute(ctx, id)
	switch {
	case errors.Is(err, serrors.ErrInvalidStateTransition):
		logger.WithField("user_id", id).Info("seed admin already has the ADMIN role")
	case err != nil:
		log.Fatalf("failed to promote admin: %v", err)
	default:
		logger.WithField("user_id", admin.ID).WithField("email", admin.Email).Info("seeded admin")
	}
}

// ensureUser returns the id of the account with the seed email, creating it
// through the registration use case when it does not exist yet.
func ensureUser(ctx context.Context, create *application.CreateUserUseCase, users repo.UserRepository, cfg *config.Config) (string, error) {
	email, err := vo.NewEmail(cfg.SeedAdminEmail)
	if err != nil {
		return "", err
	}
	existing, err := users.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return existing.ID().String(), nil
	}

	created, err := create.Execute(ctx, dto.CreateUserDTO{
		Name:     cfg.SeedAdminName,
		Email:    email.String(),
		Password: cfg.SeedAdminPassword,
	})
	if err != nil {
		return "", err
	}
	return created.ID, nil
}
