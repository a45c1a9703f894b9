package application_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/oksasatya/go-ddd-todo/internal/domain/entity"
	repo "github.com/oksasatya/go-ddd-todo/internal/domain/repository"
	"github.com/oksasatya/go-ddd-todo/internal/domain/service"
	vo "github.com/oksasatya/go-ddd-todo/internal/domain/valueobject"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) FindByID(ctx context.Context, id vo.UserID) (*entity.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email vo.Email) (*entity.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) Save(ctx context.Context, u *entity.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *mockUserRepo) Delete(ctx context.Context, id vo.UserID) error {
	return m.Called(ctx, id).Error(0)
}

type mockTodoRepo struct{ mock.Mock }

func (m *mockTodoRepo) FindByID(ctx context.Context, id vo.TodoID) (*entity.Todo, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(*entity.Todo)
	return t, args.Error(1)
}

func (m *mockTodoRepo) FindByUserID(ctx context.Context, userID vo.UserID) ([]*entity.Todo, error) {
	args := m.Called(ctx, userID)
	ts, _ := args.Get(0).([]*entity.Todo)
	return ts, args.Error(1)
}

func (m *mockTodoRepo) Save(ctx context.Context, t *entity.Todo) error {
	return m.Called(ctx, t).Error(0)
}

func (m *mockTodoRepo) Delete(ctx context.Context, id vo.TodoID) error {
	return m.Called(ctx, id).Error(0)
}

type mockTokens struct{ mock.Mock }

func (m *mockTokens) GenerateToken(ctx context.Context, u *entity.User) (string, error) {
	args := m.Called(ctx, u)
	return args.String(0), args.Error(1)
}

func (m *mockTokens) VerifyToken(ctx context.Context, token string) (*service.TokenClaims, error) {
	args := m.Called(ctx, token)
	c, _ := args.Get(0).(*service.TokenClaims)
	return c, args.Error(1)
}

type mockRevocations struct{ mock.Mock }

func (m *mockRevocations) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	return m.Called(ctx, tokenID, until).Error(0)
}

func (m *mockRevocations) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

type mockDirectory struct{ mock.Mock }

func (m *mockDirectory) Search(ctx context.Context, query string, limit int) ([]repo.UserSummary, error) {
	args := m.Called(ctx, query, limit)
	hits, _ := args.Get(0).([]repo.UserSummary)
	return hits, args.Error(1)
}

var (
	_ repo.UserRepository          = (*mockUserRepo)(nil)
	_ repo.TodoRepository          = (*mockTodoRepo)(nil)
	_ repo.UserDirectory           = (*mockDirectory)(nil)
	_ service.TokenService         = (*mockTokens)(nil)
	_ service.TokenRevocationStore = (*mockRevocations)(nil)
)
