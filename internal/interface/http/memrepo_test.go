package handlers_test

import (
	"context"
	"sort"
	"sync"

	"github.com/oksasatya/go-ddd-todo/internal/domain/entity"
	vo "github.com/oksasatya/go-ddd-todo/internal/domain/valueobject"
)

// memUsers and memTodos keep snapshots so callers never share aggregates
// with the store.
type memUsers struct {
	mu   sync.Mutex
	byID map[string]entity.UserSnapshot
}

func newMemUsers() *memUsers { return &memUsers{byID: map[string]entity.UserSnapshot{}} }

func (m *memUsers) FindByID(_ context.Context, id vo.UserID) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.byID[id.String()]
	if !ok {
		return nil, nil
	}
	return entity.ReconstituteUser(s), nil
}

func (m *memUsers) FindByEmail(_ context.Context, email vo.Email) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.byID {
		if s.Email.Equals(email) {
			return entity.ReconstituteUser(s), nil
		}
	}
	return nil, nil
}

func (m *memUsers) Save(_ context.Context, u *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byID[u.ID().String()] = u.Snapshot()
	return nil
}

func (m *memUsers) Delete(_ context.Context, id vo.UserID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.byID, id.String())
	return nil
}

type memTodos struct {
	mu   sync.Mutex
	byID map[string]entity.TodoSnapshot
}

func newMemTodos() *memTodos { return &memTodos{byID: map[string]entity.TodoSnapshot{}} }

func (m *memTodos) FindByID(_ context.Context, id vo.TodoID) (*entity.Todo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.byID[id.String()]
	if !ok {
		return nil, nil
	}
	return entity.ReconstituteTodo(s), nil
}

func (m *memTodos) FindByUserID(_ context.Context, userID vo.UserID) ([]*entity.Todo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []*entity.Todo{}
	for _, s := range m.byID {
		if s.UserID.Equals(userID) {
			out = append(out, entity.ReconstituteTodo(s))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt().Before(out[j].CreatedAt()) })
	return out, nil
}

func (m *memTodos) Save(_ context.Context, t *entity.Todo) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byID[t.ID().String()] = t.Snapshot()
	return nil
}

func (m *memTodos) Delete(_ context.Context, id vo.TodoID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.byID, id.String())
	return nil
}
