package elasticsearch

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-todo/internal/domain/entity"
	vo "github.com/oksasatya/go-ddd-todo/internal/domain/valueobject"
)

type recordedRequest struct {
	Method string
	Path   string
	Body   string
}

// fakeES answers just enough of the Elasticsearch API for the directory.
type fakeES struct {
	mu       sync.Mutex
	requests []recordedRequest
	search   string
	status   int
}

func (f *fakeES) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	f.requests = append(f.requests, recordedRequest{Method: r.Method, Path: r.URL.Path, Body: string(body)})
	status, search := f.status, f.search
	f.mu.Unlock()

	w.Header().Set("X-Elastic-Product", "Elasticsearch")
	w.Header().Set("Content-Type", "application/json")
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	if strings.HasSuffix(r.URL.Path, "/_search") {
		_, _ = io.WriteString(w, search)
		return
	}
	_, _ = io.WriteString(w, `{"result":"ok"}`)
}

func (f *fakeES) last() recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[len(f.requests)-1]
}

func newDirectory(t *testing.T, fake *fakeES) *UserDirectory {
	t.Helper()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)
	client, err := NewClient([]string{srv.URL}, "", "")
	require.NoError(t, err)
	return NewUserDirectory(client, "users")
}

func directoryUser(t *testing.T) *entity.User {
	t.Helper()
	email, err := vo.NewEmail("jane@example.com")
	require.NoError(t, err)
	return entity.ReconstituteUser(entity.UserSnapshot{
		ID: vo.NewUserID(), Name: "Jane", Email: email,
		Password: vo.HashedPasswordFrom("secret-hash"), Role: vo.RoleUser,
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	})
}

func TestUserDirectoryIndex(t *testing.T) {
	fake := &fakeES{}
	dir := newDirectory(t, fake)
	u := directoryUser(t)

	require.NoError(t, dir.Index(context.Background(), u))

	req := fake.last()
	require.Equal(t, http.MethodPut, req.Method)
	require.Equal(t, "/users/_doc/"+u.ID().String(), req.Path)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(req.Body), &doc))
	require.Equal(t, "jane@example.com", doc["email"])
	require.NotContains(t, req.Body, "secret-hash")
}

func TestUserDirectoryRemoveIgnoresMissing(t *testing.T) {
	fake := &fakeES{status: http.StatusNotFound}
	dir := newDirectory(t, fake)

	require.NoError(t, dir.Remove(context.Background(), vo.NewUserID()))
	require.Equal(t, http.MethodDelete, fake.last().Method)
}

func TestUserDirectorySearch(t *testing.T) {
	fake := &fakeES{search: `{"hits":{"hits":[
		{"_id":"1","_source":{"id":"1","name":"Jane","email":"jane@example.com","role":"USER"}},
		{"_id":"2","_source":{"id":"2","name":"Janet","email":"janet@example.com","role":"ADMIN"}}
	]}}`}
	dir := newDirectory(t, fake)

	hits, err := dir.Search(context.Background(), "jane", 5)
	require.NoError(t, err)
	require.Len(t, hits, 2)
	require.Equal(t, "Janet", hits[1].Name)
	require.Equal(t, "ADMIN", hits[1].Role)

	req := fake.last()
	require.Equal(t, "/users/_search", req.Path)
	require.Contains(t, req.Body, `"multi_match"`)
	require.Contains(t, req.Body, `"size":5`)
}

func TestUserDirectorySearchMissingIndex(t *testing.T) {
	dir := newDirectory(t, &fakeES{status: http.StatusNotFound, search: `{"error":"index_not_found_exception"}`})

	hits, err := dir.Search(context.Background(), "jane", 5)
	require.NoError(t, err)
	require.Empty(t, hits)
}

type mockIndex struct{ mock.Mock }

func (m *mockIndex) Index(ctx context.Context, u *entity.User) error { return m.Called(ctx, u).Error(0) }
func (m *mockIndex) Remove(ctx context.Context, id vo.UserID) error  { return m.Called(ctx, id).Error(0) }

type mockUsers struct{ mock.Mock }

func (m *mockUsers) FindByID(ctx context.Context, id vo.UserID) (*entity.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *mockUsers) FindByEmail(ctx context.Context, email vo.Email) (*entity.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *mockUsers) Save(ctx context.Context, u *entity.User) error { return m.Called(ctx, u).Error(0) }
func (m *mockUsers) Delete(ctx context.Context, id vo.UserID) error  { return m.Called(ctx, id).Error(0) }

func TestIndexedUserRepository(t *testing.T) {
	ctx := context.Background()
	u := directoryUser(t)

	t.Run("index failure does not fail the save", func(t *testing.T) {
		inner, idx := new(mockUsers), new(mockIndex)
		inner.On("Save", ctx, u).Return(nil)
		idx.On("Index", ctx, u).Return(errors.New("es down"))

		require.NoError(t, NewIndexedUserRepository(inner, idx, nil).Save(ctx, u))
		idx.AssertExpectations(t)
	})

	t.Run("store failure skips indexing", func(t *testing.T) {
		inner, idx := new(mockUsers), new(mockIndex)
		inner.On("Save", ctx, u).Return(errors.New("db down"))

		require.Error(t, NewIndexedUserRepository(inner, idx, nil).Save(ctx, u))
		idx.AssertNotCalled(t, "Index", mock.Anything, mock.Anything)
	})

	t.Run("delete removes the document", func(t *testing.T) {
		inner, idx := new(mockUsers), new(mockIndex)
		inner.On("Delete", ctx, u.ID()).Return(nil)
		idx.On("Remove", ctx, u.ID()).Return(nil)

		require.NoError(t, NewIndexedUserRepository(inner, idx, nil).Delete(ctx, u.ID()))
		inner.AssertExpectations(t)
		idx.AssertExpectations(t)
	})

	t.Run("finders pass through", func(t *testing.T) {
		inner, idx := new(mockUsers), new(mockIndex)
		inner.On("FindByID", ctx, u.ID()).Return(u, nil)

		got, err := NewIndexedUserRepository(inner, idx, nil).FindByID(ctx, u.ID())
		require.NoError(t, err)
		require.Same(t, u, got)
	})
}

func TestEnsureUsersIndexSkipsExisting(t *testing.T) {
	fake := &fakeES{}
	dir := newDirectory(t, fake)

	require.NoError(t, EnsureUsersIndex(context.Background(), dir.client, "users"))
	require.Len(t, fake.requests, 1)
	require.Equal(t, http.MethodHead, fake.last().Method)
}
