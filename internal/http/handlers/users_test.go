package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"backend/internal/domain"
	"backend/internal/domain/models"
	"backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memUserStore struct {
	users  map[int64]models.User
	nextID int64
}

func (m *memUserStore) Save(_ context.Context, u models.User) (models.User, error) {
	if u.ID == 0 {
		m.nextID++
		u.ID = m.nextID
	}
	m.users[u.ID] = u
	return u, nil
}

func (m *memUserStore) GetByID(_ context.Context, id int64) (models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return models.User{}, domain.NotFoundError{Resource: "user", ID: id}
	}
	return u, nil
}

func (m *memUserStore) GetAll(_ context.Context) ([]models.User, error) {
	out := []models.User{}
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

func (m *memUserStore) GetPage(ctx context.Context, offset, limit int, _ string) ([]models.User, int64, error) {
	all, _ := m.GetAll(ctx)
	total := int64(len(all))
	if offset >= len(all) {
		return []models.User{}, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (m *memUserStore) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range m.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *memUserStore) DeleteByID(_ context.Context, id int64) error {
	if _, ok := m.users[id]; !ok {
		return domain.NotFoundError{Resource: "user", ID: id}
	}
	delete(m.users, id)
	return nil
}

func (m *memUserStore) SearchByName(_ context.Context, _ string) ([]models.User, error) {
	return m.GetAll(context.Background())
}

func newUserRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	store := &memUserStore{users: map[int64]models.User{}}
	h := UserHandler{Service: services.UserService{Store: store, Now: time.Now}}

	r := gin.New()
	api := r.Group("/api")
	api.GET("/users", h.List)
	api.GET("/users/:id", h.Get)
	api.POST("/users", h.Create)
	api.PUT("/users/:id", h.Update)
	api.DELETE("/users/:id", h.Delete)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUserEndpointsStatusMapping(t *testing.T) {
	r := newUserRouter()

	w := do(t, r, http.MethodPost, "/api/users",
		`{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"id":1`)

	// Missing required fields fail binding.
	w = do(t, r, http.MethodPost, "/api/users", `{"firstName":"Ada"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Duplicate email.
	w = do(t, r, http.MethodPost, "/api/users",
		`{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, r, http.MethodGet, "/api/users/1", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodGet, "/api/users/999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Non-numeric and non-positive ids never reach the service.
	w = do(t, r, http.MethodGet, "/api/users/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = do(t, r, http.MethodGet, "/api/users/0", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodDelete, "/api/users/1", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = do(t, r, http.MethodDelete, "/api/users/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserListValidatesQuery(t *testing.T) {
	r := newUserRouter()

	w := do(t, r, http.MethodGet, "/api/users?page=0&size=5", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalElements"`)

	w = do(t, r, http.MethodGet, "/api/users?page=nope", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodGet, "/api/users?sortBy=phone", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
