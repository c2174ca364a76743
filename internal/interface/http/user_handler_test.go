package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/martify/martify/internal/domain/entity"
	repo "github.com/martify/martify/internal/domain/repository"
	"github.com/martify/martify/pkg/helpers"
)

func adminToken(t *testing.T, env *testEnv) string {
	return env.token(t, 1, "admin@example.com", entity.RoleAdmin)
}

func TestUserRoutesRequireAdmin(t *testing.T) {
	env := newTestEnv()

	t.Run("no token", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/users", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
	t.Run("regular user", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/users", env.token(t, 7, "ada@example.com", entity.RoleUser), nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
	env.users.AssertNotCalled(t, "List", mock.Anything)
}

func TestUserList(t *testing.T) {
	env := newTestEnv()
	env.users.On("List", mock.Anything).Return([]entity.User{
		{ID: 1, Email: "admin@example.com", Role: entity.RoleAdmin},
		{ID: 7, Email: "ada@example.com", Role: entity.RoleUser},
	}, nil)

	w := env.do(t, http.MethodGet, "/users", adminToken(t, env), nil)

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeEnvelope(t, w).Data.([]any)
	assert.Len(t, data, 2)
}

func TestUserCreate(t *testing.T) {
	env := newTestEnv()
	env.users.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.Email == "bob@example.com" && u.Role == entity.RoleAdmin &&
			helpers.CompareHashAndPassword(u.PasswordHash, "hunter2secret")
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.User).ID = 8
	}).Return(nil)

	w := env.do(t, http.MethodPost, "/users", adminToken(t, env), map[string]any{
		"name":     "Bob",
		"email":    "bob@example.com",
		"password": "hunter2secret",
		"role":     "admin",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	env.users.AssertExpectations(t)
}

func TestUserCreateRejectsUnknownRole(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, http.MethodPost, "/users", adminToken(t, env), map[string]any{
		"name":     "Bob",
		"email":    "bob@example.com",
		"password": "hunter2secret",
		"role":     "superuser",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserCreateDuplicate(t *testing.T) {
	env := newTestEnv()
	env.users.On("Create", mock.Anything, mock.Anything).Return(repo.ErrConflict)

	w := env.do(t, http.MethodPost, "/users", adminToken(t, env), map[string]any{
		"name":     "Bob",
		"email":    "taken@example.com",
		"password": "hunter2secret",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUserUpdateRoleChange(t *testing.T) {
	env := newTestEnv()
	env.users.On("Patch", mock.Anything, int64(7), mock.MatchedBy(func(p repo.UserPatch) bool {
		return p.Role != nil && *p.Role == entity.RoleAdmin &&
			p.Name == nil && p.Email == nil && p.PasswordHash == nil
	})).Return(&entity.User{ID: 7, Email: "ada@example.com", Role: entity.RoleAdmin}, nil)

	w := env.do(t, http.MethodPut, "/users/7", adminToken(t, env), map[string]any{"role": "admin"})

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeEnvelope(t, w).Data.(map[string]any)
	assert.Equal(t, "admin", data["role"])
	env.users.AssertExpectations(t)
}

func TestUserUpdateEmptyPatch(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, http.MethodPut, "/users/7", adminToken(t, env), map[string]any{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env.users.AssertNotCalled(t, "Patch", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserUpdateMissing(t *testing.T) {
	env := newTestEnv()
	env.users.On("Patch", mock.Anything, int64(42), mock.Anything).Return(nil, repo.ErrNotFound)

	w := env.do(t, http.MethodPut, "/users/42", adminToken(t, env), map[string]any{"name": "Ghost"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserDelete(t *testing.T) {
	env := newTestEnv()
	env.users.On("Delete", mock.Anything, int64(7)).Return(nil)

	w := env.do(t, http.MethodDelete, "/users/7", adminToken(t, env), nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())
}

func TestUserDeleteMissing(t *testing.T) {
	env := newTestEnv()
	env.users.On("Delete", mock.Anything, int64(42)).Return(repo.ErrNotFound)

	w := env.do(t, http.MethodDelete, "/users/42", adminToken(t, env), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserGetInvalidID(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, http.MethodGet, "/users/abc", adminToken(t, env), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env.users.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}
