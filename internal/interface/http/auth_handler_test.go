package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/martify/martify/internal/domain/entity"
	repo "github.com/martify/martify/internal/domain/repository"
	"github.com/martify/martify/pkg/helpers"
)

func TestSignup(t *testing.T) {
	env := newTestEnv()
	env.users.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.Email == "ada@example.com" && u.Role == entity.RoleUser && u.PasswordHash != "hunter2secret"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.User).ID = 7
	}).Return(nil)

	w := env.do(t, http.MethodPost, "/signup", "", map[string]any{
		"name":     "Ada",
		"email":    "ada@example.com",
		"password": "hunter2secret",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	env.users.AssertExpectations(t)

	res := decodeEnvelope(t, w)
	assert.True(t, res.Success)
	data := res.Data.(map[string]any)
	token, _ := data["token"].(string)
	require.NotEmpty(t, token)
	claims, err := env.jwt.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, entity.RoleUser, claims.Role)

	user := data["user"].(map[string]any)
	assert.Equal(t, "ada@example.com", user["email"])
	// password hash must never serialize
	_, leaked := user["password_hash"]
	assert.False(t, leaked)
}

func TestSignupValidation(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing name", map[string]any{"email": "a@b.com", "password": "hunter2secret"}},
		{"bad email", map[string]any{"name": "Ada", "email": "not-an-email", "password": "hunter2secret"}},
		{"short password", map[string]any{"name": "Ada", "email": "a@b.com", "password": "short"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()
			w := env.do(t, http.MethodPost, "/signup", "", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			env.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	env := newTestEnv()
	env.users.On("Create", mock.Anything, mock.Anything).Return(repo.ErrConflict)

	w := env.do(t, http.MethodPost, "/signup", "", map[string]any{
		"name":     "Ada",
		"email":    "taken@example.com",
		"password": "hunter2secret",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLogin(t *testing.T) {
	hash, err := helpers.HashPassword("hunter2secret")
	require.NoError(t, err)
	stored := &entity.User{ID: 7, Email: "ada@example.com", PasswordHash: hash, Role: entity.RoleUser}

	tests := []struct {
		name     string
		password string
		user     *entity.User
		getErr   error
		want     int
	}{
		{name: "valid credentials", password: "hunter2secret", user: stored, want: http.StatusOK},
		{name: "wrong password", password: "wrong-password", user: stored, want: http.StatusUnauthorized},
		{name: "unknown email", password: "hunter2secret", getErr: repo.ErrNotFound, want: http.StatusUnauthorized},
		{name: "store failure", password: "hunter2secret", getErr: errors.New("connection refused"), want: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()
			if tt.getErr != nil {
				env.users.On("GetByEmail", mock.Anything, "ada@example.com").Return(nil, tt.getErr)
			} else {
				env.users.On("GetByEmail", mock.Anything, "ada@example.com").Return(tt.user, nil)
			}

			w := env.do(t, http.MethodPost, "/login", "", map[string]any{
				"email":    "ada@example.com",
				"password": tt.password,
			})

			require.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusOK {
				data := decodeEnvelope(t, w).Data.(map[string]any)
				assert.NotEmpty(t, data["token"])
			}
		})
	}
}

func TestProfile(t *testing.T) {
	env := newTestEnv()
	env.users.On("GetByID", mock.Anything, int64(7)).
		Return(&entity.User{ID: 7, Name: "Ada", Email: "ada@example.com", Role: entity.RoleUser}, nil)

	w := env.do(t, http.MethodGet, "/profile", env.token(t, 7, "ada@example.com", entity.RoleUser), nil)

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeEnvelope(t, w).Data.(map[string]any)
	assert.Equal(t, "ada@example.com", data["email"])
}

func TestProfileRequiresToken(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, http.MethodGet, "/profile", "", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	env.users.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}
