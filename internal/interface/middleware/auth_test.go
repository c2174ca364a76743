package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martify/martify/internal/domain/entity"
	"github.com/martify/martify/pkg/helpers"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func authRouter(mgr *helpers.JWTManager) *gin.Engine {
	r := gin.New()
	r.GET("/me", Auth(mgr), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"id":    UserID(c),
			"email": c.GetString(CtxEmailKey),
			"admin": IsAdmin(c),
		})
	})
	r.GET("/admin", Auth(mgr), AdminOnly(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func get(r *gin.Engine, path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRejects(t *testing.T) {
	mgr := helpers.NewJWTManager("test-secret", time.Hour)
	foreign := helpers.NewJWTManager("other-secret", time.Hour)
	foreignToken, err := foreign.GenerateToken(7, "ada@example.com", entity.RoleUser)
	require.NoError(t, err)
	r := authRouter(mgr)

	tests := []struct {
		name          string
		authorization string
	}{
		{"missing header", ""},
		{"not a bearer scheme", "Basic dXNlcjpwYXNz"},
		{"bare token without scheme", "some.jwt.token"},
		{"garbage token", "Bearer not-a-jwt"},
		{"foreign signature", "Bearer " + foreignToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(r, "/me", tt.authorization)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestAuthRejectsExpired(t *testing.T) {
	mgr := helpers.NewJWTManager("test-secret", time.Hour)
	claims := &helpers.Claims{
		UserID: 7,
		Email:  "ada@example.com",
		Role:   entity.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(mgr.Secret)
	require.NoError(t, err)

	w := get(authRouter(mgr), "/me", "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthInjectsClaims(t *testing.T) {
	mgr := helpers.NewJWTManager("test-secret", time.Hour)
	token, err := mgr.GenerateToken(7, "ada@example.com", entity.RoleUser)
	require.NoError(t, err)

	w := get(authRouter(mgr), "/me", "Bearer "+token)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":7,"email":"ada@example.com","admin":false}`, w.Body.String())
}

func TestAdminOnly(t *testing.T) {
	mgr := helpers.NewJWTManager("test-secret", time.Hour)
	r := authRouter(mgr)

	userToken, err := mgr.GenerateToken(7, "ada@example.com", entity.RoleUser)
	require.NoError(t, err)
	adminToken, err := mgr.GenerateToken(1, "admin@example.com", entity.RoleAdmin)
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, get(r, "/admin", "Bearer "+userToken).Code)
	assert.Equal(t, http.StatusOK, get(r, "/admin", "Bearer "+adminToken).Code)
}
