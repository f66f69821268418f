package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/recipebox/internal/config"
	"github.com/recipebox/internal/middleware"
	"github.com/recipebox/internal/repository"
	"github.com/recipebox/internal/service"
	"github.com/recipebox/internal/session"
	"github.com/recipebox/pkg/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newGatedRouter(sessions session.Store) *gin.Engine {
	authService := service.NewAuthService(
		repository.NewUserRepository(nil),
		config.AuthConfig{JWTSecret: "test-secret", JWTExpireHours: 1},
	)

	router := gin.New()
	router.GET("/secret", middleware.RequireAuth(authService, sessions, "/log_in"), func(c *gin.Context) {
		response.Success(c, gin.H{"user_id": middleware.GetUserID(c)})
	})
	return router
}

func TestRequireAuthRedirectsAnonymous(t *testing.T) {
	router := newGatedRouter(session.NewMemoryStore())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secret", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/log_in?next=%2Fsecret", w.Header().Get("Location"))
}

func TestRequireAuthPreservesQueryInNext(t *testing.T) {
	router := newGatedRouter(session.NewMemoryStore())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secret?page=2", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/log_in?next=%2Fsecret%3Fpage%3D2", w.Header().Get("Location"))
}

func TestRequireAuthRejectsBadBearer(t *testing.T) {
	router := newGatedRouter(session.NewMemoryStore())

	// Malformed header.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secret", nil)
	req.Header.Set("Authorization", "nonsense")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Well-formed header, invalid token.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/secret", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthRejectsStaleSession(t *testing.T) {
	router := newGatedRouter(session.NewMemoryStore())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secret", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "expired-or-forged"})
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/log_in?next=%2Fsecret", w.Header().Get("Location"))
}

func TestLoginProhibitedRedirectsAuthenticated(t *testing.T) {
	sessions := session.NewMemoryStore()
	sid, err := sessions.Create(context.Background(), 7)
	require.NoError(t, err)

	router := gin.New()
	router.GET("/log_in", middleware.LoginProhibited(sessions, "/dashboard"), func(c *gin.Context) {
		response.Success(c, nil)
	})

	// Authenticated: bounced to the configured destination.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/log_in", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: sid})
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))

	// Anonymous: passes through.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/log_in", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginProhibitedRequiresDestination(t *testing.T) {
	// A missing destination is a wiring mistake, not a request-time error.
	assert.Panics(t, func() {
		middleware.LoginProhibited(session.NewMemoryStore(), "")
	})
}
