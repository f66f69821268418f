package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/recipebox/internal/config"
	"github.com/recipebox/internal/database"
	"github.com/recipebox/internal/handler"
	"github.com/recipebox/internal/middleware"
	"github.com/recipebox/internal/models"
	"github.com/recipebox/internal/repository"
	"github.com/recipebox/internal/service"
	"github.com/recipebox/internal/session"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const (
	testLoginURL     = "/log_in"
	testDashboardURL = "/dashboard"
	testPassword     = "Password123"
)

type testApp struct {
	router   *gin.Engine
	db       *gorm.DB
	sessions session.Store
	auth     *service.AuthService
	userRepo *repository.UserRepository
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, database.AutoMigrate(db))

	sessions := session.NewMemoryStore()

	userRepo := repository.NewUserRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)
	foodTagRepo := repository.NewFoodTagRepository(db)

	authConfig := config.AuthConfig{
		JWTSecret:           "test-secret",
		JWTExpireHours:      1,
		LoginURL:            testLoginURL,
		LoggedInRedirectURL: testDashboardURL,
	}

	authService := service.NewAuthService(userRepo, authConfig)
	userService := service.NewUserService(userRepo)
	recipeService := service.NewRecipeService(recipeRepo, foodTagRepo)

	router := gin.New()

	requireAuth := middleware.RequireAuth(authService, sessions, testLoginURL)
	loginProhibited := middleware.LoginProhibited(sessions, testDashboardURL)

	handler.NewHomeHandler(userService, recipeService).RegisterRoutes(router, requireAuth, loginProhibited)
	handler.NewAuthHandler(authService, sessions, testDashboardURL).RegisterRoutes(router, requireAuth, loginProhibited)
	handler.NewUserHandler(userService, testDashboardURL).RegisterRoutes(router, requireAuth)
	handler.NewRecipeHandler(recipeService).RegisterRoutes(router, requireAuth)

	return &testApp{
		router:   router,
		db:       db,
		sessions: sessions,
		auth:     authService,
		userRepo: userRepo,
	}
}

// register creates a user directly through the auth service.
func (a *testApp) register(t *testing.T, username, firstName, lastName, email string) *models.User {
	t.Helper()
	user, err := a.auth.Register(&service.RegisterRequest{
		Username:             username,
		FirstName:            firstName,
		LastName:             lastName,
		Email:                email,
		NewPassword:          testPassword,
		PasswordConfirmation: testPassword,
	})
	require.NoError(t, err)
	return user
}

// logIn establishes a session for the user and returns the cookie.
func (a *testApp) logIn(t *testing.T, user *models.User) *http.Cookie {
	t.Helper()
	sid, err := a.sessions.Create(context.Background(), user.ID)
	require.NoError(t, err)
	return &http.Cookie{Name: session.CookieName, Value: sid}
}

func (a *testApp) do(t *testing.T, method, target string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// doBearer issues a request authenticated with an Authorization header
// instead of the session cookie.
func (a *testApp) doBearer(t *testing.T, method, target string, body interface{}, accessToken string) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, target, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+accessToken)

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// decodeData unmarshals the "data" object of a response envelope.
func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()
	var envelope struct {
		Data map[string]json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope.Data
}

// decodeErrors unmarshals the "errors" object of a response envelope.
func decodeErrors(t *testing.T, w *httptest.ResponseRecorder) map[string][]string {
	t.Helper()
	var envelope struct {
		Errors map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope.Errors
}

// sessionCookie extracts the session cookie from a response, or nil.
func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == session.CookieName && cookie.MaxAge >= 0 {
			return cookie
		}
	}
	return nil
}
