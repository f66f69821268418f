package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/recipebox/internal/service"
	"github.com/recipebox/internal/session"
	"github.com/recipebox/pkg/response"
)

const (
	// ContextKeyUserID is the key for user ID in gin context
	ContextKeyUserID = "user_id"
	// ContextKeyUsername is the key for username in gin context
	ContextKeyUsername = "username"
	// NextParam carries the destination to resume after login.
	NextParam = "next"
)

// RequireAuth gates a route behind a valid identity. Browser clients carry
// the session cookie; an unauthenticated request is redirected to the login
// URL with the originally requested destination in the "next" query
// parameter, so a successful login can resume there. API clients may instead
// present a Bearer token, which gets a plain 401 on failure.
func RequireAuth(authService *service.AuthService, sessions session.Store, loginURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				response.Unauthorized(c, "invalid authorization header format")
				c.Abort()
				return
			}

			claims, err := authService.ValidateToken(parts[1])
			if err != nil {
				response.Unauthorized(c, "invalid or expired token")
				c.Abort()
				return
			}

			c.Set(ContextKeyUserID, claims.UserID)
			c.Set(ContextKeyUsername, claims.Username)
			c.Next()
			return
		}

		userID := sessionUserID(c, sessions)
		if userID == 0 {
			redirectToLogin(c, loginURL)
			return
		}

		user, err := authService.GetUserByID(userID)
		if err != nil {
			// Session points at a deleted user; treat as anonymous.
			redirectToLogin(c, loginURL)
			return
		}

		c.Set(ContextKeyUserID, user.ID)
		c.Set(ContextKeyUsername, user.Username)
		c.Next()
	}
}

// LoginProhibited keeps already-authenticated users away from routes like
// login and sign-up, redirecting them to the configured destination instead.
// An empty destination is a configuration error, not a runtime condition, so
// it panics at wiring time.
func LoginProhibited(sessions session.Store, redirectURL string) gin.HandlerFunc {
	if redirectURL == "" {
		panic("middleware: LoginProhibited requires a redirect destination")
	}
	return func(c *gin.Context) {
		if sessionUserID(c, sessions) != 0 {
			c.Redirect(http.StatusFound, redirectURL)
			c.Abort()
			return
		}
		c.Next()
	}
}

func sessionUserID(c *gin.Context, sessions session.Store) uint {
	cookie, err := c.Cookie(session.CookieName)
	if err != nil || cookie == "" {
		return 0
	}
	userID, err := sessions.Get(c.Request.Context(), cookie)
	if err != nil {
		return 0
	}
	return userID
}

func redirectToLogin(c *gin.Context, loginURL string) {
	target := loginURL + "?" + NextParam + "=" + url.QueryEscape(c.Request.URL.RequestURI())
	c.Redirect(http.StatusFound, target)
	c.Abort()
}

// GetUserID gets the user ID from the gin context
func GetUserID(c *gin.Context) uint {
	userID, exists := c.Get(ContextKeyUserID)
	if !exists {
		return 0
	}
	return userID.(uint)
}

// GetUsername gets the username from the gin context
func GetUsername(c *gin.Context) string {
	username, exists := c.Get(ContextKeyUsername)
	if !exists {
		return ""
	}
	return username.(string)
}
