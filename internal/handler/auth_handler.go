package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/recipebox/internal/middleware"
	"github.com/recipebox/internal/service"
	"github.com/recipebox/internal/session"
	"github.com/recipebox/internal/validation"
	"github.com/recipebox/pkg/response"
)

// FlashCookie carries a one-shot notification across a redirect.
const FlashCookie = "flash"

// AuthHandler handles login, sign-up, logout, and password changes
type AuthHandler struct {
	authService *service.AuthService
	sessions    session.Store
	// dashboardURL is where successful logins and password changes land.
	dashboardURL string
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *service.AuthService, sessions session.Store, dashboardURL string) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		sessions:     sessions,
		dashboardURL: dashboardURL,
	}
}

// ShowLogin describes the login entry point
// GET /log_in
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	response.Success(c, gin.H{
		"next": c.Query(middleware.NextParam),
	})
}

// ShowSignUp describes the sign-up entry point
// GET /sign_up
func (h *AuthHandler) ShowSignUp(c *gin.Context) {
	response.Success(c, nil)
}

// ShowPasswordForm describes the password-change entry point
// GET /password
func (h *AuthHandler) ShowPasswordForm(c *gin.Context) {
	response.Success(c, nil)
}

// Login authenticates a user and establishes a session
// POST /log_in
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.authService.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Unauthorized(c, "invalid username or password")
			return
		}
		response.InternalError(c, "failed to log in")
		return
	}

	sid, err := h.sessions.Create(c.Request.Context(), user.ID)
	if err != nil {
		response.InternalError(c, "failed to create session")
		return
	}
	setSessionCookie(c, sid)

	token, err := h.authService.GenerateToken(user)
	if err != nil {
		response.InternalError(c, "failed to issue token")
		return
	}

	// Resume the destination the user was heading to before the gate
	// redirected them here.
	next := c.Query(middleware.NextParam)
	if next == "" {
		next = h.dashboardURL
	}

	response.Success(c, gin.H{
		"user":     user,
		"token":    token,
		"redirect": next,
	})
}

// SignUp registers a new user. Registration does not log the user in; they
// authenticate through the login entry point afterwards.
// POST /sign_up
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.authService.Register(&req)
	if err != nil {
		var errs validation.Errors
		if errors.As(err, &errs) {
			response.ValidationFailed(c, errs)
			return
		}
		if errors.Is(err, service.ErrUsernameTaken) {
			response.ValidationFailed(c, validation.Errors{"username": {"username already taken"}})
			return
		}
		if errors.Is(err, service.ErrEmailTaken) {
			response.ValidationFailed(c, validation.Errors{"email": {"email already taken"}})
			return
		}
		response.InternalError(c, "failed to sign up")
		return
	}

	response.Created(c, gin.H{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
	})
}

// Logout destroys the session and sends the user home
// POST /log_out
func (h *AuthHandler) Logout(c *gin.Context) {
	if sid, err := c.Cookie(session.CookieName); err == nil && sid != "" {
		_ = h.sessions.Delete(c.Request.Context(), sid)
	}
	clearSessionCookie(c)
	c.Redirect(http.StatusFound, "/")
}

// ChangePassword replaces the caller's credential and silently re-logs them
// in by rotating the session, so the active session survives the change.
// POST /password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req service.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.authService.GetUserByID(middleware.GetUserID(c))
	if err != nil {
		response.Unauthorized(c, "not authenticated")
		return
	}

	if err := h.authService.ChangePassword(user, &req); err != nil {
		var errs validation.Errors
		if errors.As(err, &errs) {
			response.ValidationFailed(c, errs)
			return
		}
		response.InternalError(c, "failed to change password")
		return
	}

	if sid, cerr := c.Cookie(session.CookieName); cerr == nil && sid != "" {
		_ = h.sessions.Delete(c.Request.Context(), sid)
	}
	sid, err := h.sessions.Create(c.Request.Context(), user.ID)
	if err != nil {
		response.InternalError(c, "failed to renew session")
		return
	}
	setSessionCookie(c, sid)

	setFlash(c, "Password updated!")
	c.Redirect(http.StatusFound, h.dashboardURL)
}

// RegisterRoutes registers auth routes
func (h *AuthHandler) RegisterRoutes(r *gin.Engine, requireAuth, loginProhibited gin.HandlerFunc) {
	r.GET("/log_in", loginProhibited, h.ShowLogin)
	r.POST("/log_in", loginProhibited, h.Login)
	r.GET("/sign_up", loginProhibited, h.ShowSignUp)
	r.POST("/sign_up", loginProhibited, h.SignUp)
	r.POST("/log_out", h.Logout)
	r.GET("/password", requireAuth, h.ShowPasswordForm)
	r.POST("/password", requireAuth, h.ChangePassword)
}

func setSessionCookie(c *gin.Context, sid string) {
	c.SetCookie(session.CookieName, sid, int(session.TTL.Seconds()), "/", "", false, true)
}

func clearSessionCookie(c *gin.Context) {
	c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
}

func setFlash(c *gin.Context, message string) {
	c.SetCookie(FlashCookie, message, 60, "/", "", false, false)
}
