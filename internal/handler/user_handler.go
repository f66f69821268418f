package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/recipebox/internal/middleware"
	"github.com/recipebox/internal/models"
	"github.com/recipebox/internal/repository"
	"github.com/recipebox/internal/service"
	"github.com/recipebox/internal/validation"
	"github.com/recipebox/pkg/response"
)

// UserHandler handles user listing and profile requests
type UserHandler struct {
	userService *service.UserService
	// dashboardURL is where a successful profile update lands.
	dashboardURL string
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *service.UserService, dashboardURL string) *UserHandler {
	return &UserHandler{
		userService:  userService,
		dashboardURL: dashboardURL,
	}
}

// profile is the outward shape of a user record.
type profile struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

func newProfile(u *models.User) profile {
	return profile{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		AvatarURL: u.Gravatar(120),
	}
}

// ListUsers returns every user except the caller, ordered by username
// GET /users/
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListOthers(middleware.GetUserID(c))
	if err != nil {
		response.InternalError(c, "failed to list users")
		return
	}

	profiles := make([]profile, 0, len(users))
	for i := range users {
		profiles = append(profiles, newProfile(&users[i]))
	}

	response.Success(c, gin.H{"users": profiles})
}

// GetUser returns a single user's profile
// GET /users/:pk
func (h *UserHandler) GetUser(c *gin.Context) {
	pk, err := strconv.ParseUint(c.Param("pk"), 10, 64)
	if err != nil {
		response.NotFound(c, "user not found")
		return
	}

	user, err := h.userService.GetByID(uint(pk))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			response.NotFound(c, "user not found")
			return
		}
		response.InternalError(c, "failed to load user")
		return
	}

	response.Success(c, gin.H{"user": newProfile(user)})
}

// ShowProfile returns the caller's own profile
// GET /profile
func (h *UserHandler) ShowProfile(c *gin.Context) {
	user, err := h.userService.GetByID(middleware.GetUserID(c))
	if err != nil {
		response.Unauthorized(c, "not authenticated")
		return
	}
	response.Success(c, gin.H{"user": newProfile(user)})
}

// UpdateProfile updates the caller's own record. The target is always the
// session's user, never a request parameter.
// POST /profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req service.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.userService.GetByID(middleware.GetUserID(c))
	if err != nil {
		response.Unauthorized(c, "not authenticated")
		return
	}

	if err := h.userService.UpdateProfile(user, &req); err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			response.ValidationFailed(c, validation.Errors{"username": {"username already taken"}})
			return
		}
		if errors.Is(err, service.ErrEmailTaken) {
			response.ValidationFailed(c, validation.Errors{"email": {"email already taken"}})
			return
		}
		response.InternalError(c, "failed to update profile")
		return
	}

	setFlash(c, "Profile updated!")
	c.Redirect(http.StatusFound, h.dashboardURL)
}

// RegisterRoutes registers user routes
func (h *UserHandler) RegisterRoutes(r *gin.Engine, requireAuth gin.HandlerFunc) {
	r.GET("/users/", requireAuth, h.ListUsers)
	r.GET("/users/:pk/", requireAuth, h.GetUser)
	r.GET("/profile", requireAuth, h.ShowProfile)
	r.POST("/profile", requireAuth, h.UpdateProfile)
}
