package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/recipebox/internal/middleware"
	"github.com/recipebox/internal/service"
	"github.com/recipebox/pkg/response"
)

// HomeHandler serves the start screen and the dashboard
type HomeHandler struct {
	userService   *service.UserService
	recipeService *service.RecipeService
}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler(userService *service.UserService, recipeService *service.RecipeService) *HomeHandler {
	return &HomeHandler{
		userService:   userService,
		recipeService: recipeService,
	}
}

// Home is the start screen for anonymous visitors
// GET /
func (h *HomeHandler) Home(c *gin.Context) {
	response.Success(c, gin.H{"message": "welcome to recipebox"})
}

// Dashboard shows the authenticated caller their profile and recipes
// GET /dashboard
func (h *HomeHandler) Dashboard(c *gin.Context) {
	user, err := h.userService.GetByID(middleware.GetUserID(c))
	if err != nil {
		response.Unauthorized(c, "not authenticated")
		return
	}

	recipes, err := h.recipeService.ListByAuthor(user.ID)
	if err != nil {
		response.InternalError(c, "failed to load recipes")
		return
	}

	// A flash cookie set by a preceding redirect is consumed here.
	var flash string
	if v, err := c.Cookie(FlashCookie); err == nil {
		flash = v
		c.SetCookie(FlashCookie, "", -1, "/", "", false, false)
	}

	response.Success(c, gin.H{
		"user":    newProfile(user),
		"recipes": recipes,
		"flash":   flash,
	})
}

// RegisterRoutes registers home routes
func (h *HomeHandler) RegisterRoutes(r *gin.Engine, requireAuth, loginProhibited gin.HandlerFunc) {
	r.GET("/", loginProhibited, h.Home)
	r.GET("/dashboard", requireAuth, h.Dashboard)
}
