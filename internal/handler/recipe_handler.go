package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/recipebox/internal/middleware"
	"github.com/recipebox/internal/repository"
	"github.com/recipebox/internal/service"
	"github.com/recipebox/internal/validation"
	"github.com/recipebox/pkg/response"
)

// RecipeHandler handles recipe browsing and creation
type RecipeHandler struct {
	recipeService *service.RecipeService
}

// NewRecipeHandler creates a new RecipeHandler
func NewRecipeHandler(recipeService *service.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

// ListRecipes returns all recipes. Anonymous access is allowed.
// GET /recipes/
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.recipeService.List()
	if err != nil {
		response.InternalError(c, "failed to list recipes")
		return
	}
	response.Success(c, gin.H{"recipes": recipes})
}

// GetRecipe returns a single recipe. Anonymous access is allowed.
// GET /recipes/:id
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.NotFound(c, "recipe not found")
		return
	}

	recipe, err := h.recipeService.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			response.NotFound(c, "recipe not found")
			return
		}
		response.InternalError(c, "failed to load recipe")
		return
	}

	response.Success(c, gin.H{"recipe": recipe})
}

// ListTags returns all food tags
// GET /tags/
func (h *RecipeHandler) ListTags(c *gin.Context) {
	tags, err := h.recipeService.ListTags()
	if err != nil {
		response.InternalError(c, "failed to list tags")
		return
	}
	response.Success(c, gin.H{"tags": tags})
}

// CreateRecipe creates a recipe owned by the authenticated caller
// POST /recipes/
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req service.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	recipe, err := h.recipeService.Create(middleware.GetUserID(c), &req)
	if err != nil {
		var errs validation.Errors
		if errors.As(err, &errs) {
			response.ValidationFailed(c, errs)
			return
		}
		if errors.Is(err, repository.ErrFoodTagNotFound) {
			response.BadRequest(c, "unknown food tag")
			return
		}
		response.InternalError(c, "failed to create recipe")
		return
	}

	response.Created(c, gin.H{"recipe": recipe})
}

// RegisterRoutes registers recipe routes
func (h *RecipeHandler) RegisterRoutes(r *gin.Engine, requireAuth gin.HandlerFunc) {
	r.GET("/recipes/", h.ListRecipes)
	r.GET("/recipes/:id/", h.GetRecipe)
	r.GET("/tags/", h.ListTags)
	r.POST("/recipes/", requireAuth, h.CreateRecipe)
}
