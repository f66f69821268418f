package service

import (
	"github.com/recipebox/internal/models"
	"github.com/recipebox/internal/repository"
)

// RecipeService handles recipe reads and creation
type RecipeService struct {
	recipeRepo  *repository.RecipeRepository
	foodTagRepo *repository.FoodTagRepository
}

// NewRecipeService creates a new RecipeService
func NewRecipeService(recipeRepo *repository.RecipeRepository, foodTagRepo *repository.FoodTagRepository) *RecipeService {
	return &RecipeService{
		recipeRepo:  recipeRepo,
		foodTagRepo: foodTagRepo,
	}
}

// CreateRecipeRequest represents the create recipe request
type CreateRecipeRequest struct {
	Name                string `json:"name" binding:"required,max=100"`
	Ingredients         string `json:"ingredients" binding:"required"`
	Instructions        string `json:"instructions" binding:"required"`
	DifficultyLevel     string `json:"difficulty_level" binding:"required,max=50"`
	PreparationTimeMins int    `json:"preparation_time_mins" binding:"required,min=1,max=1440"`
	TagIDs              []uint `json:"tag_ids"`
}

// List retrieves all recipes
func (s *RecipeService) List() ([]models.Recipe, error) {
	return s.recipeRepo.List()
}

// GetByID retrieves a recipe by ID
func (s *RecipeService) GetByID(id uint) (*models.Recipe, error) {
	return s.recipeRepo.GetByID(id)
}

// ListByAuthor retrieves all recipes owned by the given user
func (s *RecipeService) ListByAuthor(authorID uint) ([]models.Recipe, error) {
	return s.recipeRepo.ListByAuthorID(authorID)
}

// ListTags retrieves all food tags
func (s *RecipeService) ListTags() ([]models.FoodTag, error) {
	return s.foodTagRepo.List()
}

// Create creates a recipe owned by the given author. The entity constraints
// are checked once more on the assembled model before the write.
func (s *RecipeService) Create(authorID uint, req *CreateRecipeRequest) (*models.Recipe, error) {
	tags, err := s.foodTagRepo.GetByIDs(req.TagIDs)
	if err != nil {
		return nil, err
	}

	recipe := &models.Recipe{
		Name:                req.Name,
		AuthorID:            authorID,
		Ingredients:         req.Ingredients,
		Instructions:        req.Instructions,
		DifficultyLevel:     req.DifficultyLevel,
		PreparationTimeMins: req.PreparationTimeMins,
		Tags:                tags,
	}

	if errs := recipe.Validate(); errs != nil {
		return nil, errs
	}

	if err := s.recipeRepo.Create(recipe); err != nil {
		return nil, err
	}

	return s.recipeRepo.GetByID(recipe.ID)
}
