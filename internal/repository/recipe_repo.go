package repository

import (
	"errors"

	"github.com/recipebox/internal/models"
	"gorm.io/gorm"
)

var (
	ErrRecipeNotFound = errors.New("recipe not found")
)

// RecipeRepository handles recipe data access
type RecipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new RecipeRepository
func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

// Create creates a new recipe
func (r *RecipeRepository) Create(recipe *models.Recipe) error {
	return r.db.Create(recipe).Error
}

// GetByID retrieves a recipe by ID with its author and tags
func (r *RecipeRepository) GetByID(id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	result := r.db.Preload("Author").Preload("Tags").First(&recipe, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, result.Error
	}
	return &recipe, nil
}

// List retrieves all recipes with their authors and tags
func (r *RecipeRepository) List() ([]models.Recipe, error) {
	var recipes []models.Recipe
	result := r.db.Preload("Author").Preload("Tags").Find(&recipes)
	if result.Error != nil {
		return nil, result.Error
	}
	return recipes, nil
}

// ListByAuthorID retrieves all recipes by a given author
func (r *RecipeRepository) ListByAuthorID(authorID uint) ([]models.Recipe, error) {
	var recipes []models.Recipe
	result := r.db.Preload("Tags").Where("author_id = ?", authorID).Find(&recipes)
	if result.Error != nil {
		return nil, result.Error
	}
	return recipes, nil
}

// CountByAuthorID counts recipes by a given author
func (r *RecipeRepository) CountByAuthorID(authorID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Recipe{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}
