package repository

import (
	"errors"

	"github.com/recipebox/internal/models"
	"gorm.io/gorm"
)

var (
	ErrFoodTagNotFound = errors.New("food tag not found")
)

// FoodTagRepository handles food tag data access
type FoodTagRepository struct {
	db *gorm.DB
}

// NewFoodTagRepository creates a new FoodTagRepository
func NewFoodTagRepository(db *gorm.DB) *FoodTagRepository {
	return &FoodTagRepository{db: db}
}

// Create creates a new food tag
func (r *FoodTagRepository) Create(tag *models.FoodTag) error {
	return r.db.Create(tag).Error
}

// List retrieves all food tags
func (r *FoodTagRepository) List() ([]models.FoodTag, error) {
	var tags []models.FoodTag
	result := r.db.Order("tag_name ASC").Find(&tags)
	if result.Error != nil {
		return nil, result.Error
	}
	return tags, nil
}

// GetByIDs retrieves the food tags for a set of IDs. Missing IDs yield
// ErrFoodTagNotFound rather than a silently shorter result.
func (r *FoodTagRepository) GetByIDs(ids []uint) ([]models.FoodTag, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var tags []models.FoodTag
	result := r.db.Where("id IN ?", ids).Find(&tags)
	if result.Error != nil {
		return nil, result.Error
	}
	if len(tags) != len(ids) {
		return nil, ErrFoodTagNotFound
	}
	return tags, nil
}

// GetOrCreateByName returns the tag with the given name, creating it first
// if it does not exist. Used by seeding.
func (r *FoodTagRepository) GetOrCreateByName(name string) (*models.FoodTag, error) {
	var tag models.FoodTag
	err := r.db.Where("tag_name = ?", name).First(&tag).Error
	if err == nil {
		return &tag, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	tag = models.FoodTag{TagName: name}
	if err := r.db.Create(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}
