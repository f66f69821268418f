package models

import (
	"github.com/recipebox/internal/validation"
)

// FoodTag is a labeled category attachable to recipes, such as "Vegan" or
// "Gluten-free". Tags are created by seeding and referenced by recipes
// through a join table; recipes never own them.
type FoodTag struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	TagName string `gorm:"uniqueIndex;size:50" json:"tag_name"`
}

// TableName specifies the table name for FoodTag model
func (FoodTag) TableName() string {
	return "food_tags"
}

// Validate checks the field constraints before a write. A blank tag name is
// permitted; a non-blank one must fit in 50 characters.
func (t *FoodTag) Validate() validation.Errors {
	errs := validation.Errors{}
	if len([]rune(t.TagName)) > 50 {
		errs.Add("tag_name", "tag name must be at most 50 characters")
	}
	if errs.Empty() {
		return nil
	}
	return errs
}
