package models

import (
	"time"

	"github.com/recipebox/internal/validation"
)

const (
	// MaxPreparationTimeMins bounds preparation time to one day.
	MaxPreparationTimeMins = 1440
)

// Recipe is owned by exactly one User and is deleted with its author.
type Recipe struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	Name                string    `gorm:"size:100;not null" json:"name"`
	AuthorID            uint      `gorm:"not null;index" json:"author_id"`
	Author              *User     `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author,omitempty"`
	Ingredients         string    `gorm:"type:text;not null" json:"ingredients"`
	Instructions        string    `gorm:"type:text;not null" json:"instructions"`
	DifficultyLevel     string    `gorm:"size:50;not null" json:"difficulty_level"`
	PreparationTimeMins int       `gorm:"not null" json:"preparation_time_mins"`
	CreatedAt           time.Time `json:"created_at"`

	// Relations
	Tags []FoodTag `gorm:"many2many:recipe_tags" json:"tags,omitempty"`
}

// TableName specifies the table name for Recipe model
func (Recipe) TableName() string {
	return "recipes"
}

// Validate checks the field constraints before a write.
func (r *Recipe) Validate() validation.Errors {
	errs := validation.Errors{}

	if r.Name == "" {
		errs.Add("name", "name is required")
	} else if len([]rune(r.Name)) > 100 {
		errs.Add("name", "name must be at most 100 characters")
	}

	if r.AuthorID == 0 {
		errs.Add("author", "author is required")
	}

	if r.Ingredients == "" {
		errs.Add("ingredients", "ingredients are required")
	}

	if r.Instructions == "" {
		errs.Add("instructions", "instructions are required")
	}

	if r.DifficultyLevel == "" {
		errs.Add("difficulty_level", "difficulty level is required")
	} else if len([]rune(r.DifficultyLevel)) > 50 {
		errs.Add("difficulty_level", "difficulty level must be at most 50 characters")
	}

	if r.PreparationTimeMins < 1 || r.PreparationTimeMins > MaxPreparationTimeMins {
		errs.Add("preparation_time_mins", "preparation time must be between 1 and 1440 minutes")
	}

	if errs.Empty() {
		return nil
	}
	return errs
}
