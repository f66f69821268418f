// Package seed fills and resets the development database.
package seed

import (
	"fmt"

	"github.com/recipebox/internal/models"
	"github.com/recipebox/internal/repository"
	"github.com/recipebox/pkg/crypto"
	"gorm.io/gorm"
)

// DefaultTagNames are the food tags created by seeding.
var DefaultTagNames = []string{
	"Halal",
	"Kosher",
	"Vegan",
	"Vegetarian",
	"Gluten-free",
	"Dairy-free",
	"Nut-free",
}

// DefaultPassword is the password given to every seeded user.
const DefaultPassword = "Password123"

type seedUser struct {
	username  string
	firstName string
	lastName  string
	email     string
}

var seedUsers = []seedUser{
	{"@johndoe", "John", "Doe", "john.doe@example.org"},
	{"@janedoe", "Jane", "Doe", "jane.doe@example.org"},
	{"@peterpickles", "Peter", "Pickles", "peter.pickles@example.org"},
	{"@petrapickles", "Petra", "Pickles", "petra.pickles@example.org"},
}

// Seeder creates and removes sample data
type Seeder struct {
	db          *gorm.DB
	userRepo    *repository.UserRepository
	recipeRepo  *repository.RecipeRepository
	foodTagRepo *repository.FoodTagRepository
}

// NewSeeder creates a new Seeder
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{
		db:          db,
		userRepo:    repository.NewUserRepository(db),
		recipeRepo:  repository.NewRecipeRepository(db),
		foodTagRepo: repository.NewFoodTagRepository(db),
	}
}

// Seed creates the standard food tags plus sample users and recipes.
// Running it twice does not duplicate tags; sample users are only created
// when their username is free.
func (s *Seeder) Seed() error {
	tags := make(map[string]*models.FoodTag, len(DefaultTagNames))
	for _, name := range DefaultTagNames {
		tag, err := s.foodTagRepo.GetOrCreateByName(name)
		if err != nil {
			return fmt.Errorf("seed tag %q: %w", name, err)
		}
		tags[name] = tag
	}

	hash, err := crypto.HashPassword(DefaultPassword)
	if err != nil {
		return err
	}

	users := make([]*models.User, 0, len(seedUsers))
	for _, su := range seedUsers {
		exists, err := s.userRepo.ExistsByUsername(su.username)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		user := &models.User{
			Username:     su.username,
			FirstName:    su.firstName,
			LastName:     su.lastName,
			Email:        su.email,
			PasswordHash: hash,
		}
		if err := s.userRepo.Create(user); err != nil {
			return fmt.Errorf("seed user %q: %w", su.username, err)
		}
		users = append(users, user)
	}

	if len(users) > 0 {
		recipe := &models.Recipe{
			Name:                "Lasagna",
			AuthorID:            users[0].ID,
			Ingredients:         "Pasta sheets, ragu, bechamel, parmesan",
			Instructions:        "Layer the sheets with ragu and bechamel, top with parmesan, bake for 45 minutes.",
			DifficultyLevel:     "Easy",
			PreparationTimeMins: 30,
			Tags:                []models.FoodTag{*tags["Halal"]},
		}
		if errs := recipe.Validate(); errs != nil {
			return errs
		}
		if err := s.recipeRepo.Create(recipe); err != nil {
			return fmt.Errorf("seed recipe: %w", err)
		}
	}

	return nil
}

// Unseed deletes every non-staff user, preserving administrative accounts.
// Their recipes go with them through the cascade on the author foreign key.
func (s *Seeder) Unseed() (int64, error) {
	return s.userRepo.DeleteNonStaff()
}
