package service_test

import (
	"testing"

	"github.com/recipebox/internal/repository"
	"github.com/recipebox/internal/service"
	"github.com/recipebox/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newRecipeService(t *testing.T, db *gorm.DB) *service.RecipeService {
	t.Helper()
	return service.NewRecipeService(
		repository.NewRecipeRepository(db),
		repository.NewFoodTagRepository(db),
	)
}

func createRecipeRequest() *service.CreateRecipeRequest {
	return &service.CreateRecipeRequest{
		Name:                "Lasagna",
		Ingredients:         "Pasta sheets, ragu, bechamel",
		Instructions:        "Layer and bake.",
		DifficultyLevel:     "Easy",
		PreparationTimeMins: 30,
	}
}

func TestCreateRecipe(t *testing.T) {
	db := newTestDB(t)
	svc := newRecipeService(t, db)
	author := seedUsers(t, db, "@johndoe")[0]

	tagRepo := repository.NewFoodTagRepository(db)
	vegan, err := tagRepo.GetOrCreateByName("Vegan")
	require.NoError(t, err)

	req := createRecipeRequest()
	req.TagIDs = []uint{vegan.ID}

	recipe, err := svc.Create(author.ID, req)
	require.NoError(t, err)
	require.NotZero(t, recipe.ID)
	assert.Equal(t, author.ID, recipe.AuthorID)
	require.NotNil(t, recipe.Author)
	assert.Equal(t, "@johndoe", recipe.Author.Username)
	require.Len(t, recipe.Tags, 1)
	assert.Equal(t, "Vegan", recipe.Tags[0].TagName)
	assert.False(t, recipe.CreatedAt.IsZero())
}

func TestCreateRecipeUnknownTag(t *testing.T) {
	db := newTestDB(t)
	svc := newRecipeService(t, db)
	author := seedUsers(t, db, "@johndoe")[0]

	req := createRecipeRequest()
	req.TagIDs = []uint{999}

	_, err := svc.Create(author.ID, req)
	assert.ErrorIs(t, err, repository.ErrFoodTagNotFound)
}

func TestCreateRecipeInvalidPreparationTime(t *testing.T) {
	db := newTestDB(t)
	svc := newRecipeService(t, db)
	author := seedUsers(t, db, "@johndoe")[0]

	req := createRecipeRequest()
	req.PreparationTimeMins = 1441

	_, err := svc.Create(author.ID, req)

	var errs validation.Errors
	require.ErrorAs(t, err, &errs)
	assert.True(t, errs.Has("preparation_time_mins"))
}

func TestGetRecipeNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newRecipeService(t, db)

	_, err := svc.GetByID(999)
	assert.ErrorIs(t, err, repository.ErrRecipeNotFound)
}

func TestListRecipes(t *testing.T) {
	db := newTestDB(t)
	svc := newRecipeService(t, db)
	author := seedUsers(t, db, "@johndoe")[0]

	_, err := svc.Create(author.ID, createRecipeRequest())
	require.NoError(t, err)

	second := createRecipeRequest()
	second.Name = "Shakshuka"
	_, err = svc.Create(author.ID, second)
	require.NoError(t, err)

	recipes, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, recipes, 2)

	mine, err := svc.ListByAuthor(author.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}

func TestListTags(t *testing.T) {
	db := newTestDB(t)
	svc := newRecipeService(t, db)

	tagRepo := repository.NewFoodTagRepository(db)
	for _, name := range []string{"Vegan", "Halal", "Kosher"} {
		_, err := tagRepo.GetOrCreateByName(name)
		require.NoError(t, err)
	}

	tags, err := svc.ListTags()
	require.NoError(t, err)
	require.Len(t, tags, 3)

	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.TagName)
	}
	assert.Equal(t, []string{"Halal", "Kosher", "Vegan"}, names)
}
