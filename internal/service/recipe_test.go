package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/recipefinder/backend/internal/models"
	"github.com/recipefinder/backend/internal/testhelpers"
	"github.com/recipefinder/backend/internal/types"
)

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := models.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: "not-a-real-hash",
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func TestRecipeCreateWithIngredients(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewRecipeService(db)
	ctx := context.Background()
	owner := createTestUser(t, db, "owner@example.com")

	recipe, err := svc.Create(ctx, owner.ID, &types.RecipeRequest{
		Title:        "Pancakes",
		Instructions: "Mix and fry.",
		Ingredients: []types.RecipeIngredientInput{
			{Name: "flour", Quantity: "200", Unit: "g"},
			{Name: "milk", Quantity: "300", Unit: "ml"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Pancakes", recipe.Title)
	assert.Equal(t, owner.ID, recipe.UserID)
	require.Len(t, recipe.Ingredients, 2)
	assert.Equal(t, "flour", recipe.Ingredients[0].Ingredient.Name)
	assert.Equal(t, "200", recipe.Ingredients[0].Quantity)
	assert.Equal(t, "g", recipe.Ingredients[0].Unit)
}

func TestRecipeCreateReusesExistingIngredient(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewRecipeService(db)
	ctx := context.Background()
	owner := createTestUser(t, db, "owner@example.com")

	existing := models.Ingredient{Name: "salt"}
	require.NoError(t, db.Create(&existing).Error)

	recipe, err := svc.Create(ctx, owner.ID, &types.RecipeRequest{
		Title: "Soup",
		Ingredients: []types.RecipeIngredientInput{
			{Name: "salt", Quantity: "1", Unit: "tsp"},
		},
	})
	require.NoError(t, err)
	require.Len(t, recipe.Ingredients, 1)
	assert.Equal(t, existing.ID, recipe.Ingredients[0].IngredientID)

	var count int64
	require.NoError(t, db.Model(&models.Ingredient{}).Where("name = ?", "salt").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRecipeCreateDuplicateNamesInOneCall(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewRecipeService(db)
	ctx := context.Background()
	owner := createTestUser(t, db, "owner@example.com")

	recipe, err := svc.Create(ctx, owner.ID, &types.RecipeRequest{
		Title: "Bread",
		Ingredients: []types.RecipeIngredientInput{
			{Name: "flour", Quantity: "400", Unit: "g"},
			{Name: "flour", Quantity: "50", Unit: "g"},
		},
	})
	require.NoError(t, err)

	// One ingredient row, two association rows pointing at it.
	var ingredientCount int64
	require.NoError(t, db.Model(&models.Ingredient{}).Where("name = ?", "flour").Count(&ingredientCount).Error)
	assert.EqualValues(t, 1, ingredientCount)

	require.Len(t, recipe.Ingredients, 2)
	assert.Equal(t, recipe.Ingredients[0].IngredientID, recipe.Ingredients[1].IngredientID)
}

func TestRecipeGetNotFound(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewRecipeService(db)

	_, err := svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

func TestRecipeUpdateReplacesAssociations(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewRecipeService(db)
	ctx := context.Background()
	owner := createTestUser(t, db, "owner@example.com")

	recipe, err := svc.Create(ctx, owner.ID, &types.RecipeRequest{
		Title: "Omelette",
		Ingredients: []types.RecipeIngredientInput{
			{Name: "eggs"},
			{Name: "butter"},
		},
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, recipe.ID, owner.ID, &types.RecipeRequest{
		Title:        "Cheese Omelette",
		Instructions: "Add the cheese at the end.",
		Ingredients: []types.RecipeIngredientInput{
			{Name: "cheese", Quantity: "50", Unit: "g"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Cheese Omelette", updated.Title)
	require.Len(t, updated.Ingredients, 1)
	assert.Equal(t, "cheese", updated.Ingredients[0].Ingredient.Name)

	var count int64
	require.NoError(t, db.Model(&models.RecipeIngredient{}).Where("recipe_id = ?", recipe.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRecipeUpdateEmptyListClearsAssociations(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewRecipeService(db)
	ctx := context.Background()
	owner := createTestUser(t, db, "owner@example.com")

	recipe, err := svc.Create(ctx, owner.ID, &types.RecipeRequest{
		Title: "Toast",
		Ingredients: []types.RecipeIngredientInput{
			{Name: "bread"},
		},
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, recipe.ID, owner.ID, &types.RecipeRequest{Title: "Toast"})
	require.NoError(t, err)
	assert.Empty(t, updated.Ingredients)
}

func TestRecipeUpdateNotFound(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewRecipeService(db)
	owner := createTestUser(t, db, "owner@example.com")

	_, err := svc.Update(context.Background(), uuid.New(), owner.ID, &types.RecipeRequest{Title: "X"})
	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

func TestRecipeUpdateForbiddenForNonOwner(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewRecipeService(db)
	ctx := context.Background()
	owner := createTestUser(t, db, "owner@example.com")
	intruder := createTestUser(t, db, "intruder@example.com")

	recipe, err := svc.Create(ctx, owner.ID, &types.RecipeRequest{
		Title: "Secret Sauce",
		Ingredients: []types.RecipeIngredientInput{
			{Name: "ketchup"},
		},
	})
	require.NoError(t, err)

	_, err = svc.Update(ctx, recipe.ID, intruder.ID, &types.RecipeRequest{Title: "Stolen Sauce"})
	assert.ErrorIs(t, err, ErrNotRecipeOwner)

	// Recipe and its associations are untouched.
	unchanged, err := svc.Get(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, "Secret Sauce", unchanged.Title)
	assert.Len(t, unchanged.Ingredients, 1)
}

func TestRecipeUpdateDoesNotChangeOwner(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewRecipeService(db)
	ctx := context.Background()
	owner := createTestUser(t, db, "owner@example.com")

	recipe, err := svc.Create(ctx, owner.ID, &types.RecipeRequest{Title: "Stew"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, recipe.ID, owner.ID, &types.RecipeRequest{Title: "Beef Stew"})
	require.NoError(t, err)
	assert.Equal(t, owner.ID, updated.UserID)
}

func TestRecipeDelete(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewRecipeService(db)
	ctx := context.Background()
	owner := createTestUser(t, db, "owner@example.com")

	recipe, err := svc.Create(ctx, owner.ID, &types.RecipeRequest{
		Title: "Soup",
		Ingredients: []types.RecipeIngredientInput{
			{Name: "salt", Quantity: "1tsp"},
		},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, recipe.ID, owner.ID))

	_, err = svc.Get(ctx, recipe.ID)
	assert.ErrorIs(t, err, ErrRecipeNotFound)

	// Association rows go with the recipe.
	var count int64
	require.NoError(t, db.Model(&models.RecipeIngredient{}).Where("recipe_id = ?", recipe.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)

	// The shared ingredient stays.
	var ingredientCount int64
	require.NoError(t, db.Model(&models.Ingredient{}).Where("name = ?", "salt").Count(&ingredientCount).Error)
	assert.EqualValues(t, 1, ingredientCount)
}

func TestRecipeDeleteNotFound(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewRecipeService(db)
	owner := createTestUser(t, db, "owner@example.com")

	err := svc.Delete(context.Background(), uuid.New(), owner.ID)
	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

func TestRecipeDeleteForbiddenForNonOwner(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewRecipeService(db)
	ctx := context.Background()
	owner := createTestUser(t, db, "owner@example.com")
	intruder := createTestUser(t, db, "intruder@example.com")

	recipe, err := svc.Create(ctx, owner.ID, &types.RecipeRequest{Title: "Pie"})
	require.NoError(t, err)

	err = svc.Delete(ctx, recipe.ID, intruder.ID)
	assert.ErrorIs(t, err, ErrNotRecipeOwner)

	_, err = svc.Get(ctx, recipe.ID)
	assert.NoError(t, err)
}

func TestRecipeList(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewRecipeService(db)
	ctx := context.Background()
	alice := createTestUser(t, db, "alice@example.com")
	bob := createTestUser(t, db, "bob@example.com")

	_, err := svc.Create(ctx, alice.ID, &types.RecipeRequest{Title: "Salad"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, bob.ID, &types.RecipeRequest{Title: "Pizza"})
	require.NoError(t, err)

	all, err := svc.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := svc.List(ctx, &alice.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Salad", mine[0].Title)
}

func TestRecipeAddIngredient(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewRecipeService(db)
	ctx := context.Background()
	owner := createTestUser(t, db, "owner@example.com")

	recipe, err := svc.Create(ctx, owner.ID, &types.RecipeRequest{Title: "Curry"})
	require.NoError(t, err)

	require.NoError(t, db.Create(&models.Ingredient{Name: "turmeric"}).Error)

	// The add path carries no ownership check, so any caller succeeds.
	require.NoError(t, svc.AddIngredient(ctx, recipe.ID, "turmeric", "1", "tsp"))

	got, err := svc.Get(ctx, recipe.ID)
	require.NoError(t, err)
	require.Len(t, got.Ingredients, 1)
	assert.Equal(t, "turmeric", got.Ingredients[0].Ingredient.Name)
	assert.Equal(t, "1", got.Ingredients[0].Quantity)
}

func TestRecipeAddIngredientRecipeNotFound(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewRecipeService(db)

	require.NoError(t, db.Create(&models.Ingredient{Name: "turmeric"}).Error)

	err := svc.AddIngredient(context.Background(), uuid.New(), "turmeric", "", "")
	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

func TestRecipeAddIngredientDoesNotAutoCreate(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewRecipeService(db)
	ctx := context.Background()
	owner := createTestUser(t, db, "owner@example.com")

	recipe, err := svc.Create(ctx, owner.ID, &types.RecipeRequest{Title: "Curry"})
	require.NoError(t, err)

	err = svc.AddIngredient(ctx, recipe.ID, "saffron", "", "")
	assert.ErrorIs(t, err, ErrIngredientNotFound)

	var count int64
	require.NoError(t, db.Model(&models.Ingredient{}).Where("name = ?", "saffron").Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestRecipeSetImageURL(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewRecipeService(db)
	ctx := context.Background()
	owner := createTestUser(t, db, "owner@example.com")
	intruder := createTestUser(t, db, "intruder@example.com")

	recipe, err := svc.Create(ctx, owner.ID, &types.RecipeRequest{Title: "Tart"})
	require.NoError(t, err)

	err = svc.SetImageURL(ctx, recipe.ID, intruder.ID, "https://example.com/a.jpg")
	assert.ErrorIs(t, err, ErrNotRecipeOwner)

	require.NoError(t, svc.SetImageURL(ctx, recipe.ID, owner.ID, "https://example.com/a.jpg"))

	got, err := svc.Get(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/a.jpg", got.ImageURL)
}
