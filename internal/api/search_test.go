package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipefinder/backend/internal/types"
)

func TestSearchRecipesByIngredients(t *testing.T) {
	router, db := setupTestRouter(t)
	token := createTestUserAndToken(t, db, "cook@example.com")

	w := doJSON(t, router, "POST", "/api/v1/recipes", token, types.RecipeRequest{
		Title: "Scrambled Eggs",
		Ingredients: []types.RecipeIngredientInput{
			{Name: "eggs", Quantity: "3"},
			{Name: "butter", Quantity: "1", Unit: "tbsp"},
		},
	})
	requireStatus(t, w, 201)

	w = doJSON(t, router, "POST", "/api/v1/recipes", token, types.RecipeRequest{
		Title: "Pancakes",
		Ingredients: []types.RecipeIngredientInput{
			{Name: "flour"},
			{Name: "eggs"},
		},
	})
	requireStatus(t, w, 201)

	w = doJSON(t, router, "GET", "/api/v1/recipes/search?ingredients=eggs", "", nil)
	requireStatus(t, w, 200)
	assert.Len(t, decodeBody(t, w)["recipes"], 2)

	w = doJSON(t, router, "GET", "/api/v1/recipes/search?ingredients=flour", "", nil)
	requireStatus(t, w, 200)
	recipes := decodeBody(t, w)["recipes"].([]interface{})
	require.Len(t, recipes, 1)
	assert.Equal(t, "Pancakes", recipes[0].(map[string]interface{})["title"])
}

func TestSearchRecipesCaseInsensitive(t *testing.T) {
	router, db := setupTestRouter(t)
	token := createTestUserAndToken(t, db, "cook@example.com")

	w := doJSON(t, router, "POST", "/api/v1/recipes", token, types.RecipeRequest{
		Title: "Toast",
		Ingredients: []types.RecipeIngredientInput{
			{Name: "Bread"},
		},
	})
	requireStatus(t, w, 201)

	w = doJSON(t, router, "GET", "/api/v1/recipes/search?ingredients=%20BREAD%20", "", nil)
	requireStatus(t, w, 200)
	assert.Len(t, decodeBody(t, w)["recipes"], 1)
}

func TestSearchRecipesNoSuchIngredient(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(t, router, "GET", "/api/v1/recipes/search?ingredients=unobtanium", "", nil)
	requireStatus(t, w, 404)
}

func TestSearchRecipesMissingParam(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(t, router, "GET", "/api/v1/recipes/search", "", nil)
	requireStatus(t, w, 400)
}
