package service

import (
	"context"
	"strings"

	"github.com/recipefinder/backend/internal/models"
	"gorm.io/gorm"
)

// SearchService resolves ingredient-name lists to the recipes that use them
type SearchService struct {
	db *gorm.DB
}

// Ensure SearchService implements ISearchService
var _ ISearchService = (*SearchService)(nil)

// NewSearchService creates a new SearchService instance
func NewSearchService(db *gorm.DB) *SearchService {
	return &SearchService{db: db}
}

// SearchByIngredients parses a comma-separated list of ingredient names and
// returns every recipe associated with at least one of them. Matching is an
// OR across the names, and each recipe appears once even when it references
// several of them. Names are trimmed and lowercased before matching.
func (s *SearchService) SearchByIngredients(ctx context.Context, namesCsv string) ([]*models.Recipe, error) {
	names := parseIngredientNames(namesCsv)
	if len(names) == 0 {
		return nil, ErrIngredientNotFound
	}

	var ingredients []models.Ingredient
	if err := s.db.WithContext(ctx).
		Where("LOWER(name) IN ?", names).
		Find(&ingredients).Error; err != nil {
		return nil, err
	}
	if len(ingredients) == 0 {
		return nil, ErrIngredientNotFound
	}

	ids := make([]interface{}, len(ingredients))
	for i, ing := range ingredients {
		ids[i] = ing.ID
	}

	var recipes []models.Recipe
	err := s.db.WithContext(ctx).
		Distinct("recipes.*").
		Joins("JOIN recipe_ingredients ON recipe_ingredients.recipe_id = recipes.id").
		Where("recipe_ingredients.ingredient_id IN ?", ids).
		Preload("Ingredients").
		Preload("Ingredients.Ingredient").
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	if len(recipes) == 0 {
		return nil, ErrRecipeNotFound
	}

	result := make([]*models.Recipe, len(recipes))
	for i := range recipes {
		result[i] = &recipes[i]
	}
	return result, nil
}

// parseIngredientNames splits a comma-separated list, trimming whitespace and
// lowercasing each entry. Empty entries are dropped.
func parseIngredientNames(csv string) []string {
	var names []string
	for _, part := range strings.Split(csv, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return names
}
