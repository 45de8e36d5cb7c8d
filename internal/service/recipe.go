package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/recipefinder/backend/internal/models"
	"github.com/recipefinder/backend/internal/types"
	"gorm.io/gorm"
)

// RecipeService handles recipe operations, including the nested
// ingredient upsert and association rewrite on create and update.
type RecipeService struct {
	db *gorm.DB
}

// Ensure RecipeService implements IRecipeService
var _ IRecipeService = (*RecipeService)(nil)

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// Create inserts a new recipe owned by ownerID together with its ingredient
// associations. Ingredients are resolved by exact name and created when
// absent; duplicate names within one request resolve to the same row. The
// whole operation is one transaction.
func (s *RecipeService) Create(ctx context.Context, ownerID uuid.UUID, req *types.RecipeRequest) (*models.Recipe, error) {
	recipe := models.Recipe{
		Title:        req.Title,
		Instructions: req.Instructions,
		UserID:       ownerID,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&recipe).Error; err != nil {
			return err
		}
		return s.applyIngredientList(tx, recipe.ID, req.Ingredients)
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, recipe.ID)
}

// Get retrieves a recipe by ID with its ingredient associations expanded
func (s *RecipeService) Get(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.WithContext(ctx).
		Preload("Ingredients").
		Preload("Ingredients.Ingredient").
		First(&recipe, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// Update overwrites a recipe's title and instructions and replaces its full
// association set with the given ingredient list (an empty list clears all
// associations). Only the owner may update; the owner itself never changes.
func (s *RecipeService) Update(ctx context.Context, id, callerID uuid.UUID, req *types.RecipeRequest) (*models.Recipe, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var recipe models.Recipe
		if err := tx.First(&recipe, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRecipeNotFound
			}
			return err
		}
		if recipe.UserID != callerID {
			return ErrNotRecipeOwner
		}

		recipe.Title = req.Title
		recipe.Instructions = req.Instructions
		if err := tx.Save(&recipe).Error; err != nil {
			return err
		}

		// Full replace, not a diff.
		if err := tx.Delete(&models.RecipeIngredient{}, "recipe_id = ?", id).Error; err != nil {
			return err
		}
		return s.applyIngredientList(tx, id, req.Ingredients)
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, id)
}

// Delete removes a recipe and all of its association rows. Only the owner may
// delete.
func (s *RecipeService) Delete(ctx context.Context, id, callerID uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var recipe models.Recipe
		if err := tx.First(&recipe, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRecipeNotFound
			}
			return err
		}
		if recipe.UserID != callerID {
			return ErrNotRecipeOwner
		}

		if err := tx.Delete(&models.RecipeIngredient{}, "recipe_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Recipe{}, "id = ?", id).Error
	})
}

// List returns all recipes, or only the given user's when userID is non-nil
func (s *RecipeService) List(ctx context.Context, userID *uuid.UUID) ([]*models.Recipe, error) {
	var recipes []models.Recipe
	query := s.db.WithContext(ctx).
		Preload("Ingredients").
		Preload("Ingredients.Ingredient")
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}
	if err := query.Find(&recipes).Error; err != nil {
		return nil, err
	}
	result := make([]*models.Recipe, len(recipes))
	for i := range recipes {
		result[i] = &recipes[i]
	}
	return result, nil
}

// AddIngredient inserts a single association row linking the recipe to an
// existing ingredient, resolved by exact name and never auto-created.
//
// Unlike Update, this path performs no ownership check; see DESIGN.md.
func (s *RecipeService) AddIngredient(ctx context.Context, recipeID uuid.UUID, name, quantity, unit string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var recipe models.Recipe
		if err := tx.First(&recipe, "id = ?", recipeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRecipeNotFound
			}
			return err
		}

		var ingredient models.Ingredient
		if err := tx.Where("name = ?", name).First(&ingredient).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrIngredientNotFound
			}
			return err
		}

		return tx.Create(&models.RecipeIngredient{
			RecipeID:     recipeID,
			IngredientID: ingredient.ID,
			Quantity:     quantity,
			Unit:         unit,
		}).Error
	})
}

// SetImageURL records the photo URL for a recipe. Owner-only.
func (s *RecipeService) SetImageURL(ctx context.Context, id, callerID uuid.UUID, url string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var recipe models.Recipe
		if err := tx.First(&recipe, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRecipeNotFound
			}
			return err
		}
		if recipe.UserID != callerID {
			return ErrNotRecipeOwner
		}
		return tx.Model(&recipe).Update("image_url", url).Error
	})
}

// applyIngredientList resolves each entry by name, creating missing
// ingredients, and inserts one association row per entry.
func (s *RecipeService) applyIngredientList(tx *gorm.DB, recipeID uuid.UUID, list []types.RecipeIngredientInput) error {
	for _, entry := range list {
		ingredient, err := resolveIngredient(tx, entry.Name)
		if err != nil {
			return err
		}
		link := models.RecipeIngredient{
			RecipeID:     recipeID,
			IngredientID: ingredient.ID,
			Quantity:     entry.Quantity,
			Unit:         entry.Unit,
		}
		if err := tx.Create(&link).Error; err != nil {
			return err
		}
	}
	return nil
}

// resolveIngredient is a get-or-create keyed on the exact name. A concurrent
// caller may create the same name between our lookup and insert; the store's
// uniqueness constraint rejects the losing insert, and we retry the lookup
// once before surfacing a conflict.
func resolveIngredient(tx *gorm.DB, name string) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	err := tx.Where("name = ?", name).First(&ingredient).Error
	if err == nil {
		return &ingredient, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	ingredient = models.Ingredient{Name: name}
	if err := tx.Create(&ingredient).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			var existing models.Ingredient
			if lookupErr := tx.Where("name = ?", name).First(&existing).Error; lookupErr == nil {
				return &existing, nil
			}
			return nil, ErrIngredientExists
		}
		return nil, err
	}
	return &ingredient, nil
}
