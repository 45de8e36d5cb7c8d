package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/recipefinder/backend/internal/models"
	"gorm.io/gorm"
)

// IngredientService handles ingredient operations
type IngredientService struct {
	db *gorm.DB
}

// Ensure IngredientService implements IIngredientService
var _ IIngredientService = (*IngredientService)(nil)

// NewIngredientService creates a new IngredientService instance
func NewIngredientService(db *gorm.DB) *IngredientService {
	return &IngredientService{db: db}
}

// Create inserts a new ingredient, failing with ErrIngredientExists when the
// exact name is already taken.
func (s *IngredientService) Create(ctx context.Context, name string) (*models.Ingredient, error) {
	ingredient := models.Ingredient{Name: name}
	if err := s.db.WithContext(ctx).Create(&ingredient).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrIngredientExists
		}
		return nil, err
	}
	return &ingredient, nil
}

// Get retrieves an ingredient by ID
func (s *IngredientService) Get(ctx context.Context, id uuid.UUID) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := s.db.WithContext(ctx).First(&ingredient, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIngredientNotFound
		}
		return nil, err
	}
	return &ingredient, nil
}

// Update renames an ingredient. A rename that collides with another
// ingredient's name fails with ErrIngredientExists.
func (s *IngredientService) Update(ctx context.Context, id uuid.UUID, newName string) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&ingredient, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrIngredientNotFound
			}
			return err
		}
		ingredient.Name = newName
		if err := tx.Save(&ingredient).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrIngredientExists
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// Delete removes an ingredient. Deletion is restricted: it fails with
// ErrIngredientInUse while any recipe association still references the row.
func (s *IngredientService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ingredient models.Ingredient
		if err := tx.First(&ingredient, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrIngredientNotFound
			}
			return err
		}

		var refs int64
		if err := tx.Model(&models.RecipeIngredient{}).Where("ingredient_id = ?", id).Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return ErrIngredientInUse
		}

		return tx.Delete(&models.Ingredient{}, "id = ?", id).Error
	})
}

// List returns all ingredients in store order
func (s *IngredientService) List(ctx context.Context) ([]*models.Ingredient, error) {
	var ingredients []models.Ingredient
	if err := s.db.WithContext(ctx).Find(&ingredients).Error; err != nil {
		return nil, err
	}
	result := make([]*models.Ingredient, len(ingredients))
	for i := range ingredients {
		result[i] = &ingredients[i]
	}
	return result, nil
}

// FindByName looks up an ingredient by exact name
func (s *IngredientService) FindByName(ctx context.Context, name string) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := s.db.WithContext(ctx).Where("name = ?", name).First(&ingredient).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIngredientNotFound
		}
		return nil, err
	}
	return &ingredient, nil
}

// FindByNames looks up ingredients by exact names. Names with no matching row
// are simply absent from the result.
func (s *IngredientService) FindByNames(ctx context.Context, names []string) ([]*models.Ingredient, error) {
	var ingredients []models.Ingredient
	if err := s.db.WithContext(ctx).Where("name IN ?", names).Find(&ingredients).Error; err != nil {
		return nil, err
	}
	result := make([]*models.Ingredient, len(ingredients))
	for i := range ingredients {
		result[i] = &ingredients[i]
	}
	return result, nil
}
