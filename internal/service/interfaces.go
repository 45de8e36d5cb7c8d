package service

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/recipefinder/backend/internal/models"
	"github.com/recipefinder/backend/internal/types"
)

// IIngredientService defines the interface for ingredient operations
type IIngredientService interface {
	Create(ctx context.Context, name string) (*models.Ingredient, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Ingredient, error)
	Update(ctx context.Context, id uuid.UUID, newName string) (*models.Ingredient, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*models.Ingredient, error)
	FindByName(ctx context.Context, name string) (*models.Ingredient, error)
	FindByNames(ctx context.Context, names []string) ([]*models.Ingredient, error)
}

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	Create(ctx context.Context, ownerID uuid.UUID, req *types.RecipeRequest) (*models.Recipe, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Recipe, error)
	Update(ctx context.Context, id, callerID uuid.UUID, req *types.RecipeRequest) (*models.Recipe, error)
	Delete(ctx context.Context, id, callerID uuid.UUID) error
	List(ctx context.Context, userID *uuid.UUID) ([]*models.Recipe, error)
	AddIngredient(ctx context.Context, recipeID uuid.UUID, name, quantity, unit string) error
	SetImageURL(ctx context.Context, id, callerID uuid.UUID, url string) error
}

// ISearchService defines the interface for recipe search operations
type ISearchService interface {
	SearchByIngredients(ctx context.Context, namesCsv string) ([]*models.Recipe, error)
}

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, name, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}

// IImageService defines the interface for recipe photo storage
type IImageService interface {
	UploadRecipePhoto(ctx context.Context, recipeID uuid.UUID, body io.Reader, contentType string) (string, error)
}
