package service

import "errors"

var (
	// ErrIngredientNotFound is returned when an ingredient id or name does not exist
	ErrIngredientNotFound = errors.New("ingredient not found")
	// ErrIngredientExists is returned when an ingredient name is already taken
	ErrIngredientExists = errors.New("ingredient already exists")
	// ErrIngredientInUse is returned when deleting an ingredient that recipes still reference
	ErrIngredientInUse = errors.New("ingredient is referenced by existing recipes")

	// ErrRecipeNotFound is returned when a recipe id does not exist
	ErrRecipeNotFound = errors.New("recipe not found")
	// ErrNotRecipeOwner is returned when the caller does not own the recipe
	ErrNotRecipeOwner = errors.New("caller is not the recipe owner")

	// ErrUserExists is returned when registering with an email that is already taken
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidCredentials is returned on a failed login
	ErrInvalidCredentials = errors.New("invalid credentials")
)
