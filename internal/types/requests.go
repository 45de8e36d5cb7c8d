package types

// RegisterRequest is the payload for POST /auth/register
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the payload for POST /auth/login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// IngredientRequest is the payload for creating or renaming an ingredient
type IngredientRequest struct {
	Name string `json:"name" binding:"required"`
}

// RecipeIngredientInput is one entry of a recipe's ingredient list. Quantity
// and unit are free-form and optional.
type RecipeIngredientInput struct {
	Name     string `json:"name" binding:"required"`
	Quantity string `json:"quantity,omitempty"`
	Unit     string `json:"unit,omitempty"`
}

// RecipeRequest is the payload for creating or updating a recipe. On update
// the ingredient list replaces the existing associations entirely; an empty
// list clears them.
type RecipeRequest struct {
	Title        string                  `json:"title" binding:"required"`
	Instructions string                  `json:"instructions"`
	Ingredients  []RecipeIngredientInput `json:"ingredients"`
}

// AddIngredientRequest is the payload for the single-association add path
type AddIngredientRequest struct {
	Name     string `json:"name" binding:"required"`
	Quantity string `json:"quantity,omitempty"`
	Unit     string `json:"unit,omitempty"`
}
