package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Recipe is a titled set of instructions owned by exactly one user. The owner
// is set on creation and never changes.
type Recipe struct {
	ID           uuid.UUID          `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
	Title        string             `gorm:"size:255;not null" json:"title"`
	Instructions string             `gorm:"type:text" json:"instructions"`
	ImageURL     string             `gorm:"size:255" json:"image_url,omitempty"`
	UserID       uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	Ingredients  []RecipeIngredient `gorm:"foreignKey:RecipeID" json:"ingredients"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// RecipeIngredient links one recipe to one ingredient with the quantity and
// unit for that usage. The recipe exclusively owns its rows; they are replaced
// wholesale on update and removed with the recipe. There is no composite
// uniqueness on (recipe_id, ingredient_id).
type RecipeIngredient struct {
	ID           uuid.UUID  `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt    time.Time  `json:"created_at"`
	RecipeID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"recipe_id"`
	IngredientID uuid.UUID  `gorm:"type:uuid;not null;index" json:"ingredient_id"`
	Quantity     string     `gorm:"size:50" json:"quantity,omitempty"`
	Unit         string     `gorm:"size:50" json:"unit,omitempty"`
	Ingredient   Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient"`
}

func (ri *RecipeIngredient) BeforeCreate(tx *gorm.DB) error {
	if ri.ID == uuid.Nil {
		ri.ID = uuid.New()
	}
	return nil
}
