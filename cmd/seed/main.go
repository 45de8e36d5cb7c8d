package main

import (
	"context"
	"log"

	"github.com/recipefinder/backend/config"
	"github.com/recipefinder/backend/internal/database"
	"github.com/recipefinder/backend/internal/models"
	"github.com/recipefinder/backend/internal/service"
	"github.com/recipefinder/backend/internal/types"
	"golang.org/x/crypto/bcrypt"
)

var starterIngredients = []string{
	"salt", "pepper", "olive oil", "butter", "flour", "sugar",
	"eggs", "milk", "garlic", "onion", "tomato", "chicken",
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	demo := models.User{
		Name:         "Demo User",
		Email:        "demo@example.com",
		PasswordHash: string(hash),
	}
	if err := db.WithContext(ctx).Where("email = ?", demo.Email).FirstOrCreate(&demo).Error; err != nil {
		log.Fatalf("Failed to seed demo user: %v", err)
	}

	ingredientService := service.NewIngredientService(db)
	for _, name := range starterIngredients {
		if _, err := ingredientService.Create(ctx, name); err != nil {
			if err == service.ErrIngredientExists {
				continue
			}
			log.Fatalf("Failed to seed ingredient %q: %v", name, err)
		}
	}

	recipeService := service.NewRecipeService(db)
	if _, err := recipeService.Create(ctx, demo.ID, &types.RecipeRequest{
		Title:        "Simple Scrambled Eggs",
		Instructions: "Whisk the eggs with milk, season, and cook over low heat.",
		Ingredients: []types.RecipeIngredientInput{
			{Name: "eggs", Quantity: "3"},
			{Name: "milk", Quantity: "2", Unit: "tbsp"},
			{Name: "salt", Quantity: "1", Unit: "pinch"},
		},
	}); err != nil {
		log.Fatalf("Failed to seed demo recipe: %v", err)
	}

	log.Println("Seed data applied")
}
