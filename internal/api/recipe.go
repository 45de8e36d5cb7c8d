package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/recipefinder/backend/internal/middleware"
	"github.com/recipefinder/backend/internal/service"
	"github.com/recipefinder/backend/internal/types"
)

// RecipeHandler handles recipe CRUD, the single-association add path, and
// photo uploads
type RecipeHandler struct {
	recipeService service.IRecipeService
	authService   service.IAuthService
	imageService  service.IImageService
	rateLimiter   *middleware.RateLimiter
}

// NewRecipeHandler creates a new RecipeHandler instance. imageService and
// rateLimiter may be nil when photo storage or Redis is not configured.
func NewRecipeHandler(recipeService service.IRecipeService, authService service.IAuthService, imageService service.IImageService, rateLimiter *middleware.RateLimiter) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
		authService:   authService,
		imageService:  imageService,
		rateLimiter:   rateLimiter,
	}
}

// RegisterRoutes registers the recipe routes on the given router group.
// Mutations are authenticated and, when Redis is configured, rate limited.
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	authed := middleware.AuthMiddleware(h.authService)
	limited := func(c *gin.Context) { c.Next() }
	if h.rateLimiter != nil {
		limited = h.rateLimiter.RateLimitMiddleware()
	}

	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.POST("", authed, limited, h.CreateRecipe)
		recipes.PUT("/:id", authed, limited, h.UpdateRecipe)
		recipes.DELETE("/:id", authed, limited, h.DeleteRecipe)
		recipes.POST("/:id/ingredients", authed, limited, h.AddIngredient)
		recipes.POST("/:id/image", authed, limited, h.UploadImage)
	}
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req types.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ownerID, ok := callerID(c)
	if !ok {
		return
	}

	recipe, err := h.recipeService.Create(c.Request.Context(), ownerID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, recipe)
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	recipe, err := h.recipeService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req types.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	caller, ok := callerID(c)
	if !ok {
		return
	}

	recipe, err := h.recipeService.Update(c.Request.Context(), id, caller, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	caller, ok := callerID(c)
	if !ok {
		return
	}

	if err := h.recipeService.Delete(c.Request.Context(), id, caller); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Recipe deleted successfully", "id": id})
}

// ListRecipes returns all recipes, or only the caller's when mine=true and a
// valid token is presented.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	var userID *uuid.UUID
	if c.Query("mine") == "true" {
		if id, ok := callerIDFromHeader(c, h.authService); ok {
			userID = &id
		} else {
			return
		}
	}

	recipes, err := h.recipeService.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// AddIngredient links one existing ingredient to a recipe by name. This route
// intentionally performs no ownership check; see DESIGN.md.
func (h *RecipeHandler) AddIngredient(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req types.AddIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.recipeService.AddIngredient(c.Request.Context(), id, req.Name, req.Quantity, req.Unit); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Ingredient added to recipe"})
}

// UploadImage stores a recipe photo in S3 and records its URL on the recipe.
// Owner-only.
func (h *RecipeHandler) UploadImage(c *gin.Context) {
	if h.imageService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "photo storage not configured"})
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	caller, ok := callerID(c)
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo file is required"})
		return
	}
	defer func() { _ = file.Close() }()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, err := h.imageService.UploadRecipePhoto(c.Request.Context(), id, file, contentType)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.recipeService.SetImageURL(c.Request.Context(), id, caller, url); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"image_url": url})
}

// callerIDFromHeader validates the bearer token on an otherwise public route
func callerIDFromHeader(c *gin.Context, validator service.IAuthService) (uuid.UUID, bool) {
	authHeader := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if len(authHeader) <= len(prefix) || authHeader[:len(prefix)] != prefix {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
		return uuid.Nil, false
	}
	claims, err := validator.ValidateToken(authHeader[len(prefix):])
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return uuid.Nil, false
	}
	return claims.UserID, true
}
