package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/recipefinder/backend/internal/api"
	"github.com/recipefinder/backend/internal/middleware"
	"github.com/recipefinder/backend/internal/service"
)

// Deps carries the collaborators the router wires into handlers. RateLimiter
// and ImageService are optional.
type Deps struct {
	DB                *gorm.DB
	AuthService       service.IAuthService
	IngredientService service.IIngredientService
	RecipeService     service.IRecipeService
	SearchService     service.ISearchService
	ImageService      service.IImageService
	RateLimiter       *middleware.RateLimiter
}

// SetupRouter configures the application routes
func SetupRouter(deps Deps) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	v1 := router.Group("/api/v1")
	{
		api.NewHealthHandler(deps.DB).RegisterRoutes(v1)
		api.NewAuthHandler(deps.AuthService).RegisterRoutes(v1)
		api.NewIngredientHandler(deps.IngredientService, deps.AuthService).RegisterRoutes(v1)
		api.NewSearchHandler(deps.SearchService).RegisterRoutes(v1)

		api.NewRecipeHandler(deps.RecipeService, deps.AuthService, deps.ImageService, deps.RateLimiter).RegisterRoutes(v1)
	}

	return router
}
