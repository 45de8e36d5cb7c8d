package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recipefinder/backend/internal/service"
)

// SearchHandler handles recipe search by ingredient names
type SearchHandler struct {
	searchService service.ISearchService
}

// NewSearchHandler creates a new SearchHandler instance
func NewSearchHandler(searchService service.ISearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// RegisterRoutes registers the search route on the given router group
func (h *SearchHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/recipes/search", h.SearchByIngredients)
}

// SearchByIngredients returns every recipe using at least one of the
// comma-separated ingredient names in the "ingredients" query parameter.
func (h *SearchHandler) SearchByIngredients(c *gin.Context) {
	csv := c.Query("ingredients")
	if csv == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ingredients query parameter is required"})
		return
	}

	recipes, err := h.searchService.SearchByIngredients(c.Request.Context(), csv)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}
