package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/recipefinder/backend/internal/service"
	"github.com/recipefinder/backend/internal/testhelpers"
)

const testJWTSecret = "test-jwt-secret"

// setupTestRouter builds a gin engine with every handler registered against
// an in-memory database.
func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDB(t)
	authService := service.NewAuthService(db, testJWTSecret)

	router := gin.New()
	v1 := router.Group("/api/v1")
	NewHealthHandler(db).RegisterRoutes(v1)
	NewAuthHandler(authService).RegisterRoutes(v1)
	NewIngredientHandler(service.NewIngredientService(db), authService).RegisterRoutes(v1)
	NewSearchHandler(service.NewSearchService(db)).RegisterRoutes(v1)
	NewRecipeHandler(service.NewRecipeService(db), authService, nil, nil).RegisterRoutes(v1)

	return router, db
}

// createTestUserAndToken registers a user through the auth service and
// returns a bearer token for it.
func createTestUserAndToken(t *testing.T, db *gorm.DB, email string) string {
	t.Helper()
	authService := service.NewAuthService(db, testJWTSecret)
	token, err := authService.Register(context.Background(), "Test User", email, "password123")
	require.NoError(t, err)
	return token
}

// doJSON performs a JSON request against the router, optionally authorized
func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(data)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("expected status %d, got %d: %s", want, w.Code, w.Body.String())
	}
}
