package recommend

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pet-nutrition-api/internal/core/nutrition"
	recommendService "pet-nutrition-api/internal/core/recommend"
	"pet-nutrition-api/internal/infrastructure/catalog"
	"pet-nutrition-api/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cat, err := catalog.Load(context.Background(), &config.CatalogConfig{})
	if err != nil {
		t.Fatalf("failed to load builtin catalog: %v", err)
	}

	svc := recommendService.NewService(cat, nil, &config.RecommendConfig{
		DefaultLimit:  3,
		MinScore:      30,
		CandidatePool: 50,
	})
	handler := NewHandler(svc)

	router := gin.New()
	group := router.Group("/api/v1/recommend")
	{
		group.POST("", handler.HandleRecommend)
		group.POST("/score", handler.HandleScore)
		group.POST("/modify", handler.HandleModify)
		group.POST("/portion", handler.HandlePortion)
	}
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal request body: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func testProfile() nutrition.PetProfile {
	return nutrition.PetProfile{
		Name:           "Rex",
		Type:           "dog",
		Breed:          "labrador",
		Age:            "adult",
		WeightKg:       25,
		HealthConcerns: []string{"joint health"},
	}
}

func TestHandleRecommend(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(t, router, "/api/v1/recommend", nutrition.RecommendRequest{
		Profile: testProfile(),
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var resp recommendService.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Count == 0 {
		t.Error("expected at least one recommendation")
	}
	if resp.Species != "dogs" {
		t.Errorf("species = %q, want dogs", resp.Species)
	}
}

func TestHandleRecommendValidation(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(t, router, "/api/v1/recommend", nutrition.RecommendRequest{
		Profile: nutrition.PetProfile{Type: "dog"},
	})

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for zero weight", w.Code)
	}
}

func TestHandleRecommendMalformedBody(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommend",
		bytes.NewReader([]byte(`{"profile": `)))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for malformed JSON", w.Code)
	}
}

func TestHandleScore(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(t, router, "/api/v1/recommend/score", RecipeProfileRequest{
		RecipeID: "dog-turkey-sweet-potato",
		Profile:  testProfile(),
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var result nutrition.ScoreResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.MatchScore < 0 || result.MatchScore > 100 {
		t.Errorf("MatchScore = %d, outside [0, 100]", result.MatchScore)
	}
	if result.Stars < 1 || result.Stars > 5 {
		t.Errorf("Stars = %d, outside [1, 5]", result.Stars)
	}
}

func TestHandleScoreUnknownRecipe(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(t, router, "/api/v1/recommend/score", RecipeProfileRequest{
		RecipeID: "no-such-recipe",
		Profile:  testProfile(),
	})

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404 for unknown recipe", w.Code)
	}
}

func TestHandleModify(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(t, router, "/api/v1/recommend/modify", RecipeProfileRequest{
		RecipeID: "dog-turkey-sweet-potato",
		Profile:  testProfile(),
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var result nutrition.ModifierResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.ModifiedRecipe == nil {
		t.Fatal("modified_recipe missing from response")
	}
	if len(result.AddedIngredients) == 0 {
		t.Error("expected joint supplements to be added")
	}
}

func TestHandlePortion(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(t, router, "/api/v1/recommend/portion", RecipeProfileRequest{
		RecipeID: "dog-turkey-sweet-potato",
		Profile:  testProfile(),
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var plan nutrition.PortionPlan
	if err := json.Unmarshal(w.Body.Bytes(), &plan); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if plan.DailyPortionGrams <= 0 {
		t.Errorf("DailyPortionGrams = %d, want positive", plan.DailyPortionGrams)
	}
	if plan.Multiplier < 0.3 || plan.Multiplier > 3.0 {
		t.Errorf("Multiplier = %v, outside [0.3, 3.0]", plan.Multiplier)
	}
}

func TestHandlePortionRejectsZeroWeight(t *testing.T) {
	router := newTestRouter(t)

	profile := testProfile()
	profile.WeightKg = 0

	w := postJSON(t, router, "/api/v1/recommend/portion", RecipeProfileRequest{
		RecipeID: "dog-turkey-sweet-potato",
		Profile:  profile,
	})

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for zero weight", w.Code)
	}
}
