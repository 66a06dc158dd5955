package recommend

import (
	"net/http"

	"pet-nutrition-api/internal/core/nutrition"
	recommendService "pet-nutrition-api/internal/core/recommend"
	"pet-nutrition-api/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RecipeProfileRequest targets a single catalog recipe with a pet
// profile. Used by the score, modify and portion endpoints.
type RecipeProfileRequest struct {
	RecipeID string               `json:"recipe_id" binding:"required"`
	Profile  nutrition.PetProfile `json:"profile" binding:"required"`
}

// Handler serves the recommendation endpoints.
type Handler struct {
	service *recommendService.Service
}

// NewHandler creates a recommendation handler.
func NewHandler(service *recommendService.Service) *Handler {
	return &Handler{
		service: service,
	}
}

func requestID(c *gin.Context) string {
	id := c.GetHeader("X-Request-ID")
	if id == "" {
		id = uuid.New().String()
		c.Header("X-Request-ID", id)
	}
	return id
}

// writeError maps service errors onto HTTP responses.
func writeError(c *gin.Context, reqID string, err error) {
	if common.IsValidationError(err) {
		c.JSON(http.StatusBadRequest, common.ErrorResponse{
			Code:    common.ErrCodeInvalidRequest,
			Message: err.Error(),
		})
		return
	}
	if custom, ok := err.(*common.CustomError); ok {
		c.JSON(custom.Status, common.ErrorResponse{
			Code:    custom.Code,
			Message: custom.Message,
		})
		return
	}
	common.LogError("Unhandled service error",
		zap.Error(err),
		zap.String("request_id", reqID),
	)
	c.JSON(http.StatusInternalServerError, common.ErrorResponse{
		Code:    common.ErrCodeInternalError,
		Message: "Internal server error",
	})
}

// HandleRecommend runs the full recommendation pipeline.
func (h *Handler) HandleRecommend(c *gin.Context) {
	reqID := requestID(c)

	common.LogInfo("Processing recommendation request",
		zap.String("request_id", reqID),
		zap.String("client_ip", c.ClientIP()),
	)

	var req nutrition.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("Invalid request format",
			zap.Error(err),
			zap.String("request_id", reqID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	resp, err := h.service.Recommend(c.Request.Context(), &req)
	if err != nil {
		writeError(c, reqID, err)
		return
	}

	common.LogInfo("Recommendation request succeeded",
		zap.String("request_id", reqID),
		zap.String("species", resp.Species),
		zap.Int("count", resp.Count),
		zap.Bool("cache_hit", resp.CacheHit),
	)

	c.JSON(http.StatusOK, resp)
}

// HandleScore scores one recipe against a pet profile.
func (h *Handler) HandleScore(c *gin.Context) {
	reqID := requestID(c)

	var req RecipeProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("Invalid request format",
			zap.Error(err),
			zap.String("request_id", reqID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.service.ScoreRecipe(req.RecipeID, &req.Profile)
	if err != nil {
		writeError(c, reqID, err)
		return
	}

	common.LogInfo("Recipe scored",
		zap.String("request_id", reqID),
		zap.String("recipe_id", req.RecipeID),
		zap.Int("match_score", result.MatchScore),
		zap.Int("stars", result.Stars),
	)

	c.JSON(http.StatusOK, result)
}

// HandleModify applies dietary modifiers to one recipe.
func (h *Handler) HandleModify(c *gin.Context) {
	reqID := requestID(c)

	var req RecipeProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("Invalid request format",
			zap.Error(err),
			zap.String("request_id", reqID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.service.ModifyRecipe(req.RecipeID, &req.Profile)
	if err != nil {
		writeError(c, reqID, err)
		return
	}

	common.LogInfo("Recipe modified",
		zap.String("request_id", reqID),
		zap.String("recipe_id", req.RecipeID),
		zap.Int("added_ingredients", len(result.AddedIngredients)),
		zap.Int("conflicts", result.ConflictCount),
	)

	c.JSON(http.StatusOK, result)
}

// HandlePortion computes the feeding plan for one recipe.
func (h *Handler) HandlePortion(c *gin.Context) {
	reqID := requestID(c)

	var req RecipeProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("Invalid request format",
			zap.Error(err),
			zap.String("request_id", reqID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if req.Profile.WeightKg <= 0 {
		c.JSON(http.StatusBadRequest, common.ErrorResponse{
			Code:    common.ErrCodeInvalidRequest,
			Message: "pet weight must be positive",
		})
		return
	}

	plan, err := h.service.PortionPlan(req.RecipeID, &req.Profile)
	if err != nil {
		writeError(c, reqID, err)
		return
	}

	common.LogInfo("Portion plan computed",
		zap.String("request_id", reqID),
		zap.String("recipe_id", req.RecipeID),
		zap.Int("daily_calories", plan.DailyCalories),
		zap.Int("daily_portion_grams", plan.DailyPortionGrams),
	)

	c.JSON(http.StatusOK, plan)
}
