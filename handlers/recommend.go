package handlers

import (
	"net/http"

	"sprout/services/recommend"
	"sprout/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecommendationHandler serves the ranked course recommendations.
type RecommendationHandler struct {
	Service recommend.RecommendationService
}

// NewRecommendationHandler returns a handler bound to the given service.
func NewRecommendationHandler(svc recommend.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{Service: svc}
}

// RecommendationsHandler handles GET /api/recommendations.
func (h *RecommendationHandler) RecommendationsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	department := c.Query("department")
	cohort := c.Query("cohort")
	if department == "" || cohort == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "department and cohort are required"})
		return
	}

	courses, err := h.Service.Recommend(c.Request.Context(), department, cohort)
	if err != nil {
		logger.Error("Failed to build recommendations",
			zap.String("department", department), zap.String("cohort", cohort), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"courses": courses})
}
