package handlers

import (
	"net/http"

	"sprout/services/banner"
	"sprout/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BannerHandler serves home-screen banners.
type BannerHandler struct {
	Service banner.BannerService
}

// NewBannerHandler returns a handler bound to the given service.
func NewBannerHandler(svc banner.BannerService) *BannerHandler {
	return &BannerHandler{Service: svc}
}

// BannersHandler handles GET /api/banners.
func (h *BannerHandler) BannersHandler(c *gin.Context) {
	logger := utils.GetLogger()
	department := c.Query("department")

	banners, err := h.Service.VisibleBanners(c.Request.Context(), department)
	if err != nil {
		logger.Error("Failed to load banners", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"banners": banners})
}
