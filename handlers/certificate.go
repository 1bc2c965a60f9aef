package handlers

import (
	"net/http"

	"sprout/services/certificate"
	"sprout/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CertificateHandler serves the certificate board and per-user bookmarks.
type CertificateHandler struct {
	Service certificate.CertificateService
}

// NewCertificateHandler returns a handler bound to the given service.
func NewCertificateHandler(svc certificate.CertificateService) *CertificateHandler {
	return &CertificateHandler{Service: svc}
}

// BoardHandler handles GET /api/certificates.
func (h *CertificateHandler) BoardHandler(c *gin.Context) {
	logger := utils.GetLogger()
	department := c.Query("department")

	certs, err := h.Service.Board(c.Request.Context(), department)
	if err != nil {
		logger.Error("Failed to load certificate board", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"certificates": certs})
}

// BookmarksHandler handles GET /api/certificates/bookmarks.
func (h *CertificateHandler) BookmarksHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing user identity"})
		return
	}

	certs, err := h.Service.Bookmarks(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to load bookmarks", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"certificates": certs})
}

// ToggleBookmarkHandler handles POST /api/certificates/:id/bookmark.
func (h *CertificateHandler) ToggleBookmarkHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing user identity"})
		return
	}

	certID := c.Param("id")
	bookmarked, err := h.Service.ToggleBookmark(c.Request.Context(), certID, userID)
	if err != nil {
		logger.Error("Failed to toggle bookmark", zap.String("certID", certID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookmarked": bookmarked})
}

// RecordViewHandler handles POST /api/certificates/:id/view.
func (h *CertificateHandler) RecordViewHandler(c *gin.Context) {
	certID := c.Param("id")
	if err := h.Service.RecordView(c.Request.Context(), certID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "View recorded"})
}
