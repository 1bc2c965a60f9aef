package handlers

import (
	"net/http"

	"sprout/services/document"
	"sprout/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DocumentHandler serves the document-folder browser.
type DocumentHandler struct {
	Service document.DocumentService
}

// NewDocumentHandler returns a handler bound to the given service.
func NewDocumentHandler(svc document.DocumentService) *DocumentHandler {
	return &DocumentHandler{Service: svc}
}

// FoldersHandler handles GET /api/documents/folders.
func (h *DocumentHandler) FoldersHandler(c *gin.Context) {
	logger := utils.GetLogger()
	folders, err := h.Service.Folders(c.Request.Context())
	if err != nil {
		logger.Error("Failed to load document folders", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"folders": folders})
}

// FilesHandler handles GET /api/documents/folders/:id/files.
func (h *DocumentHandler) FilesHandler(c *gin.Context) {
	logger := utils.GetLogger()
	folderID := c.Param("id")

	files, err := h.Service.Files(c.Request.Context(), folderID)
	if err != nil {
		logger.Error("Failed to load folder files", zap.String("folderID", folderID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"files": files})
}
