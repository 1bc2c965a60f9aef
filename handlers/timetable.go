package handlers

import (
	"net/http"

	"sprout/models"
	"sprout/services/timetable"
	"sprout/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TimetableHandler serves the working-set schedule and the saved timetables.
type TimetableHandler struct {
	Service timetable.TimetableService
}

// NewTimetableHandler returns a handler bound to the given service.
func NewTimetableHandler(svc timetable.TimetableService) *TimetableHandler {
	return &TimetableHandler{Service: svc}
}

// GetScheduleHandler handles GET /api/schedule.
func (h *TimetableHandler) GetScheduleHandler(c *gin.Context) {
	logger := utils.GetLogger()
	entries, err := h.Service.CurrentSchedule()
	if err != nil {
		logger.Error("Failed to load working set", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedules": entries})
}

// PutScheduleHandler handles PUT /api/schedule.
func (h *TimetableHandler) PutScheduleHandler(c *gin.Context) {
	var req struct {
		Schedules []models.ScheduleEntry `json:"schedules"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.ReplaceSchedule(req.Schedules); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Schedule saved"})
}

// ClearScheduleHandler handles DELETE /api/schedule.
func (h *TimetableHandler) ClearScheduleHandler(c *gin.Context) {
	logger := utils.GetLogger()
	if err := h.Service.ClearSchedule(); err != nil {
		logger.Error("Failed to clear working set", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Schedule cleared"})
}

// AddEntryHandler handles POST /api/schedule/entries.
func (h *TimetableHandler) AddEntryHandler(c *gin.Context) {
	var entry models.ScheduleEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.AddClass(entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Class added"})
}

// RemoveEntryHandler handles DELETE /api/schedule/entries/:catalogId.
func (h *TimetableHandler) RemoveEntryHandler(c *gin.Context) {
	catalogID := c.Param("catalogId")
	if err := h.Service.RemoveClass(catalogID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Class removed"})
}

// SaveTimetableHandler handles POST /api/timetables.
func (h *TimetableHandler) SaveTimetableHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID, _ := currentUserID(c)

	var req struct {
		Name      string                 `json:"name" binding:"required"`
		Schedules []models.ScheduleEntry `json:"schedules"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	saved, err := h.Service.SaveTimetable(req.Name, userID, req.Schedules)
	if err != nil {
		logger.Error("Failed to save timetable", zap.String("name", req.Name), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// ListTimetablesHandler handles GET /api/timetables.
func (h *TimetableHandler) ListTimetablesHandler(c *gin.Context) {
	logger := utils.GetLogger()
	timetables, err := h.Service.ListSaved()
	if err != nil {
		logger.Error("Failed to list timetables", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"timetables": timetables})
}

// GetTimetableHandler handles GET /api/timetables/:id.
func (h *TimetableHandler) GetTimetableHandler(c *gin.Context) {
	id := c.Param("id")
	saved, found, err := h.Service.GetSaved(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Timetable not found"})
		return
	}
	c.JSON(http.StatusOK, saved)
}

// RenameTimetableHandler handles PATCH /api/timetables/:id/name.
func (h *TimetableHandler) RenameTimetableHandler(c *gin.Context) {
	id := c.Param("id")

	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.Service.RenameSaved(id, req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound, gin.H{"error": "Timetable not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Timetable renamed"})
}

// DeleteTimetableHandler handles DELETE /api/timetables/:id.
func (h *TimetableHandler) DeleteTimetableHandler(c *gin.Context) {
	id := c.Param("id")
	deleted, err := h.Service.DeleteSaved(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Timetable not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Timetable deleted"})
}

// SetActiveHandler handles PUT /api/timetables/active/:id.
func (h *TimetableHandler) SetActiveHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.SetActive(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"activeId": id})
}

// GetActiveHandler handles GET /api/timetables/active. The pointer may
// reference a deleted record; the found flag lets the client detect and
// clear a dangling pointer.
func (h *TimetableHandler) GetActiveHandler(c *gin.Context) {
	id, set, err := h.Service.ActiveID()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !set {
		c.JSON(http.StatusOK, gin.H{"activeId": "", "found": false})
		return
	}

	saved, found, err := h.Service.GetSaved(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusOK, gin.H{"activeId": id, "found": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"activeId": id, "found": true, "timetable": saved})
}

// ResetTimetablesHandler handles DELETE /api/timetables. Debug/reset operation.
func (h *TimetableHandler) ResetTimetablesHandler(c *gin.Context) {
	if err := h.Service.ResetSaved(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All timetables cleared"})
}
