package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups every endpoint handler for route registration.
type HandlerBundle struct {
	// Working-set schedule endpoints.
	GetScheduleHandler   gin.HandlerFunc
	PutScheduleHandler   gin.HandlerFunc
	ClearScheduleHandler gin.HandlerFunc
	AddEntryHandler      gin.HandlerFunc
	RemoveEntryHandler   gin.HandlerFunc

	// Saved-timetable endpoints.
	SaveTimetableHandler   gin.HandlerFunc
	ListTimetablesHandler  gin.HandlerFunc
	GetTimetableHandler    gin.HandlerFunc
	RenameTimetableHandler gin.HandlerFunc
	DeleteTimetableHandler gin.HandlerFunc
	SetActiveHandler       gin.HandlerFunc
	GetActiveHandler       gin.HandlerFunc
	ResetTimetablesHandler gin.HandlerFunc

	// Recommendation endpoints.
	RecommendationsHandler gin.HandlerFunc

	// Certificate endpoints.
	CertificateBoardHandler gin.HandlerFunc
	BookmarksHandler        gin.HandlerFunc
	ToggleBookmarkHandler   gin.HandlerFunc
	RecordViewHandler       gin.HandlerFunc

	// Document endpoints.
	FoldersHandler gin.HandlerFunc
	FilesHandler   gin.HandlerFunc

	// Banner endpoints.
	BannersHandler gin.HandlerFunc

	// Chat endpoints.
	ChatMessageHandler gin.HandlerFunc
}
