package routes

import (
	"net/http"
	"time"

	"sprout/handlers"
	"sprout/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterScheduleRoutes registers the working-set schedule endpoints.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/schedule")
	{
		api.Use(middleware.FirebaseAuthMiddleware())
		api.GET("", hb.GetScheduleHandler)
		api.PUT("", hb.PutScheduleHandler)
		api.DELETE("", hb.ClearScheduleHandler)
		api.POST("/entries", hb.AddEntryHandler)
		api.DELETE("/entries/:catalogId", hb.RemoveEntryHandler)
	}
}

// RegisterTimetableRoutes registers the saved-timetable endpoints.
func RegisterTimetableRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/timetables")
	{
		api.Use(middleware.FirebaseAuthMiddleware())
		api.POST("", hb.SaveTimetableHandler)
		api.GET("", hb.ListTimetablesHandler)
		api.DELETE("", hb.ResetTimetablesHandler)
		api.GET("/active", hb.GetActiveHandler)
		api.PUT("/active/:id", hb.SetActiveHandler)
		api.GET("/:id", hb.GetTimetableHandler)
		api.PATCH("/:id/name", hb.RenameTimetableHandler)
		api.DELETE("/:id", hb.DeleteTimetableHandler)
	}
}

// RegisterRecommendationRoutes registers the course-recommendation endpoint.
func RegisterRecommendationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/recommendations")
	{
		api.Use(middleware.FirebaseAuthMiddleware())
		api.GET("", hb.RecommendationsHandler)
	}
}

// RegisterCertificateRoutes registers the certificate board endpoints.
func RegisterCertificateRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/certificates")
	{
		api.Use(middleware.FirebaseAuthMiddleware())
		api.GET("", hb.CertificateBoardHandler)
		api.GET("/bookmarks", hb.BookmarksHandler)
		api.POST("/:id/bookmark", hb.ToggleBookmarkHandler)
		api.POST("/:id/view", hb.RecordViewHandler)
	}
}

// RegisterDocumentRoutes registers the document-folder endpoints.
func RegisterDocumentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/documents")
	{
		api.Use(middleware.FirebaseAuthMiddleware())
		api.GET("/folders", hb.FoldersHandler)
		api.GET("/folders/:id/files", hb.FilesHandler)
	}
}

// RegisterBannerRoutes registers the banner endpoint. Banners are public.
func RegisterBannerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/banners", hb.BannersHandler)
}

// RegisterChatRoutes registers the assistant endpoint.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/chat")
	{
		api.Use(middleware.FirebaseAuthMiddleware())
		api.POST("", hb.ChatMessageHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Sprout"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterScheduleRoutes(r, hb)
	RegisterTimetableRoutes(r, hb)
	RegisterRecommendationRoutes(r, hb)
	RegisterCertificateRoutes(r, hb)
	RegisterDocumentRoutes(r, hb)
	RegisterBannerRoutes(r, hb)
	RegisterChatRoutes(r, hb)
}
