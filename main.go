// File: sprout/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sprout/config"
	"sprout/database"
	"sprout/database/localstore"
	bannerRepoPkg "sprout/database/repository/banner"
	catalogRepoPkg "sprout/database/repository/catalog"
	certificateRepoPkg "sprout/database/repository/certificate"
	documentRepoPkg "sprout/database/repository/document"
	"sprout/handlers"
	"sprout/middleware"
	"sprout/routes"
	"sprout/services/banner"
	"sprout/services/certificate"
	"sprout/services/chat"
	"sprout/services/document"
	"sprout/services/recommend"
	"sprout/services/timetable"
	"sprout/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitLocalDB()
	utils.InitCache()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Local stores.
	kv := localstore.NewSQLiteKV(database.LocalDB)
	workingSet := localstore.NewWorkingSetStore(kv)
	savedTimetables := localstore.NewTimetableStore(kv)

	// Remote repositories.
	catalogRepo := catalogRepoPkg.NewFirestoreCatalogRepo()
	certificateRepo := certificateRepoPkg.NewFirestoreCertificateRepo()
	documentRepo := documentRepoPkg.NewFirestoreDocumentRepo()
	bannerRepo := bannerRepoPkg.NewFirestoreBannerRepo()

	// Services.
	timetableService := &timetable.DefaultTimetableService{
		WorkingSet: workingSet,
		Saved:      savedTimetables,
	}
	recommendationService := recommend.NewDefaultRecommendationService(catalogRepo)
	certificateService := &certificate.DefaultCertificateService{Repo: certificateRepo}
	documentService := &document.DefaultDocumentService{Repo: documentRepo}
	bannerService := banner.NewDefaultBannerService(bannerRepo)
	chatService := chat.NewScriptedChatService()

	// Handlers.
	timetableHandler := handlers.NewTimetableHandler(timetableService)
	recommendationHandler := handlers.NewRecommendationHandler(recommendationService)
	certificateHandler := handlers.NewCertificateHandler(certificateService)
	documentHandler := handlers.NewDocumentHandler(documentService)
	bannerHandler := handlers.NewBannerHandler(bannerService)
	chatHandler := handlers.NewChatHandler(chatService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Working-set schedule endpoints.
		GetScheduleHandler:   timetableHandler.GetScheduleHandler,
		PutScheduleHandler:   timetableHandler.PutScheduleHandler,
		ClearScheduleHandler: timetableHandler.ClearScheduleHandler,
		AddEntryHandler:      timetableHandler.AddEntryHandler,
		RemoveEntryHandler:   timetableHandler.RemoveEntryHandler,

		// Saved-timetable endpoints.
		SaveTimetableHandler:   timetableHandler.SaveTimetableHandler,
		ListTimetablesHandler:  timetableHandler.ListTimetablesHandler,
		GetTimetableHandler:    timetableHandler.GetTimetableHandler,
		RenameTimetableHandler: timetableHandler.RenameTimetableHandler,
		DeleteTimetableHandler: timetableHandler.DeleteTimetableHandler,
		SetActiveHandler:       timetableHandler.SetActiveHandler,
		GetActiveHandler:       timetableHandler.GetActiveHandler,
		ResetTimetablesHandler: timetableHandler.ResetTimetablesHandler,

		// Recommendation endpoints.
		RecommendationsHandler: recommendationHandler.RecommendationsHandler,

		// Certificate endpoints.
		CertificateBoardHandler: certificateHandler.BoardHandler,
		BookmarksHandler:        certificateHandler.BookmarksHandler,
		ToggleBookmarkHandler:   certificateHandler.ToggleBookmarkHandler,
		RecordViewHandler:       certificateHandler.RecordViewHandler,

		// Document endpoints.
		FoldersHandler: documentHandler.FoldersHandler,
		FilesHandler:   documentHandler.FilesHandler,

		// Banner endpoints.
		BannersHandler: bannerHandler.BannersHandler,

		// Chat endpoints.
		ChatMessageHandler: chatHandler.ChatMessageHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	if err := database.LocalDB.Close(); err != nil {
		logger.Sugar().Warnf("main: failed to close local store: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
