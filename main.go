// File: concierge/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"concierge/config"
	"concierge/cron"
	"concierge/database"
	"concierge/database/repository/inventory"
	notesRepoPkg "concierge/database/repository/notes"
	"concierge/handlers"
	"concierge/routes"
	ai "concierge/services/intelligence"
	notesSvcPkg "concierge/services/notes"
	"concierge/services/reception"
	"concierge/services/session"
	"concierge/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Inventory repository: in-process by default, MongoDB when configured.
	var invRepo inventory.Repository
	switch config.AppConfig.DatabaseDriver {
	case "mongo":
		database.InitDB()
		invRepo = inventory.NewMongoRepo()
	default:
		invRepo = inventory.NewMemoryRepo(inventory.DefaultRooms())
	}

	noteRepo, err := notesRepoPkg.NewFSRepo(config.AppConfig.NotesDir)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to open note store: %v", err)
	}

	// Intelligence backend: Gemini when a key is configured, otherwise the
	// deterministic lexical embedder (and no summaries).
	var aiClient ai.Client
	var embedder ai.Embedder = ai.NewLexicalEmbedder()
	if key := config.AppConfig.GeminiAPIKey; key != "" {
		gemini, err := ai.NewGeminiClient(key)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize Gemini client: %v", err)
		}
		aiClient = gemini
		embedder = gemini
	}

	sessionMgr, err := session.NewManager(config.AppConfig.TranscriptsDir, logger)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to open transcripts dir: %v", err)
	}

	cacheClient := utils.GetCacheClient()
	cron.InitExportWorker(invRepo, config.AppConfig.ExportsDir)

	receptionService := &reception.DefaultService{
		Repo:     invRepo,
		Exporter: cron.NewEnqueuer(),
		Logger:   logger,
	}
	notesService := &notesSvcPkg.DefaultService{
		Repo:     noteRepo,
		Embedder: embedder,
		Logger:   logger,
	}

	receptionHandler := handlers.NewReceptionHandler(receptionService, cacheClient, logger)
	notesHandler := handlers.NewNotesHandler(notesService, logger)
	sessionHandler := handlers.NewSessionHandler(sessionMgr, notesService, aiClient, logger)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(routes.CORSConfig())

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		SearchAvailableRooms:   receptionHandler.SearchAvailableRooms,
		CheckRoomAvailability:  receptionHandler.CheckRoomAvailability,
		GetRoomPricing:         receptionHandler.GetRoomPricing,
		BookRoom:               receptionHandler.BookRoom,
		GetRoomDetails:         receptionHandler.GetRoomDetails,
		SuggestRoomForOccasion: receptionHandler.SuggestRoomForOccasion,
		CalculateDiscount:      receptionHandler.CalculateDiscount,
		GetBookingSummary:      receptionHandler.GetBookingSummary,

		AddMeetingFile:       notesHandler.AddMeetingFile,
		SearchMeetingFiles:   notesHandler.SearchMeetingFiles,
		RetrieveMeetingFile:  notesHandler.RetrieveMeetingFile,
		TruncateMeetingFiles: notesHandler.TruncateMeetingFiles,
		IngestMeetingPDF:     notesHandler.IngestMeetingPDF,

		StartSession:     sessionHandler.StartSession,
		AppendTranscript: sessionHandler.AppendTranscript,
		FinalizeSession:  sessionHandler.FinalizeSession,

		Health: handlers.Health,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterToolRoutes(router, handlerBundle)
	routes.RegisterSessionRoutes(router, handlerBundle)
	routes.RegisterHealthRoutes(router, handlerBundle)

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

	logger.Sugar().Info("main: server stopped gracefully")
}
