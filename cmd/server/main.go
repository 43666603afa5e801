package main

import (
	"context"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"drivenotes/internal/auth"
	"drivenotes/internal/config"
	"drivenotes/internal/handler"
	"drivenotes/internal/middleware"
	driverepo "drivenotes/internal/repository/drive"
	"drivenotes/internal/service/extract"
	"drivenotes/internal/service/folders"
	"drivenotes/internal/service/notes"
	"drivenotes/internal/service/store"
	"drivenotes/internal/service/summarize"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	var logOut io.Writer = os.Stdout
	if cfg.LogDir != "" {
		logFile, err := config.SetupLogFile(cfg.LogDir, 10)
		if err != nil {
			log.Fatalf("Failed to setup log file: %v", err)
		}
		defer logFile.Close()
		logOut = io.MultiWriter(os.Stdout, logFile)
	}

	logger := slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"root_folder", cfg.RootFolderName,
	)

	// Optional ID token verification against Google's JWKS
	verifier, err := auth.NewGoogleVerifier(cfg.GoogleJWKSURL, logger)
	if err != nil {
		log.Fatalf("Failed to create ID token verifier: %v", err)
	}
	defer verifier.Close()

	// Storage provider boundary
	files := driverepo.NewStore(logger)
	resolver := folders.NewResolver(files, cfg.RootFolderName, logger)
	slotStore := store.NewStore(files, logger)
	extractor := extract.NewExtractor(logger)
	noteService := notes.NewService(resolver, slotStore, files, extractor, logger)

	// Handlers
	notesHandler := handler.NewNotesHandler(noteService, logger)
	mediaHandler := handler.NewMediaHandler(noteService, files, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", notesHandler.HealthCheck)

	// Note routes
	mux.HandleFunc("GET /api/notes", notesHandler.ListNotes)
	mux.HandleFunc("POST /api/notes", notesHandler.CreateNote)
	mux.HandleFunc("GET /api/notes/{id}", notesHandler.GetNote)
	mux.HandleFunc("PUT /api/notes/{id}", notesHandler.SaveNote)
	mux.HandleFunc("DELETE /api/notes/{id}", notesHandler.DeleteNote)
	mux.HandleFunc("GET /api/notes/{id}/name", notesHandler.GetNoteName)
	mux.HandleFunc("GET /api/notes/{id}/tags", notesHandler.GetTags)
	mux.HandleFunc("PUT /api/notes/{id}/tags", notesHandler.PutTags)

	// Audio and document routes
	mux.HandleFunc("GET /api/notes/{id}/audio", mediaHandler.ListAudio)
	mux.HandleFunc("POST /api/notes/{id}/audio", mediaHandler.UploadAudio)
	mux.HandleFunc("GET /api/notes/{id}/documents", mediaHandler.ListDocuments)
	mux.HandleFunc("POST /api/notes/{id}/documents", mediaHandler.UploadDocument)
	mux.HandleFunc("POST /api/documents/{id}/extract", mediaHandler.ExtractText)
	mux.HandleFunc("GET /api/files/{id}", mediaHandler.DownloadFile)

	// Summarization route, only when an API key is configured
	if cfg.GeminiAPIKey != "" {
		summarizer, err := summarize.NewGeminiSummarizer(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel, logger)
		if err != nil {
			log.Fatalf("Failed to setup summarizer: %v", err)
		}
		summarizeHandler := handler.NewSummarizeHandler(summarizer, files, logger)
		mux.HandleFunc("POST /api/summarize", summarizeHandler.Summarize)
	} else {
		logger.Warn("GEMINI_API_KEY not set, summarization disabled")
	}

	// Build middleware chain
	var root http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → RequestID → Recovery → Auth → Routes
	root = middleware.Auth(verifier, logger)(root)
	root = middleware.Recovery(logger)(root)
	root = middleware.RequestID()(root)

	// CORS - Must be outermost to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Id-Token", "Last-Event-ID"},
		AllowCredentials: true,
	})
	root = corsHandler.Handler(root)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // Disabled to allow long-lived SSE streams
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
