package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "github.com/nickthelegend/podio-ai/docs"
	"github.com/nickthelegend/podio-ai/internal/config"
	"github.com/nickthelegend/podio-ai/internal/deck"
	"github.com/nickthelegend/podio-ai/internal/export"
	"github.com/nickthelegend/podio-ai/internal/genai"
	"github.com/nickthelegend/podio-ai/internal/handlers"
	"github.com/nickthelegend/podio-ai/internal/jobs"
	"github.com/nickthelegend/podio-ai/internal/middleware"
	"github.com/nickthelegend/podio-ai/internal/store"
	"github.com/nickthelegend/podio-ai/internal/system"
	"github.com/nickthelegend/podio-ai/internal/tts"
	"github.com/nickthelegend/podio-ai/internal/worker"
)

// @title Podio AI API
// @version 1.0
// @description Generates slide decks, narrated videos, podcasts and PDF documents from text topics.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	config.InitLogger()

	cfg, err := config.Load()
	if err != nil {
		config.Log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := config.InitSupabase(cfg); err != nil {
		config.Log.Fatalf("Failed to initialize Supabase: %v", err)
	}

	profile := export.DefaultEncoderProfile()
	if cfg.EncoderProfilePath != "" {
		profile, err = export.LoadEncoderProfile(cfg.EncoderProfilePath)
		if err != nil {
			config.Log.Fatalf("Failed to load encoder profile: %v", err)
		}
	}

	gen := genai.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	ttsClient := tts.NewClient(cfg.TTSAPIKey, cfg.TTSBaseURL, cfg.TTSVoiceID)
	st := store.New(config.SupabaseClient, cfg)
	reg := jobs.NewRegistry(24 * time.Hour)

	dispatcher := worker.NewDispatcher(system.WorkerCount(), config.EnvInt("JOB_QUEUE_SIZE", 100))
	dispatcher.Run()

	h := handlers.NewApplicationHandler(cfg, config.Log, gen, ttsClient,
		deck.New(), st, reg, dispatcher, profile, system.SynthesisBatchSize())

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(middleware.RequestLogger())

	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "ok",
			"message": "Server is healthy",
		})
	})

	apiV1 := app.Group("/api/v1")

	// Deck routes
	apiV1.Post("/slides/generate", h.GenerateSlides)
	apiV1.Get("/slides", h.GetSlides)
	apiV1.Patch("/slides/:index", h.UpdateSlide)
	apiV1.Post("/slides/synthesize", h.SynthesizeDeck)

	// Podcast routes
	apiV1.Post("/podcast/script", h.GenerateScript)
	apiV1.Post("/podcast/refine", h.RefineScript)
	apiV1.Post("/podcast/synthesize", h.SynthesizePodcast)

	// Project routes
	apiV1.Post("/projects", h.SaveProject)
	apiV1.Get("/projects", h.ListProjects)
	apiV1.Get("/projects/:id", h.GetProject)
	apiV1.Post("/projects/:id/load", h.LoadProject)
	apiV1.Delete("/projects/:id", h.DeleteProject)
	apiV1.Get("/projects/:id/share", h.ShareProject)

	// Preview routes
	apiV1.Get("/preview/manifest", h.PreviewManifest)
	apiV1.Get("/preview/frames/:frame", h.PreviewFrame)
	apiV1.Get("/preview/stills/:index", h.PreviewStill)

	// Export routes
	apiV1.Post("/export/video", h.ExportVideo)
	apiV1.Post("/export/document", h.ExportDocument)
	apiV1.Get("/jobs/:id", h.GetJob)
	apiV1.Get("/jobs/:id/download", h.DownloadExport)

	go func() {
		config.Log.WithField("port", cfg.Port).Info("Starting server")
		if err := app.Listen(":" + cfg.Port); err != nil {
			config.Log.Fatalf("Server stopped: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	config.Log.Info("Shutting down")
	if err := app.Shutdown(); err != nil {
		config.Log.WithError(err).Error("Server shutdown failed")
	}
	dispatcher.Stop()
	config.Log.Info("Shutdown complete")
}
