package main

import (
	"context"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/papergen/papergen-backend/internal/config"
	"github.com/papergen/papergen-backend/internal/extract"
	"github.com/papergen/papergen-backend/internal/handler"
	"github.com/papergen/papergen-backend/internal/llm"
	"github.com/papergen/papergen-backend/internal/logger"
	"github.com/papergen/papergen-backend/internal/render"
	"github.com/papergen/papergen-backend/internal/router"
	"github.com/papergen/papergen-backend/internal/service"
	"github.com/papergen/papergen-backend/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Str("model", cfg.GeminiModel).
		Msg("Starting PaperGen Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Prepare Working Directories ───────────────────────────────────
	for _, dir := range []string{cfg.UploadDir, cfg.OutputDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatal().Err(err).Str("dir", dir).Msg("Failed to create working directory")
		}
	}

	// ─── Connect to Gemini ─────────────────────────────────────────────
	provider, err := llm.NewGeminiProvider(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize Gemini provider")
	}

	// ─── Initialize Services ──────────────────────────────────────────
	uploadService := service.NewUploadService(cfg)
	extractor := extract.NewService(cfg.OCRBinary, cfg.PDFToImageBinary, log)
	analyzeService := service.NewAnalyzeService(provider, log)
	generateService := service.NewGenerateService(provider, log)
	bankService := service.NewBankService(rand.New(rand.NewSource(time.Now().UnixNano())))
	renderer := render.NewRenderer(cfg.OutputDir, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Upload:   handler.NewUploadHandler(uploadService, extractor, analyzeService),
		Question: handler.NewQuestionHandler(uploadService, extractor, generateService, bankService),
		Export:   handler.NewExportHandler(renderer),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
