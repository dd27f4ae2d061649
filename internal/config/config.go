package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	ServerPort string
	GinMode    string
	LogLevel   string
	LogFormat  string

	// Gemini settings. The API key is required for real generation;
	// tests inject a mock provider and never read it.
	GeminiAPIKey string
	GeminiModel  string

	UploadDir      string
	OutputDir      string
	MaxUploadBytes int64

	// OCRBinary is the tesseract executable used for scanned PDFs.
	OCRBinary string
	// PDFToImageBinary converts PDF pages to images for OCR (poppler's pdftoppm).
	PDFToImageBinary string

	// AllowedOrigins controls HTTP CORS.
	// Empty slice means all origins are permitted (dev default).
	AllowedOrigins []string
}

// Load reads configuration from environment variables with sensible defaults.
// It loads .env file if present but does not fail if missing.
func Load() *Config {
	_ = godotenv.Load() // Ignore error — .env is optional

	return &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		GinMode:          getEnv("GIN_MODE", "debug"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFormat:        getEnv("LOG_FORMAT", "pretty"),
		GeminiAPIKey:     getEnv("GEMINI_API_KEY", ""),
		GeminiModel:      getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		UploadDir:        getEnv("UPLOAD_DIR", "./uploads"),
		OutputDir:        getEnv("OUTPUT_DIR", "./outputs"),
		MaxUploadBytes:   int64(getEnvInt("MAX_UPLOAD_SIZE_MB", 100)) * 1024 * 1024,
		OCRBinary:        getEnv("OCR_BINARY", "tesseract"),
		PDFToImageBinary: getEnv("PDF_TO_IMAGE_BINARY", "pdftoppm"),
		AllowedOrigins:   parseOrigins(getEnv("ALLOWED_ORIGINS", "")),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// parseOrigins splits a comma-separated origins string into a trimmed slice.
// Returns nil (allow-all) if the input is empty.
func parseOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
