package service

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/papergen/papergen-backend/internal/config"
)

// Sentinel errors for document uploads.
var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file too large")
	ErrFileNotFound        = errors.New("file not found")
)

// Extensions the extractor knows how to handle.
var allowedExtensions = map[string]bool{
	".pdf":  true,
	".json": true,
	".txt":  true,
	".md":   true,
	".doc":  true,
	".docx": true,
}

// UploadService handles source-document upload and lookup.
type UploadService struct {
	cfg *config.Config
}

// NewUploadService creates a new UploadService.
func NewUploadService(cfg *config.Config) *UploadService {
	return &UploadService{cfg: cfg}
}

// SaveUpload stores an uploaded file under a UUID filename that keeps
// the original extension (the extractor dispatches on it). Returns the
// stored filename.
func (s *UploadService) SaveUpload(file multipart.File, header *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("%w: %s (allowed: %s)",
			ErrUnsupportedFileType, ext, strings.Join(allowedList(), ", "))
	}

	if header.Size > s.cfg.MaxUploadBytes {
		return "", fmt.Errorf("%w: %d bytes (max: %d)", ErrFileTooLarge, header.Size, s.cfg.MaxUploadBytes)
	}

	if err := os.MkdirAll(s.cfg.UploadDir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	filename := uuid.New().String() + ext
	destPath := filepath.Join(s.cfg.UploadDir, filename)

	dst, err := os.Create(destPath)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	return filename, nil
}

// ResolvePath maps a client-supplied filename back to a path inside the
// upload directory. The name is reduced to its base to block traversal,
// and a case-insensitive match is attempted before giving up.
func (s *UploadService) ResolvePath(filename string) (string, error) {
	filename = filepath.Base(strings.TrimSpace(filename))
	if filename == "" || filename == "." {
		return "", fmt.Errorf("%w: empty filename", ErrFileNotFound)
	}

	path := filepath.Join(s.cfg.UploadDir, filename)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	entries, err := os.ReadDir(s.cfg.UploadDir)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrFileNotFound, filename)
	}
	for _, e := range entries {
		if strings.EqualFold(e.Name(), filename) {
			return filepath.Join(s.cfg.UploadDir, e.Name()), nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrFileNotFound, filename)
}

func allowedList() []string {
	exts := make([]string, 0, len(allowedExtensions))
	for e := range allowedExtensions {
		exts = append(exts, e)
	}
	return exts
}
