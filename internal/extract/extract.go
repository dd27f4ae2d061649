// Package extract converts source documents into plain text for the
// generation pipeline. Dispatch is purely by file extension.
package extract

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// ErrExtraction wraps any failure to pull text out of a supported file.
// Unlike the unsupported-extension case, this is a hard error the caller
// must surface instead of feeding to the model.
var ErrExtraction = errors.New("extraction failed")

// Service extracts text from uploaded documents.
type Service struct {
	ocrBinary     string
	pdfToImageBin string
	log           zerolog.Logger
}

// NewService creates an extraction service. ocrBinary and pdfToImageBin
// are the tesseract and pdftoppm executables used for scanned PDFs.
func NewService(ocrBinary, pdfToImageBin string, log zerolog.Logger) *Service {
	return &Service{
		ocrBinary:     ocrBinary,
		pdfToImageBin: pdfToImageBin,
		log:           log,
	}
}

// Extract returns the text content of the file at path.
//
// Unsupported extensions yield a descriptive placeholder string with a
// nil error: the caller treats it as content that will simply fail to
// produce useful questions, not as a failure. Genuine extraction
// problems on supported types return ErrExtraction.
func (s *Service) Extract(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".pdf":
		return s.extractPDF(path)
	case ".json":
		return s.extractJSON(path)
	case ".txt", ".md":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("%w: read %s: %v", ErrExtraction, filepath.Base(path), err)
		}
		return string(data), nil
	case ".doc", ".docx":
		return "DOC file processing is not supported; convert the document to PDF or plain text", nil
	default:
		return fmt.Sprintf("Unsupported file type: %s", ext), nil
	}
}
