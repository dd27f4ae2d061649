package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/papergen/papergen-backend/internal/extract"
	"github.com/papergen/papergen-backend/internal/response"
	"github.com/papergen/papergen-backend/internal/service"
)

// previewLength caps the content preview returned after upload.
const previewLength = 500

// UploadHandler ingests a source document and returns its topic breakdown.
type UploadHandler struct {
	uploadService  *service.UploadService
	extractor      *extract.Service
	analyzeService *service.AnalyzeService
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(uploadService *service.UploadService, extractor *extract.Service, analyzeService *service.AnalyzeService) *UploadHandler {
	return &UploadHandler{
		uploadService:  uploadService,
		extractor:      extractor,
		analyzeService: analyzeService,
	}
}

// Upload godoc
// POST /api/v1/papers/upload
// Accepts a multipart source document, extracts its text and returns the
// analyzed topics plus a short content preview.
func (h *UploadHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrFileRequired)
		return
	}
	defer file.Close()

	filename, err := h.uploadService.SaveUpload(file, header)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnsupportedFileType):
			response.Fail(c, http.StatusBadRequest, response.ErrUnsupportedFile)
		case errors.Is(err, service.ErrFileTooLarge):
			response.Fail(c, http.StatusBadRequest, response.ErrFileTooLarge)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	subject := c.PostForm("subject")
	if subject == "" {
		subject = "General Subject"
	}

	path, err := h.uploadService.ResolvePath(filename)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	content, err := h.extractor.Extract(path)
	if err != nil {
		response.Fail(c, http.StatusUnprocessableEntity, response.ErrExtractionFailed)
		return
	}

	topics, err := h.analyzeService.Analyze(c.Request.Context(), content, subject)
	if err != nil {
		response.Fail(c, http.StatusBadGateway, response.ErrModelUnavailable)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"filename":        filename,
		"topics":          topics,
		"content_preview": preview(content),
	})
}

func preview(content string) string {
	runes := []rune(content)
	if len(runes) <= previewLength {
		return content
	}
	return string(runes[:previewLength]) + "..."
}
