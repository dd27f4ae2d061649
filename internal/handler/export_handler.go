package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/papergen/papergen-backend/internal/model"
	"github.com/papergen/papergen-backend/internal/render"
	"github.com/papergen/papergen-backend/internal/response"
	"github.com/papergen/papergen-backend/internal/validator"
)

// ExportHandler renders a finished question set into a downloadable document.
type ExportHandler struct {
	renderer *render.Renderer
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(renderer *render.Renderer) *ExportHandler {
	return &ExportHandler{renderer: renderer}
}

// Export godoc
// POST /api/v1/papers/export
// Renders the supplied questions to the requested format and streams the
// artifact back as an attachment.
func (h *ExportHandler) Export(c *gin.Context) {
	var req model.ExportRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	format := render.Format(req.Format)
	if req.Format == "" {
		format = render.FormatPDF
	}
	switch format {
	case render.FormatPDF, render.FormatHTML, render.FormatMarkdown:
	default:
		response.Fail(c, http.StatusBadRequest, response.ErrUnsupportedFormat)
		return
	}

	title := req.Title
	if title == "" {
		title = "Exam Paper"
	}

	path, err := h.renderer.Render(req.Questions, title, format, req.IncludeAnswers)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	downloadName := strings.ReplaceAll(title, " ", "_") + "_" + string(format) + "." + format.Ext()
	c.Header("Content-Type", format.MIME())
	c.FileAttachment(path, downloadName)
}
