package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/papergen/papergen-backend/internal/extract"
	"github.com/papergen/papergen-backend/internal/llm"
	"github.com/papergen/papergen-backend/internal/model"
	"github.com/papergen/papergen-backend/internal/response"
	"github.com/papergen/papergen-backend/internal/service"
	"github.com/papergen/papergen-backend/internal/validator"
)

// QuestionHandler builds question sets from an uploaded document and an
// optional caller-supplied question bank.
type QuestionHandler struct {
	uploadService   *service.UploadService
	extractor       *extract.Service
	generateService *service.GenerateService
	bankService     *service.BankService
}

// NewQuestionHandler creates a new QuestionHandler.
func NewQuestionHandler(uploadService *service.UploadService, extractor *extract.Service, generateService *service.GenerateService, bankService *service.BankService) *QuestionHandler {
	return &QuestionHandler{
		uploadService:   uploadService,
		extractor:       extractor,
		generateService: generateService,
		bankService:     bankService,
	}
}

// GenerateQuestions godoc
// POST /api/v1/papers/questions
// Generates questions from a previously uploaded document, blends in
// bank questions when provided, and returns the combined ordered set.
//
// When a bank is supplied, up to half the requested count is drawn from
// it and the remainder is generated fresh.
func (h *QuestionHandler) GenerateQuestions(c *gin.Context) {
	var req model.GenerateQuestionsRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	path, err := h.uploadService.ResolvePath(req.Filename)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrFileNotFound)
		return
	}

	content, err := h.extractor.Extract(path)
	if err != nil {
		response.Fail(c, http.StatusUnprocessableEntity, response.ErrExtractionFailed)
		return
	}

	params := req.Params()

	fromBank := min(params.NumQuestions/2, len(req.QuestionBank))
	toGenerate := params.NumQuestions - fromBank

	var generated []model.Question
	if toGenerate > 0 {
		genParams := params
		genParams.NumQuestions = toGenerate
		generated, err = h.generateService.Generate(c.Request.Context(), content, genParams)
		if err != nil {
			var rateErr *llm.ErrRateLimit
			status := http.StatusBadGateway
			if errors.As(err, &rateErr) {
				status = http.StatusTooManyRequests
			}
			response.Fail(c, status, response.ErrModelUnavailable)
			return
		}
	}

	var selected []model.Question
	if fromBank > 0 {
		bankParams := params
		bankParams.NumQuestions = fromBank
		selected = h.bankService.Select(req.QuestionBank, bankParams)
	}

	questions := h.bankService.Combine(generated, selected, params.NumQuestions)

	response.Success(c, http.StatusOK, gin.H{"questions": questions})
}
