package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quizzgen/quizzgen-backend/internal/apperr"
	"github.com/quizzgen/quizzgen-backend/internal/logger"
	"github.com/quizzgen/quizzgen-backend/internal/services"
)

// GenerateHandler serves the two ingestion endpoints. Both run the same
// pipeline; only the variant adapter and the response key differ.
type GenerateHandler struct {
	log             *logger.Logger
	generationSvc   services.GenerationService
	quizzVariant    services.VariantAdapter
	categoryVariant services.VariantAdapter
}

func NewGenerateHandler(
	log *logger.Logger,
	generationSvc services.GenerationService,
	quizzVariant services.VariantAdapter,
	categoryVariant services.VariantAdapter,
) *GenerateHandler {
	return &GenerateHandler{
		log:             log.With("handler", "GenerateHandler"),
		generationSvc:   generationSvc,
		quizzVariant:    quizzVariant,
		categoryVariant: categoryVariant,
	}
}

// POST /api/quizz/generate
// Multipart field "pdf" -> multiple-choice quiz persisted to the quizz DB.
func (h *GenerateHandler) GenerateQuizz(c *gin.Context) {
	document, err := readPDFField(c)
	if err != nil {
		RespondError(c, h.log, err)
		return
	}

	quizzID, err := h.generationSvc.GenerateFromPDF(c.Request.Context(), document, h.quizzVariant)
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"quizzId": quizzID})
}

// POST /api/question/generate
// Multipart field "pdf" -> open-answer question set persisted to the dev DB.
func (h *GenerateHandler) GenerateCategory(c *gin.Context) {
	document, err := readPDFField(c)
	if err != nil {
		RespondError(c, h.log, err)
		return
	}

	categoryID, err := h.generationSvc.GenerateFromPDF(c.Request.Context(), document, h.categoryVariant)
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categoryId": categoryID})
}

func readPDFField(c *gin.Context) ([]byte, error) {
	fileHeader, err := c.FormFile("pdf")
	if err != nil {
		return nil, apperr.Input("Invalid PDF document provided.")
	}
	f, err := fileHeader.Open()
	if err != nil {
		return nil, apperr.Input("Invalid PDF document provided.")
	}
	defer f.Close()

	document, err := io.ReadAll(f)
	if err != nil || len(document) == 0 {
		return nil, apperr.Input("Invalid PDF document provided.")
	}
	return document, nil
}
