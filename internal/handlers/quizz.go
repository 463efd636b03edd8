package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/quizzgen/quizzgen-backend/internal/logger"
	"github.com/quizzgen/quizzgen-backend/internal/services"
)

type QuizzHandler struct {
	log      *logger.Logger
	quizzSvc services.QuizzService
}

func NewQuizzHandler(log *logger.Logger, quizzSvc services.QuizzService) *QuizzHandler {
	return &QuizzHandler{
		log:      log.With("handler", "QuizzHandler"),
		quizzSvc: quizzSvc,
	}
}

// GET /api/quizz/:id
// Returns the quiz with its questions and answers. A quiz without
// questions reads as not found, matching what the taking UI expects.
func (h *QuizzHandler) GetQuizz(c *gin.Context) {
	quizzID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid quizz ID."})
		return
	}

	quizz, err := h.quizzSvc.GetQuizz(c.Request.Context(), uint(quizzID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Quizz not found."})
			return
		}
		RespondError(c, h.log, err)
		return
	}
	if len(quizz.Questions) == 0 {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Quizz not found."})
		return
	}
	c.JSON(http.StatusOK, quizz)
}
