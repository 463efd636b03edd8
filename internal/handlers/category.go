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

type CategoryHandler struct {
	log         *logger.Logger
	categorySvc services.CategoryService
}

func NewCategoryHandler(log *logger.Logger, categorySvc services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		log:         log.With("handler", "CategoryHandler"),
		categorySvc: categorySvc,
	}
}

// GET /api/question/categories/:id
// Returns the category with its open-answer questions.
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	categoryID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid category ID."})
		return
	}

	category, err := h.categorySvc.GetCategory(c.Request.Context(), uint(categoryID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Category not found."})
			return
		}
		RespondError(c, h.log, err)
		return
	}
	if len(category.Questions) == 0 {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Category not found."})
		return
	}
	c.JSON(http.StatusOK, category)
}
