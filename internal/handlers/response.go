package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/quizzgen/quizzgen-backend/internal/apperr"
	"github.com/quizzgen/quizzgen-backend/internal/logger"
)

// ErrorResponse is the only error body shape the API produces. Stack
// traces and wrapped causes stay in the server logs.
type ErrorResponse struct {
	Error string `json:"error"`
}

func RespondError(c *gin.Context, log *logger.Logger, err error) {
	status := apperr.Status(err)
	if log != nil {
		log.Error("Request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", status,
			"error", err,
		)
	}
	c.JSON(status, ErrorResponse{Error: apperr.PublicMessage(err)})
}
