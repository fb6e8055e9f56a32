package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/denisAlshanov/recipeGrab/internal/utils"
)

func errorResponse(c *gin.Context, err *utils.AppError) {
	c.JSON(err.StatusCode, gin.H{
		"error":      err,
		"request_id": c.GetString("request_id"),
		"timestamp":  time.Now().Format(time.RFC3339),
	})
}

func bindingError(err error) *utils.AppError {
	return utils.NewValidationError("Invalid request body", map[string]interface{}{
		"error": err.Error(),
	})
}
