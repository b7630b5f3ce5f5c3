package handler

import (
	"github.com/gin-gonic/gin"

	apperrors "glamour-lush-server/pkg/errors"
)

// ErrorResponse represents an error response body. Message keeps the
// legacy client-contract strings ("No Token", "Forbidden Access", ...).
type ErrorResponse struct {
	Message string `json:"message"`
}

// respondError maps a usecase error onto its transport status with the
// message-body contract the storefront client inspects.
func respondError(c *gin.Context, err error) {
	status := apperrors.StatusOf(err)
	message := err.Error()
	if status == 500 {
		// Do not leak internal details
		message = "internal server error"
	}
	c.JSON(status, ErrorResponse{Message: message})
}
