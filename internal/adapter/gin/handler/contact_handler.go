package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"glamour-lush-server/internal/usecase/contact"
)

// ContactHandler handles contact-form submissions.
type ContactHandler struct {
	uc  contact.Usecase
	log *zap.Logger
}

// NewContactHandler creates a new ContactHandler instance.
func NewContactHandler(uc contact.Usecase, log *zap.Logger) *ContactHandler {
	return &ContactHandler{uc: uc, log: log}
}

// ContactRequest represents the HTTP request body for a contact message.
type ContactRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required,max=5000"`
}

// Submit handles POST /contact
func (h *ContactHandler) Submit(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid contact request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	id, err := h.uc.Submit(c.Request.Context(), contact.SubmitMessageRequest{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"insertedId": id})
}
