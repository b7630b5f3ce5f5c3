package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TokenIssuer signs a session token for an identity claim.
type TokenIssuer interface {
	Issue(email string) (string, error)
}

// AuthHandler handles HTTP requests for session token issuance. There is
// deliberately no credential check: the identity provider is a stub and
// the token is signed for whatever email the client presents.
type AuthHandler struct {
	tokens TokenIssuer
	log    *zap.Logger
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(tokens TokenIssuer, log *zap.Logger) *AuthHandler {
	return &AuthHandler{tokens: tokens, log: log}
}

// AuthRequest represents the HTTP request body for token issuance.
type AuthRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// Authenticate handles POST /authentication
func (h *AuthHandler) Authenticate(c *gin.Context) {
	var req AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid authentication request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "a valid email is required"})
		return
	}

	token, err := h.tokens.Issue(req.Email)
	if err != nil {
		h.log.Error("token issuance failed", zap.String("email", req.Email), zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
