package contact

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	domain "glamour-lush-server/internal/domain/contact"
	apperrors "glamour-lush-server/pkg/errors"
)

// Repository defines the interface for contact message storage.
type Repository interface {
	Create(ctx context.Context, m *domain.Message) (int64, error)
}

// SubmitMessageRequest represents a contact-form submission.
type SubmitMessageRequest struct {
	Name    string `validate:"required,max=100"`
	Email   string `validate:"required,email"`
	Message string `validate:"required,max=5000"`
}

// Usecase defines the interface for contact-form logic.
type Usecase interface {
	Submit(ctx context.Context, in SubmitMessageRequest) (int64, error)
}

// Service stores contact-form submissions.
type Service struct {
	repo     Repository
	log      *zap.Logger
	validate *validator.Validate
}

// New creates a contact service backed by the given store.
func New(r Repository, log *zap.Logger) *Service {
	return &Service{repo: r, log: log, validate: validator.New()}
}

// Submit validates and stores one message, returning its ID.
func (s *Service) Submit(ctx context.Context, in SubmitMessageRequest) (int64, error) {
	if err := s.validate.Struct(in); err != nil {
		s.log.Warn("contact validation failed", zap.Error(err))
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			var messages []string
			for _, e := range validationErrors {
				messages = append(messages, fmt.Sprintf("%s is invalid", e.Field()))
			}
			return 0, apperrors.NewValidationError("", strings.Join(messages, ", "))
		}
		return 0, err
	}

	id, err := s.repo.Create(ctx, &domain.Message{
		Name:    in.Name,
		Email:   in.Email,
		Message: in.Message,
	})
	if err != nil {
		s.log.Error("failed to store contact message", zap.Error(err))
		return 0, err
	}

	return id, nil
}
