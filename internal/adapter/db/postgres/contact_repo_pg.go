package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"glamour-lush-server/internal/domain/contact"
)

// ContactRepoPG stores contact-form submissions.
type ContactRepoPG struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewContactRepoPG creates a new instance of ContactRepoPG.
func NewContactRepoPG(db *gorm.DB, log *zap.Logger) *ContactRepoPG {
	return &ContactRepoPG{db: db, log: log}
}

// ContactMessageSchema represents the database schema for the
// contact_messages table.
type ContactMessageSchema struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"not null"`
	Email     string `gorm:"not null"`
	Message   string `gorm:"not null"`
	CreatedAt time.Time
}

// TableName specifies the table name for the ContactMessageSchema model.
func (ContactMessageSchema) TableName() string {
	return "contact_messages"
}

// Create inserts a new contact message.
func (r *ContactRepoPG) Create(ctx context.Context, m *contact.Message) (int64, error) {
	if m == nil {
		return 0, errors.New("message cannot be nil")
	}

	model := ContactMessageSchema{
		Name:    m.Name,
		Email:   m.Email,
		Message: m.Message,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		r.log.Error("failed to store contact message", zap.Error(err), zap.String("email", m.Email))
		return 0, fmt.Errorf("failed to store contact message: %w", err)
	}

	r.log.Info("contact message stored", zap.Int64("id", model.ID))
	return model.ID, nil
}
