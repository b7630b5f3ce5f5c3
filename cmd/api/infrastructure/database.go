package infrastructure

import (
	"fmt"

	"go.uber.org/zap"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	adapter "glamour-lush-server/internal/adapter/db/postgres"
	"glamour-lush-server/internal/config"
	"glamour-lush-server/pkg/logger"
)

// NewDatabase creates the database connection and migrates the schema.
func NewDatabase(cfg *config.Config, l *zap.Logger) (*gorm.DB, error) {
	gormLogger := logger.NewGormLogger(l, cfg.Logger.Level)

	db, err := gorm.Open(pgdriver.Open(cfg.DB.DSN()), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&adapter.UserSchema{},
		&adapter.ProductSchema{},
		&adapter.WishlistItemSchema{},
		&adapter.CartItemSchema{},
		&adapter.ContactMessageSchema{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	l.Info("database connected successfully", zap.String("name", cfg.DB.Name))
	return db, nil
}

// CloseDatabase closes the database connection
func CloseDatabase(db *gorm.DB) error {
	if db == nil {
		return nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	return nil
}
