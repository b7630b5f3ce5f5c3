package di

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"glamour-lush-server/cmd/api/infrastructure"
	dbadapter "glamour-lush-server/internal/adapter/db/postgres"
	ginhandler "glamour-lush-server/internal/adapter/gin/handler"
	ginrouter "glamour-lush-server/internal/adapter/gin/router"
	"glamour-lush-server/internal/auth"
	"glamour-lush-server/internal/config"
	contactuc "glamour-lush-server/internal/usecase/contact"
	productuc "glamour-lush-server/internal/usecase/product"
	useruc "glamour-lush-server/internal/usecase/user"
)

// Container holds all application dependencies
type Container struct {
	Config    *config.Config
	Logger    *zap.Logger
	DB        *gorm.DB
	Tokens    *auth.TokenService
	UserUC    *useruc.Service
	ProductUC *productuc.Service
	ContactUC *contactuc.Service
	Handlers  ginrouter.Handlers
}

// NewContainer creates and initializes all application dependencies
func NewContainer(cfg *config.Config, l *zap.Logger) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	db, err := infrastructure.NewDatabase(cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	tokens := auth.NewTokenService(cfg.Token.Secret, cfg.Token.TTL())

	userRepo := dbadapter.NewUserRepoPG(db, l)
	productRepo := dbadapter.NewProductRepoPG(db, l)
	contactRepo := dbadapter.NewContactRepoPG(db, l)

	userUC := useruc.New(userRepo, productRepo, l)
	productUC := productuc.New(productRepo, productuc.Config{
		FacetsFromFullSet: cfg.Catalog.FacetsFromFullSet,
	}, l)
	contactUC := contactuc.New(contactRepo, l)

	handlers := ginrouter.Handlers{
		Auth:    ginhandler.NewAuthHandler(tokens, l),
		User:    ginhandler.NewUserHandler(userUC, l),
		Product: ginhandler.NewProductHandler(productUC, l),
		Contact: ginhandler.NewContactHandler(contactUC, l),
	}

	return &Container{
		Config:    cfg,
		Logger:    l,
		DB:        db,
		Tokens:    tokens,
		UserUC:    userUC,
		ProductUC: productUC,
		ContactUC: contactUC,
		Handlers:  handlers,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.DB != nil {
		if err := infrastructure.CloseDatabase(c.DB); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}
	return nil
}
