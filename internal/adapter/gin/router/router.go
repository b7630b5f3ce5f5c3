package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"glamour-lush-server/internal/adapter/gin/handler"
	"glamour-lush-server/internal/adapter/gin/middleware"
	"glamour-lush-server/internal/auth"
	"glamour-lush-server/internal/domain/user"
)

// Handlers groups the HTTP handlers the router wires up.
type Handlers struct {
	Auth    *handler.AuthHandler
	User    *handler.UserHandler
	Product *handler.ProductHandler
	Contact *handler.ContactHandler
}

// SetupRouter configures and returns a Gin router with all routes and
// middleware. Protected routes always authenticate before any role check
// runs, so Authorize only ever sees a verified claim.
func SetupRouter(
	h Handlers,
	verifier middleware.TokenVerifier,
	resolver auth.IdentityResolver,
	allowedOrigins []string,
	log *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "HEAD", "PUT", "PATCH", "POST", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	authenticated := middleware.Authenticate(verifier, log)
	sellerOnly := middleware.RequireRole(resolver, user.RoleSeller, log)
	adminOnly := middleware.RequireRole(resolver, user.RoleAdmin, log)

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Glamour Lush is Running")
	})

	// Public routes
	router.POST("/authentication", h.Auth.Authenticate)
	router.POST("/users", h.User.Register)
	router.GET("/user/:email", h.User.GetByEmail)
	router.POST("/contact", h.Contact.Submit)
	router.GET("/products", h.Product.GetByID)
	router.GET("/all-products", h.Product.Search)

	// Any authenticated identity
	router.PATCH("/wishlist/add", authenticated, h.User.AddWishlistItem)
	router.PATCH("/wishlist/remove", authenticated, h.User.RemoveWishlistItem)
	router.GET("/wishlist/:userId", authenticated, h.User.Wishlist)
	router.PATCH("/cart/add", authenticated, h.User.AddCartItem)
	router.PATCH("/cart/remove", authenticated, h.User.RemoveCartItem)
	router.GET("/cart/:userId", authenticated, h.User.Cart)

	// Seller routes
	router.POST("/add-products", authenticated, sellerOnly, h.Product.Create)
	router.GET("/my-products", authenticated, sellerOnly, h.Product.ListMine)
	router.PATCH("/my-products/:id", authenticated, sellerOnly, h.Product.UpdateMine)
	router.DELETE("/my-products/:id", authenticated, sellerOnly, h.Product.DeleteMine)

	// Admin routes
	router.GET("/all-users", authenticated, adminOnly, h.User.List)
	router.DELETE("/all-users/:id", authenticated, adminOnly, h.User.Delete)
	router.PATCH("/all-users/:id", authenticated, adminOnly, h.User.Update)

	return router
}
