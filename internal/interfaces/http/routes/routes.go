// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/arcadiareads/bookstore-backend/internal/config"
	"github.com/arcadiareads/bookstore-backend/internal/domain/cart"
	"github.com/arcadiareads/bookstore-backend/internal/domain/catalog"
	"github.com/arcadiareads/bookstore-backend/internal/domain/order"
	"github.com/arcadiareads/bookstore-backend/internal/domain/review"
	"github.com/arcadiareads/bookstore-backend/internal/domain/user"
	"github.com/arcadiareads/bookstore-backend/internal/infrastructure/database/postgres"
	"github.com/arcadiareads/bookstore-backend/internal/infrastructure/database/redis"
	"github.com/arcadiareads/bookstore-backend/internal/interfaces/http/handlers"
	"github.com/arcadiareads/bookstore-backend/internal/interfaces/http/middleware"
)

// SetupRoutes wires the stores, services and handlers and registers
// every API route on the given group.
func SetupRoutes(rg *gin.RouterGroup, db *postgres.DB, redisClient *redis.Client, cfg *config.Config) {
	// Stores
	userStore := postgres.NewUserStore(db)
	bookStore := postgres.NewBookStore(db)
	reviewStore := postgres.NewReviewStore(db)
	orderStore := postgres.NewOrderStore(db)
	cartStore := redis.NewCartStore(redisClient, cfg.Checkout.CartSessionTTL)

	// Services
	userService := user.NewService(userStore, cfg)
	catalogService := catalog.NewService(bookStore, userStore)
	reviewService := review.NewService(reviewStore, bookStore, userStore)
	cartService := cart.NewService(cartStore, bookStore)
	orderService := order.NewService(orderStore, cartService, userStore, cfg)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService)
	bookHandler := handlers.NewBookHandler(catalogService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService)

	setupAuthRoutes(rg, authHandler, cfg)
	setupBookRoutes(rg, bookHandler, reviewHandler, cfg)
	setupCartRoutes(rg, cartHandler, cfg)
	setupOrderRoutes(rg, orderHandler, cfg)
	setupAdminRoutes(rg, bookHandler, reviewHandler, orderHandler, cfg)
}

func setupAuthRoutes(rg *gin.RouterGroup, h *handlers.AuthHandler, cfg *config.Config) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/refresh", h.RefreshToken)

		protected := auth.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			protected.POST("/logout", h.Logout)
			protected.GET("/profile", h.GetProfile)
		}
	}
}

func setupBookRoutes(rg *gin.RouterGroup, books *handlers.BookHandler, reviews *handlers.ReviewHandler, cfg *config.Config) {
	group := rg.Group("/books")
	{
		group.GET("", books.GetBooks)
		group.GET("/categories", books.GetCategories)
		group.GET("/:id", books.GetBook)
		group.GET("/:id/reviews", reviews.GetBookReviews)
		group.GET("/:id/reviews/summary", reviews.GetBookReviewSummary)

		// Seller submissions and reviews go through moderation before
		// they are listed
		protected := group.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			protected.POST("/sell", books.SubmitBook)
			protected.POST("/:id/reviews", reviews.SubmitReview)
		}
	}
}

func setupCartRoutes(rg *gin.RouterGroup, h *handlers.CartHandler, cfg *config.Config) {
	// Cart routes work for guest sessions and authenticated users
	group := rg.Group("/cart")
	group.Use(middleware.OptionalAuthMiddleware(cfg))
	{
		group.GET("", h.GetCart)
		group.POST("/items", h.AddToCart)
		group.PUT("/items/:id", h.UpdateCartItem)
		group.DELETE("/items/:id", h.RemoveCartItem)
		group.DELETE("", h.ClearCart)
	}
}

func setupOrderRoutes(rg *gin.RouterGroup, h *handlers.OrderHandler, cfg *config.Config) {
	checkout := rg.Group("/checkout")
	checkout.Use(middleware.AuthMiddleware(cfg))
	{
		checkout.POST("", h.Checkout)
	}

	orders := rg.Group("/orders")
	orders.Use(middleware.AuthMiddleware(cfg))
	{
		orders.GET("", h.GetOrders)
		orders.GET("/:id", h.GetOrder)
	}
}

func setupAdminRoutes(rg *gin.RouterGroup, books *handlers.BookHandler, reviews *handlers.ReviewHandler, orders *handlers.OrderHandler, cfg *config.Config) {
	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg))
	admin.Use(middleware.AdminMiddleware())
	{
		adminBooks := admin.Group("/books")
		{
			adminBooks.GET("", books.AdminGetBooks)
			adminBooks.PUT("/:id/approve", books.AdminApproveBook)
			adminBooks.PUT("/:id/reject", books.AdminRejectBook)
			adminBooks.PUT("/:id/inventory", books.AdminUpdateStock)
			adminBooks.PUT("/:id/price", books.AdminUpdatePrice)
		}

		adminReviews := admin.Group("/reviews")
		{
			adminReviews.GET("", reviews.AdminGetReviews)
			adminReviews.PUT("/:id/approve", reviews.AdminApproveReview)
			adminReviews.PUT("/:id/reject", reviews.AdminRejectReview)
		}

		adminOrders := admin.Group("/orders")
		{
			adminOrders.GET("", orders.AdminGetOrders)
			adminOrders.PUT("/:id/status", orders.AdminUpdateOrderStatus)
		}
	}
}
