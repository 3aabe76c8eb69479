package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/sweetcrumb/bakehouse/internal/config"
	"github.com/sweetcrumb/bakehouse/internal/server/http/handlers"
	"github.com/sweetcrumb/bakehouse/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StorefrontFacade, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	engine.Static("/uploads", cfg.UploadDir)

	productHandler := handlers.NewProductHandler(facade, logger)
	orderHandler := handlers.NewOrderHandler(facade, logger)
	paymentHandler := handlers.NewPaymentHandler(facade, logger)
	settingsHandler := handlers.NewSettingsHandler(facade, logger)
	contentHandler := handlers.NewContentHandler(facade, logger)
	userHandler := handlers.NewUserHandler(facade, logger)
	uploadHandler := handlers.NewUploadHandler(cfg.UploadDir, cfg.MaxUploadBytes, logger)

	authRequired := middleware.AuthRequired(facade)
	adminOnly := []gin.HandlerFunc{authRequired, middleware.AdminRequired()}

	api := engine.Group("/api")

	api.GET("/products", productHandler.List)
	api.GET("/products/featured", productHandler.Featured)
	api.GET("/products/categories", productHandler.Categories)
	api.GET("/products/category/:id", productHandler.ByCategory)
	api.GET("/products/:id", productHandler.Get)

	api.POST("/orders", middleware.OptionalAuth(facade), orderHandler.Create)
	api.GET("/orders/my-orders", authRequired, orderHandler.MyOrders)
	api.GET("/orders/:id", authRequired, orderHandler.Get)

	api.POST("/payments/mpesa/initiate", paymentHandler.Initiate)
	api.POST("/payments/mpesa/callback", paymentHandler.Callback)
	api.GET("/payments/verify/:id", authRequired, paymentHandler.Verify)

	api.GET("/settings", settingsHandler.Public)

	api.GET("/faqs", contentHandler.FAQs)
	api.GET("/faqs/categories", contentHandler.FAQCategories)
	api.GET("/testimonials", contentHandler.Testimonials)
	api.POST("/testimonials", contentHandler.SubmitTestimonial)

	users := api.Group("/users", authRequired)
	users.GET("/profile", userHandler.Profile)
	users.PUT("/profile", userHandler.UpdateProfile)
	users.PUT("/password", userHandler.ChangePassword)
	users.GET("/wishlist", userHandler.Wishlist)
	users.POST("/wishlist", userHandler.AddToWishlist)
	users.DELETE("/wishlist/:productId", userHandler.RemoveFromWishlist)

	// Admin handlers answer on both /api/... and /api/admin/... so older
	// dashboard builds keep working.
	admin := api.Group("/admin", adminOnly...)
	for _, g := range []*gin.RouterGroup{api.Group("", adminOnly...), admin} {
		g.POST("/products", productHandler.Create)
		g.POST("/products/upload", uploadHandler.ProductImage)
		g.POST("/products/categories", productHandler.CreateCategory)
		g.PUT("/products/categories/:id", productHandler.UpdateCategory)
		g.DELETE("/products/categories/:id", productHandler.DeleteCategory)
		g.PUT("/products/:id", productHandler.Update)
		g.DELETE("/products/:id", productHandler.Delete)

		g.PUT("/orders/:id/status", orderHandler.UpdateStatus)
		g.PUT("/orders/:id/notes", orderHandler.UpdateNotes)
		g.PUT("/orders/:id/payment", orderHandler.UpdatePayment)
		g.DELETE("/orders/:id", orderHandler.Delete)

		g.PUT("/settings", settingsHandler.Update)

		g.POST("/faqs", contentHandler.CreateFAQ)
		g.PUT("/faqs/reorder", contentHandler.ReorderFAQs)
		g.PUT("/faqs/:id", contentHandler.UpdateFAQ)
		g.DELETE("/faqs/:id", contentHandler.DeleteFAQ)

		g.POST("/testimonials/upload", uploadHandler.TestimonialImage)
		g.PUT("/testimonials/:id/approve", contentHandler.ApproveTestimonial)
		g.PUT("/testimonials/:id", contentHandler.UpdateTestimonial)
		g.DELETE("/testimonials/:id", contentHandler.DeleteTestimonial)

		g.GET("/users", userHandler.List)
		g.GET("/users/:id", userHandler.Get)
		g.PUT("/users/:id", userHandler.Update)
		g.DELETE("/users/:id", userHandler.Delete)
		g.PUT("/users/:id/notes", userHandler.UpdateNotes)
		g.PUT("/users/:id/activate", userHandler.Activate)
		g.PUT("/users/:id/deactivate", userHandler.Deactivate)
	}

	api.GET("/orders", append(adminOnly, orderHandler.List)...)
	admin.GET("/orders", orderHandler.List)

	// The full settings record and the moderation lists live only under
	// /admin; their public paths already answer differently.
	admin.GET("/settings", settingsHandler.Get)
	admin.GET("/faqs", contentHandler.ListFAQs)
	admin.GET("/testimonials", contentHandler.ListTestimonials)

	return engine
}
