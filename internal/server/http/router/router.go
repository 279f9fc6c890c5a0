package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/moriwell/storefront/internal/server/http/handlers"
	"github.com/moriwell/storefront/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StorefrontFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.Metrics())
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	cartHandler := handlers.NewCartHandler(facade)
	checkoutHandler := handlers.NewCheckoutHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	reviewHandler := handlers.NewReviewHandler(facade)

	api := engine.Group("/api")
	order := api.Group("/order")

	// Public product views.
	order.GET("/cart/:productId", reviewHandler.Product)
	order.GET("/review/:productId", reviewHandler.List)

	authed := order.Group("")
	authed.Use(middleware.AuthRequired(facade))
	authed.POST("/cart/:productId", cartHandler.AddToCart)
	authed.GET("/session", cartHandler.Session)
	authed.GET("/wishlist/:productId", cartHandler.AddWishlist)
	authed.GET("/initial", checkoutHandler.Preview)
	authed.POST("/checkout", checkoutHandler.Checkout)
	authed.GET("/list", orderHandler.List)
	authed.GET("/detail/:orderId", orderHandler.Detail)
	authed.GET("/cancel/:orderId", orderHandler.Cancel)
	authed.POST("/review/:productId", reviewHandler.Create)

	return engine
}
