package rest

import (
	"net/http"

	"dentalstore-be/internal/category"
	"dentalstore-be/internal/metrics"
	"dentalstore-be/internal/middleware"
	"dentalstore-be/internal/order"
	"dentalstore-be/internal/product"
	"dentalstore-be/internal/report"
	"dentalstore-be/internal/review"
	"dentalstore-be/internal/user"
	"dentalstore-be/internal/variant"

	"github.com/gin-gonic/gin"
)

type Services struct {
	User     user.Service
	Product  product.Service
	Category category.Service
	Variant  variant.Service
	Review   review.Service
	Order    order.Service
	Report   report.Service
}

func NewRouter(appEnv string, svcs Services) *gin.Engine {
	if appEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logging())
	router.Use(middleware.RateLimit())

	authHandler := NewAuthHandler(svcs.User)
	productHandler := NewProductHandler(svcs.Product, svcs.Report)
	orderHandler := NewOrderHandler(svcs.Order)
	adminHandler := NewAdminHandler(svcs.Category, svcs.User, svcs.Report)
	variantHandler := NewVariantHandler(svcs.Variant)
	reviewHandler := NewReviewHandler(svcs.Review)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":          "OK",
			"requests_served": metrics.RequestsServed.Load(),
			"orders_placed":   metrics.OrdersPlaced.Load(),
		})
	})

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/profile", middleware.RequireAuth(), authHandler.Profile)
		}

		// storefront catalog
		api.GET("/products", productHandler.List)
		api.GET("/products/stats", middleware.RequireAuth(), middleware.RequireAdmin(), productHandler.Stats)
		api.GET("/products/:id", productHandler.Get)
		api.POST("/products", middleware.RequireAuth(), middleware.RequireAdmin(), productHandler.Create)
		api.PUT("/products/:id", middleware.RequireAuth(), middleware.RequireAdmin(), productHandler.Update)
		api.DELETE("/products/:id", middleware.RequireAuth(), middleware.RequireAdmin(), productHandler.Delete)

		// variants and reviews hang off a product
		api.GET("/products/:id/variants", variantHandler.ListByProduct)
		api.POST("/products/:id/variants", middleware.RequireAuth(), middleware.RequireAdmin(), variantHandler.Create)
		api.PUT("/product-variants/:id", middleware.RequireAuth(), middleware.RequireAdmin(), variantHandler.Update)
		api.DELETE("/product-variants/:id", middleware.RequireAuth(), middleware.RequireAdmin(), variantHandler.Delete)

		api.GET("/products/:id/reviews", reviewHandler.ListByProduct)
		api.POST("/products/:id/reviews", middleware.RequireAuth(), reviewHandler.Create)
		api.GET("/products/:id/review-stats", reviewHandler.Stats)
		api.PUT("/product-reviews/:id/status", middleware.RequireAuth(), middleware.RequireAdmin(), reviewHandler.UpdateStatus)
		api.DELETE("/product-reviews/:id", middleware.RequireAuth(), middleware.RequireAdmin(), reviewHandler.Delete)

		orders := api.Group("/orders", middleware.RequireAuth())
		{
			orders.POST("", orderHandler.Create)
			orders.GET("", orderHandler.List)
			orders.GET("/:id", orderHandler.Get)
			orders.PUT("/:id/status", middleware.RequireAdmin(), orderHandler.UpdateStatus)
		}

		admin := api.Group("/admin", middleware.RequireAuth(), middleware.RequireAdmin())
		{
			admin.GET("/sales-report", adminHandler.SalesReport)

			admin.GET("/products", productHandler.List)
			admin.POST("/products", productHandler.Create)
			admin.PATCH("/products/:id", productHandler.Update)
			admin.DELETE("/products/:id", productHandler.Delete)

			admin.GET("/categories", adminHandler.ListCategories)
			admin.POST("/categories", adminHandler.CreateCategory)
			admin.PATCH("/categories/:id", adminHandler.UpdateCategory)
			admin.DELETE("/categories/:id", adminHandler.DeleteCategory)

			admin.GET("/users", adminHandler.ListUsers)
			admin.PATCH("/users/:id", adminHandler.UpdateUserRole)
			admin.DELETE("/users/:id", adminHandler.DeleteUser)
		}
	}

	return router
}
