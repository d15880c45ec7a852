package main

import (
	"github.com/gin-gonic/gin"
	"shopstack.backend/internal/interfaces/http/handlers"
	"shopstack.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	storeHandler    *handlers.StoreHandler
	apiKeyHandler   *handlers.ApiKeyHandler
	productHandler  *handlers.ProductHandler
	categoryHandler *handlers.CategoryHandler
	reviewHandler   *handlers.ReviewHandler
	customerHandler *handlers.CustomerHandler
	apiKeyAuth      gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	v1.Use(d.apiKeyAuth)
	{
		// Store routes; registration is the public bootstrap path, the
		// identity middleware lets it through without a credential
		stores := v1.Group("/stores")
		{
			stores.POST("/register", middleware.IdempotencyMiddleware(), d.storeHandler.Register)
			stores.GET("/me", d.storeHandler.Me)
		}

		// API key administration (identity required)
		apiKeys := v1.Group("/api-keys")
		{
			apiKeys.POST("", middleware.IdempotencyMiddleware(), d.apiKeyHandler.CreateApiKey)
			apiKeys.GET("", d.apiKeyHandler.ListApiKeys)
			apiKeys.DELETE("/:id", d.apiKeyHandler.DeactivateApiKey)
		}

		// Catalog routes (identity required, tenant-scoped)
		products := v1.Group("/products")
		{
			products.POST("", d.productHandler.CreateProduct)
			products.GET("", d.productHandler.ListProducts)
			products.GET("/:id", d.productHandler.GetProduct)
			products.PUT("/:id", d.productHandler.UpdateProduct)
			products.DELETE("/:id", d.productHandler.DeleteProduct)

			products.POST("/:id/reviews", d.reviewHandler.CreateReview)
			products.GET("/:id/reviews", d.reviewHandler.ListReviews)
		}

		categories := v1.Group("/categories")
		{
			categories.POST("", d.categoryHandler.CreateCategory)
			categories.GET("", d.categoryHandler.ListCategories)
			categories.DELETE("/:id", d.categoryHandler.DeleteCategory)
		}

		reviews := v1.Group("/reviews")
		{
			reviews.DELETE("/:id", d.reviewHandler.DeleteReview)
		}

		customers := v1.Group("/customers")
		{
			customers.GET("", d.customerHandler.ListCustomers)
			customers.GET("/:id", d.customerHandler.GetCustomer)
		}

		newsletter := v1.Group("/newsletter")
		{
			newsletter.POST("/subscribe", d.customerHandler.SubscribeNewsletter)
		}
	}
}
