// Package router wires handlers, middleware, and the store into one gin
// engine.
package router

import (
	"time"

	"github.com/mneis/alternative-communicator/internal/config"
	"github.com/mneis/alternative-communicator/internal/handler"
	"github.com/mneis/alternative-communicator/internal/middleware"
	"github.com/mneis/alternative-communicator/internal/store"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
)

// New returns a configured gin engine.
// Dependency graph: Handler ← Catalog store (no service layer — the store
// owns the whole creation contract).
func New(cfg *config.Config, catalog store.Catalog) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute))

	categoriesH := handler.NewCategoriesHandler(catalog)
	cardsH := handler.NewCardsHandler(catalog)

	r.GET("/health", handler.Health(catalog))

	api := r.Group("/api")
	{
		api.GET("/categories", categoriesH.List)
		api.POST("/categories", categoriesH.Create)
		api.GET("/categories/:id", categoriesH.Get)
		api.GET("/categories/:id/cards", cardsH.ListByCategory)
		api.GET("/cards", cardsH.List)
		api.POST("/cards", cardsH.Create)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
