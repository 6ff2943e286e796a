// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"shelf/config"
	"shelf/internal/delivery/api/middleware"
	"shelf/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	BookHandler     *handler.BookHandler
	CategoryHandler *handler.CategoryHandler
	TagHandler      *handler.TagHandler
	QuoteHandler    *handler.QuoteHandler
	StatsHandler    *handler.StatsHandler
	SearchHandler   *handler.SearchHandler
	HealthHandler   *handler.HealthHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	bookHandler     *handler.BookHandler
	categoryHandler *handler.CategoryHandler
	tagHandler      *handler.TagHandler
	quoteHandler    *handler.QuoteHandler
	statsHandler    *handler.StatsHandler
	searchHandler   *handler.SearchHandler
	healthHandler   *handler.HealthHandler
	authMiddleware  *middleware.AuthMiddleware
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		bookHandler:     params.BookHandler,
		categoryHandler: params.CategoryHandler,
		tagHandler:      params.TagHandler,
		quoteHandler:    params.QuoteHandler,
		statsHandler:    params.StatsHandler,
		searchHandler:   params.SearchHandler,
		healthHandler:   params.HealthHandler,
		authMiddleware:  params.AuthMiddleware,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.Check)

	if r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(promhttp.Handler()))
	}

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	accountGroup := e.Group("/auth", r.authMiddleware.Authenticate)
	{
		accountGroup.GET("/me", r.authHandler.Me)
		accountGroup.PUT("/profile", r.authHandler.UpdateProfile)
		accountGroup.PUT("/password", r.authHandler.ChangePassword)
		accountGroup.DELETE("/account", r.authHandler.DeleteAccount)
	}

	booksGroup := e.Group("/books", r.authMiddleware.Authenticate)
	{
		booksGroup.GET("", r.bookHandler.List)
		booksGroup.POST("", r.bookHandler.Create)
		booksGroup.GET("/:id", r.bookHandler.Get)
		booksGroup.PUT("/:id", r.bookHandler.Update)
		booksGroup.DELETE("/:id", r.bookHandler.Delete)

		booksGroup.POST("/:bookId/tags", r.bookHandler.AddTag)
		booksGroup.DELETE("/:bookId/tags/:tagId", r.bookHandler.RemoveTag)
	}

	categoriesGroup := e.Group("/categories", r.authMiddleware.Authenticate)
	{
		categoriesGroup.GET("", r.categoryHandler.List)
		categoriesGroup.POST("", r.categoryHandler.Create)
		categoriesGroup.PUT("/:id", r.categoryHandler.Update)
		categoriesGroup.DELETE("/:id", r.categoryHandler.Delete)
	}

	tagsGroup := e.Group("/tags", r.authMiddleware.Authenticate)
	{
		tagsGroup.GET("", r.tagHandler.List)
		tagsGroup.POST("", r.tagHandler.Create)
		tagsGroup.PUT("/:id", r.tagHandler.Rename)
		tagsGroup.DELETE("/:id", r.tagHandler.Delete)
	}

	quotesGroup := e.Group("/quotes", r.authMiddleware.Authenticate)
	{
		quotesGroup.GET("", r.quoteHandler.List)
		quotesGroup.GET("/book/:bookId", r.quoteHandler.ListByBook)
		quotesGroup.POST("", r.quoteHandler.Create)
		quotesGroup.PUT("/:id", r.quoteHandler.Update)
		quotesGroup.DELETE("/:id", r.quoteHandler.Delete)
	}

	e.GET("/stats", r.statsHandler.Get, r.authMiddleware.Authenticate)

	searchGroup := e.Group("/search", r.authMiddleware.Authenticate)
	{
		searchGroup.GET("/books", r.searchHandler.Books)
		searchGroup.GET("/isbn/:isbn", r.searchHandler.ISBN)
		searchGroup.GET("/recommendations", r.searchHandler.Recommendations)
	}
}
