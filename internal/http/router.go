package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies.
func NewRouter(cfg RouterConfig) *gin.Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	useWireFieldNames()

	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.Use(AccessLogMiddleware(logger.Named("http")))
	router.Use(RecoveryMiddleware())

	// Apply demo mode middleware if enabled
	if cfg.DemoMiddleware != nil && cfg.DemoMiddleware.IsEnabled() {
		router.Use(cfg.DemoMiddleware.Handler())
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	})

	// Create controllers with appropriate interfaces
	health := NewHealthController(cfg.Database, cfg.Store, cfg.Version)
	booksController := NewBooksController(cfg.Store)
	reviewsController := NewReviewsController(cfg.Store, cfg.Notifier)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// Books
	router.POST("/books/", booksController.CreateBook)
	router.GET("/books/", booksController.ListBooks)
	router.GET("/books/:id/", booksController.GetBook)
	router.PUT("/books/:id/", booksController.UpdateBook)
	router.DELETE("/books/:id/", booksController.DeleteBook)

	// Reviews
	router.GET("/books/:id/reviews/", reviewsController.ListReviews)
	router.POST("/books/:id/reviews/", reviewsController.CreateReview)
	router.GET("/reviews/:id/", reviewsController.GetReview)
	router.DELETE("/reviews/:id/", reviewsController.DeleteReview)

	// Task status endpoint
	if cfg.Tasks != nil {
		tasksController := NewTasksController(cfg.Tasks)
		router.GET("/tasks/:id/", tasksController.GetTaskStatus)
	}

	return router
}
