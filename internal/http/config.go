package http

import (
	"go.uber.org/zap"

	"github.com/mrlokans/bookshelf/internal/demo"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Store    Store
	Database Pinger

	// Review confirmations; nil disables them
	Notifier ReviewNotifier

	// Task queue status (optional)
	Tasks TaskStatusReader

	// Demo mode blocks writes when enabled (optional)
	DemoMiddleware *demo.Middleware

	Logger *zap.Logger

	// Application info
	Version string
}
