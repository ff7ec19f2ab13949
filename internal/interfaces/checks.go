package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mikestefanello/backlite"

	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/database/books"
	"github.com/mrlokans/bookshelf/internal/http"
	"github.com/mrlokans/bookshelf/internal/notifications"
	"github.com/mrlokans/bookshelf/internal/tasks"
)

// =============================================================================
// Data Access Layer
// =============================================================================

// Store implementations
var _ http.Store = (*books.Repository)(nil)

// Session providers
var _ books.Sessions = (*database.Database)(nil)

// Pinger implementations
var _ http.Pinger = (*database.Database)(nil)

// =============================================================================
// Notifications
// =============================================================================

// ReviewNotifier implementations
var _ http.ReviewNotifier = (*tasks.ReviewNotifier)(nil)
var _ http.ReviewNotifier = (*tasks.DisabledNotifier)(nil)

// Mailer implementations
var _ notifications.Mailer = (*notifications.LogMailer)(nil)

// =============================================================================
// Task Queue
// =============================================================================

var _ http.TaskStatusReader = (*tasks.Client)(nil)
var _ tasks.Enqueuer = (*tasks.Client)(nil)
var _ backlite.Task = tasks.ReviewSubmittedTask{}
