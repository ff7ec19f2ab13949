// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - BookStore: Book CRUD (internal/http/stores.go)
//   - ReviewStore: Review create, list, get and delete (internal/http/stores.go)
//   - StatsReader: Book and review counts for /health (internal/http/stores.go)
//   - Pinger: Database connectivity (internal/http/stores.go)
//
// All of them are implemented by books.Repository and database.Database.
// Repository methods take a context.Context and run mutations inside a
// single gorm transaction.
//
// ## Notification Interfaces
//
//   - ReviewNotifier: Told about each stored review (internal/http/stores.go)
//   - Mailer: Delivers the review confirmation (internal/notifications/mailer.go)
//   - Enqueuer: Hands tasks to the backlite queue (internal/tasks/review_submitted.go)
//   - TaskStatusReader: Looks up queued task state (internal/http/stores.go)
//
// The controller calls ReviewNotifier after the review is committed. A
// failure there is logged and never changes the response.
//
// # Adding a New Mailer
//
//  1. Implement Mailer in internal/notifications/
//
//     type SMTPMailer struct {
//         addr string
//     }
//
//     func (m *SMTPMailer) SendReviewConfirmation(ctx context.Context, msg ReviewConfirmation) error
//
//  2. Pass it to tasks.NewReviewSubmittedQueue in entrypoint.go
//
//  3. Add a compile-time check to checks.go
//
// # Adding a New Background Task
//
//  1. Define the task type and its backlite.QueueConfig in internal/tasks/
//  2. Register its queue on the tasks.Client in entrypoint.go
//  3. Enqueue it with client.Add(task).Ctx(ctx).Save()
package interfaces
