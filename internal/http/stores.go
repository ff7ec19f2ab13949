package http

import (
	"context"

	"github.com/mikestefanello/backlite"

	"github.com/mrlokans/bookshelf/internal/database/books"
	"github.com/mrlokans/bookshelf/internal/entities"
)

// This file consolidates the interfaces HTTP controllers depend on.
// Each controller takes only the methods it uses.

// BookStore provides book persistence.
type BookStore interface {
	CreateBook(ctx context.Context, input books.BookInput) (*entities.Book, error)
	GetBook(ctx context.Context, id uint) (*entities.Book, error)
	ListBooks(ctx context.Context, filter books.BookFilter) ([]entities.Book, error)
	UpdateBook(ctx context.Context, id uint, input books.BookInput) (*entities.Book, error)
	DeleteBook(ctx context.Context, id uint) error
}

// ReviewStore provides review persistence.
type ReviewStore interface {
	CreateReview(ctx context.Context, bookID uint, input books.ReviewInput) (*entities.Review, error)
	ListReviews(ctx context.Context, bookID uint) ([]entities.Review, error)
	GetReview(ctx context.Context, id uint) (*entities.Review, error)
	DeleteReview(ctx context.Context, id uint) error
}

// StatsReader reports aggregate counts for the health endpoint.
type StatsReader interface {
	Stats(ctx context.Context) (totalBooks int64, totalReviews int64, err error)
}

// Store combines every store interface. *books.Repository implements it.
type Store interface {
	BookStore
	ReviewStore
	StatsReader
}

// ReviewNotifier is told about each stored review. Implementations must
// only hand the work off and return promptly.
type ReviewNotifier interface {
	ReviewSubmitted(ctx context.Context, review *entities.Review) (string, error)
}

// TaskStatusReader looks up background task state.
type TaskStatusReader interface {
	Status(ctx context.Context, taskID string) (backlite.TaskStatus, error)
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}
