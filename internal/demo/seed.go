// Package demo provides the read-only demo mode and its sample catalog.
package demo

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mrlokans/bookshelf/internal/database/books"
	"github.com/mrlokans/bookshelf/internal/entities"
)

// Store is the subset of the book repository used for seeding.
type Store interface {
	CreateBook(ctx context.Context, input books.BookInput) (*entities.Book, error)
	CreateReview(ctx context.Context, bookID uint, input books.ReviewInput) (*entities.Review, error)
	Stats(ctx context.Context) (totalBooks int64, totalReviews int64, err error)
}

// SampleBook is a public domain book with its demo reviews.
type SampleBook struct {
	Book    books.BookInput
	Reviews []books.ReviewInput
}

// SeedResult reports what Seed stored.
type SeedResult struct {
	Books   int
	Reviews int
	Skipped bool // database already had books
}

// Seed stores the sample catalog when the database holds no books.
func Seed(ctx context.Context, store Store, logger *zap.Logger) (SeedResult, error) {
	totalBooks, _, err := store.Stats(ctx)
	if err != nil {
		return SeedResult{}, fmt.Errorf("count books: %w", err)
	}
	if totalBooks > 0 {
		logger.Info("database already has books, skipping demo seed", zap.Int64("books", totalBooks))
		return SeedResult{Skipped: true}, nil
	}

	var result SeedResult
	for _, sample := range SampleBooks() {
		book, err := store.CreateBook(ctx, sample.Book)
		if err != nil {
			return result, fmt.Errorf("seed book %q: %w", sample.Book.Title, err)
		}
		result.Books++

		for _, review := range sample.Reviews {
			if _, err := store.CreateReview(ctx, book.ID, review); err != nil {
				return result, fmt.Errorf("seed review for %q: %w", sample.Book.Title, err)
			}
			result.Reviews++
		}
		logger.Debug("seeded book",
			zap.String("title", book.Title),
			zap.String("author", book.Author),
			zap.Int("reviews", len(sample.Reviews)),
		)
	}

	logger.Info("demo catalog seeded", zap.Int("books", result.Books), zap.Int("reviews", result.Reviews))
	return result, nil
}

// SampleBooks returns the demo catalog.
func SampleBooks() []SampleBook {
	return []SampleBook{
		{
			Book: books.BookInput{
				Title:           "Meditations",
				Author:          "Marcus Aurelius",
				PublicationYear: 180,
				Description:     "Private notes on Stoic philosophy written by a Roman emperor.",
			},
			Reviews: []books.ReviewInput{
				{Text: "Short entries, easy to return to.", Reviewer: "demo", Rating: 5},
				{Text: "Repetitive in places, but that is the point.", Rating: 4},
			},
		},
		{
			Book: books.BookInput{
				Title:           "Letters from a Stoic",
				Author:          "Seneca",
				PublicationYear: 65,
			},
			Reviews: []books.ReviewInput{
				{Text: "Practical advice that has aged remarkably well.", Reviewer: "demo", Rating: 5},
			},
		},
		{
			Book: books.BookInput{
				Title:           "On the Origin of Species",
				Author:          "Charles Darwin",
				PublicationYear: 1859,
				ISBN:            "9780451529060",
			},
		},
		{
			Book: books.BookInput{
				Title:           "Pride and Prejudice",
				Author:          "Jane Austen",
				PublicationYear: 1813,
				ISBN:            "9780141439518",
			},
			Reviews: []books.ReviewInput{
				{Text: "Sharp and funny.", Reviewer: "demo", Rating: 5},
				{Text: "Mr. Collins steals every scene he is in."},
			},
		},
		{
			Book: books.BookInput{
				Title:           "Emma",
				Author:          "Jane Austen",
				PublicationYear: 1815,
			},
		},
		{
			Book: books.BookInput{
				Title:           "Crime and Punishment",
				Author:          "Fyodor Dostoevsky",
				PublicationYear: 1866,
			},
			Reviews: []books.ReviewInput{
				{Text: "Exhausting in the best way.", Rating: 4},
			},
		},
		{
			Book: books.BookInput{
				Title:           "Frankenstein",
				Author:          "Mary Shelley",
				PublicationYear: 1818,
				Description:     "The creature is the most articulate character in the novel.",
			},
		},
		{
			Book: books.BookInput{
				Title:           "The Picture of Dorian Gray",
				Author:          "Oscar Wilde",
				PublicationYear: 1890,
			},
			Reviews: []books.ReviewInput{
				{Text: "Every other line is quotable.", Reviewer: "demo", Rating: 4},
			},
		},
	}
}
