// Package books provides database operations for book and review management.
//
// All "not found" detection happens here so every caller gets the same
// failure semantics: methods return ErrBookNotFound or ErrReviewNotFound,
// wrapped, and callers match them with errors.Is.
//
// # Usage
//
//	repo := books.NewRepository(db)
//	book, err := repo.GetBook(ctx, 123)
//	if errors.Is(err, books.ErrBookNotFound) { ... }
package books

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/bookshelf/internal/entities"
)

var (
	ErrBookNotFound   = errors.New("book not found")
	ErrReviewNotFound = errors.New("review not found")
)

// BookInput holds the client-supplied fields of a book.
type BookInput struct {
	Title           string
	Author          string
	PublicationYear int
	ISBN            string
	Description     string
}

// BookFilter narrows ListBooks. Zero values do not filter.
type BookFilter struct {
	Author          string
	PublicationYear int
}

// Sessions hands out gorm sessions bound to a context.
// *database.Database implements it.
type Sessions interface {
	Session(ctx context.Context) *gorm.DB
}

// Repository handles all book and review database operations.
type Repository struct {
	db Sessions
}

// NewRepository creates a new books repository.
func NewRepository(db Sessions) *Repository {
	return &Repository{db: db}
}

// CreateBook inserts a book and returns it as stored.
func (r *Repository) CreateBook(ctx context.Context, input BookInput) (*entities.Book, error) {
	book := entities.Book{
		Title:           input.Title,
		Author:          input.Author,
		PublicationYear: input.PublicationYear,
		ISBN:            input.ISBN,
		Description:     input.Description,
	}

	err := r.db.Session(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&book).Error; err != nil {
			return err
		}
		return tx.First(&book, book.ID).Error
	})
	if err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}
	return &book, nil
}

// GetBook retrieves a book by its ID.
func (r *Repository) GetBook(ctx context.Context, id uint) (*entities.Book, error) {
	book, err := findBook(r.db.Session(ctx), id)
	if err != nil {
		return nil, fmt.Errorf("get book %d: %w", id, err)
	}
	return book, nil
}

// ListBooks returns books matching the filter, ordered by ID.
func (r *Repository) ListBooks(ctx context.Context, filter BookFilter) ([]entities.Book, error) {
	query := r.db.Session(ctx).Model(&entities.Book{})
	if filter.Author != "" {
		query = query.Where("author = ?", filter.Author)
	}
	if filter.PublicationYear != 0 {
		query = query.Where("publication_year = ?", filter.PublicationYear)
	}

	books := []entities.Book{}
	if err := query.Order("id ASC").Find(&books).Error; err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

// UpdateBook overwrites every mutable column of a book with input.
// Omitted optional fields are cleared; id and created_at are never written.
func (r *Repository) UpdateBook(ctx context.Context, id uint, input BookInput) (*entities.Book, error) {
	var book *entities.Book
	err := r.db.Session(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := findBook(tx, id)
		if err != nil {
			return err
		}

		changes := entities.Book{
			Title:           input.Title,
			Author:          input.Author,
			PublicationYear: input.PublicationYear,
			ISBN:            input.ISBN,
			Description:     input.Description,
		}
		if err := tx.Model(existing).Select(entities.BookMutableColumns).Updates(&changes).Error; err != nil {
			return err
		}

		book, err = findBook(tx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("update book %d: %w", id, err)
	}
	return book, nil
}

// DeleteBook permanently removes a book together with its reviews.
func (r *Repository) DeleteBook(ctx context.Context, id uint) error {
	err := r.db.Session(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findBook(tx, id); err != nil {
			return err
		}
		if err := tx.Where("book_id = ?", id).Delete(&entities.Review{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Book{}, id).Error
	})
	if err != nil {
		return fmt.Errorf("delete book %d: %w", id, err)
	}
	return nil
}

// Stats returns total book and review counts.
func (r *Repository) Stats(ctx context.Context) (totalBooks int64, totalReviews int64, err error) {
	db := r.db.Session(ctx)
	err = db.Model(&entities.Book{}).Count(&totalBooks).Error
	if err != nil {
		return
	}
	err = db.Model(&entities.Review{}).Count(&totalReviews).Error
	return
}

func findBook(db *gorm.DB, id uint) (*entities.Book, error) {
	var book entities.Book
	err := db.First(&book, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBookNotFound
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}
