package books

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// ReviewInput holds the client-supplied fields of a review.
type ReviewInput struct {
	Text     string
	Reviewer string
	Rating   int
}

// CreateReview attaches a new review to an existing book.
// The existence check and the insert share one transaction.
func (r *Repository) CreateReview(ctx context.Context, bookID uint, input ReviewInput) (*entities.Review, error) {
	review := entities.Review{
		BookID:   bookID,
		Text:     input.Text,
		Reviewer: input.Reviewer,
		Rating:   input.Rating,
	}

	err := r.db.Session(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findBook(tx, bookID); err != nil {
			return err
		}
		if err := tx.Create(&review).Error; err != nil {
			return err
		}
		return tx.First(&review, review.ID).Error
	})
	if err != nil {
		return nil, fmt.Errorf("create review for book %d: %w", bookID, err)
	}
	return &review, nil
}

// ListReviews returns all reviews of a book, oldest first.
func (r *Repository) ListReviews(ctx context.Context, bookID uint) ([]entities.Review, error) {
	db := r.db.Session(ctx)
	if _, err := findBook(db, bookID); err != nil {
		return nil, fmt.Errorf("list reviews for book %d: %w", bookID, err)
	}

	reviews := []entities.Review{}
	if err := db.Where("book_id = ?", bookID).Order("id ASC").Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("list reviews for book %d: %w", bookID, err)
	}
	return reviews, nil
}

// GetReview retrieves a review by its ID.
func (r *Repository) GetReview(ctx context.Context, id uint) (*entities.Review, error) {
	var review entities.Review
	err := r.db.Session(ctx).First(&review, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("get review %d: %w", id, ErrReviewNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get review %d: %w", id, err)
	}
	return &review, nil
}

// DeleteReview permanently removes a review.
func (r *Repository) DeleteReview(ctx context.Context, id uint) error {
	result := r.db.Session(ctx).Delete(&entities.Review{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete review %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("delete review %d: %w", id, ErrReviewNotFound)
	}
	return nil
}
