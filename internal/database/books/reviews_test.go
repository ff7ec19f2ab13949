package books

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookshelf/internal/entities"
)

func TestCreateReview(t *testing.T) {
	repo, _ := setupTestRepo(t)
	ctx := context.Background()
	book := mustCreateBook(t, repo, "A", "B", 2020)

	review, err := repo.CreateReview(ctx, book.ID, ReviewInput{Text: "Great", Reviewer: "ann", Rating: 5})
	require.NoError(t, err)
	assert.NotZero(t, review.ID)
	assert.Equal(t, book.ID, review.BookID)
	assert.Equal(t, "Great", review.Text)
	assert.Equal(t, "ann", review.Reviewer)
	assert.Equal(t, 5, review.Rating)
	assert.False(t, review.CreatedAt.IsZero())
}

func TestCreateReviewForMissingBook(t *testing.T) {
	repo, db := setupTestRepo(t)

	review, err := repo.CreateReview(context.Background(), 9999, ReviewInput{Text: "lost"})
	assert.Nil(t, review)
	assert.ErrorIs(t, err, ErrBookNotFound)

	var count int64
	require.NoError(t, db.DB.Model(&entities.Review{}).Count(&count).Error)
	assert.Zero(t, count, "no review should be persisted")
}

func TestListReviews(t *testing.T) {
	repo, _ := setupTestRepo(t)
	ctx := context.Background()
	book := mustCreateBook(t, repo, "A", "B", 2020)
	other := mustCreateBook(t, repo, "C", "D", 2021)

	t.Run("empty for a book without reviews", func(t *testing.T) {
		reviews, err := repo.ListReviews(ctx, book.ID)
		require.NoError(t, err)
		assert.NotNil(t, reviews)
		assert.Empty(t, reviews)
	})

	_, err := repo.CreateReview(ctx, book.ID, ReviewInput{Text: "first"})
	require.NoError(t, err)
	_, err = repo.CreateReview(ctx, other.ID, ReviewInput{Text: "elsewhere"})
	require.NoError(t, err)
	_, err = repo.CreateReview(ctx, book.ID, ReviewInput{Text: "second"})
	require.NoError(t, err)

	t.Run("only reviews of the requested book, oldest first", func(t *testing.T) {
		reviews, err := repo.ListReviews(ctx, book.ID)
		require.NoError(t, err)
		require.Len(t, reviews, 2)
		assert.Equal(t, "first", reviews[0].Text)
		assert.Equal(t, "second", reviews[1].Text)
	})

	t.Run("missing book", func(t *testing.T) {
		_, err := repo.ListReviews(ctx, 9999)
		assert.ErrorIs(t, err, ErrBookNotFound)
	})
}

func TestGetReview(t *testing.T) {
	repo, _ := setupTestRepo(t)
	ctx := context.Background()
	book := mustCreateBook(t, repo, "A", "B", 2020)
	created, err := repo.CreateReview(ctx, book.ID, ReviewInput{Text: "hello", Rating: 3})
	require.NoError(t, err)

	got, err := repo.GetReview(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, book.ID, got.BookID)
	assert.Equal(t, 3, got.Rating)

	_, err = repo.GetReview(ctx, 9999)
	assert.ErrorIs(t, err, ErrReviewNotFound)
}

func TestDeleteReview(t *testing.T) {
	repo, _ := setupTestRepo(t)
	ctx := context.Background()
	book := mustCreateBook(t, repo, "A", "B", 2020)
	review, err := repo.CreateReview(ctx, book.ID, ReviewInput{Text: "bye"})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteReview(ctx, review.ID))

	_, err = repo.GetReview(ctx, review.ID)
	assert.ErrorIs(t, err, ErrReviewNotFound)

	reviews, err := repo.ListReviews(ctx, book.ID)
	require.NoError(t, err)
	assert.Empty(t, reviews)

	t.Run("missing review leaves state unchanged", func(t *testing.T) {
		survivor, err := repo.CreateReview(ctx, book.ID, ReviewInput{Text: "survivor"})
		require.NoError(t, err)

		assert.ErrorIs(t, repo.DeleteReview(ctx, 9999), ErrReviewNotFound)

		reviews, err := repo.ListReviews(ctx, book.ID)
		require.NoError(t, err)
		require.Len(t, reviews, 1)
		assert.Equal(t, survivor.ID, reviews[0].ID)
	})
}
