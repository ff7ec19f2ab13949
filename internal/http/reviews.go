package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// HeaderTaskID carries the confirmation task id on review creation responses.
const HeaderTaskID = "X-Task-ID"

type ReviewsController struct {
	store    ReviewStore
	notifier ReviewNotifier
}

// NewReviewsController creates a ReviewsController. A nil notifier disables
// review confirmations.
func NewReviewsController(store ReviewStore, notifier ReviewNotifier) *ReviewsController {
	return &ReviewsController{store: store, notifier: notifier}
}

// CreateReview handles POST /books/:id/reviews/
func (rc *ReviewsController) CreateReview(c *gin.Context) {
	bookID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req ReviewCreate
	if !bindJSON(c, &req) {
		return
	}

	review, err := rc.store.CreateReview(c.Request.Context(), bookID, req.toInput())
	if err != nil {
		respondStoreError(c, err, "create review")
		return
	}

	// The review is committed; nothing after this point may change the status or body.
	if taskID := rc.notify(c, review); taskID != "" {
		c.Header(HeaderTaskID, taskID)
	}

	c.JSON(http.StatusOK, review)
}

// ListReviews handles GET /books/:id/reviews/
func (rc *ReviewsController) ListReviews(c *gin.Context) {
	bookID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	reviews, err := rc.store.ListReviews(c.Request.Context(), bookID)
	if err != nil {
		respondStoreError(c, err, "list reviews")
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// GetReview handles GET /reviews/:id/
func (rc *ReviewsController) GetReview(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	review, err := rc.store.GetReview(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err, "get review")
		return
	}
	c.JSON(http.StatusOK, review)
}

// DeleteReview handles DELETE /reviews/:id/
func (rc *ReviewsController) DeleteReview(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := rc.store.DeleteReview(c.Request.Context(), id); err != nil {
		respondStoreError(c, err, "delete review")
		return
	}
	respondSuccess(c, "Review deleted successfully")
}

func (rc *ReviewsController) notify(c *gin.Context, review *entities.Review) (taskID string) {
	if rc.notifier == nil {
		return ""
	}
	logger := loggerFrom(c)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("review notifier panicked",
				zap.Uint("review_id", review.ID),
				zap.Error(fmt.Errorf("%v", r)),
			)
		}
	}()

	id, err := rc.notifier.ReviewSubmitted(context.WithoutCancel(c.Request.Context()), review)
	if err != nil {
		logger.Warn("failed to enqueue review confirmation",
			zap.Uint("review_id", review.ID),
			zap.Error(err),
		)
		return ""
	}
	if id != "" {
		logger.Debug("review confirmation scheduled",
			zap.Uint("review_id", review.ID),
			zap.String("task_id", id),
		)
	}
	return id
}
