package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/mikestefanello/backlite"
	"go.uber.org/zap"

	"github.com/mrlokans/bookshelf/internal/entities"
	"github.com/mrlokans/bookshelf/internal/notifications"
)

// ReviewSubmittedTask sends the confirmation for a newly stored review.
type ReviewSubmittedTask struct {
	ReviewID uint   `json:"review_id"`
	BookID   uint   `json:"book_id"`
	Text     string `json:"text"`
}

// Config returns the queue configuration for review confirmations.
func (t ReviewSubmittedTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "review_submitted",
		MaxAttempts: 3,
		Backoff:     30 * time.Second,
		Timeout:     time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// ReviewSubmittedProcessor creates a processor function for ReviewSubmittedTask.
func ReviewSubmittedProcessor(mailer notifications.Mailer) backlite.QueueProcessor[ReviewSubmittedTask] {
	return func(ctx context.Context, task ReviewSubmittedTask) error {
		if mailer == nil {
			return fmt.Errorf("mailer not configured")
		}

		err := mailer.SendReviewConfirmation(ctx, notifications.ReviewConfirmation{
			ReviewID: task.ReviewID,
			BookID:   task.BookID,
			Text:     task.Text,
		})
		if err != nil {
			return fmt.Errorf("send confirmation for review %d: %w", task.ReviewID, err)
		}
		return nil
	}
}

// NewReviewSubmittedQueue creates a backlite queue for review confirmations.
func NewReviewSubmittedQueue(mailer notifications.Mailer) backlite.Queue {
	return backlite.NewQueue(ReviewSubmittedProcessor(mailer))
}

// Enqueuer is the part of Client used to hand off tasks.
type Enqueuer interface {
	Add(tasks ...backlite.Task) *backlite.TaskAddOp
}

// ReviewNotifier hands submitted reviews to the task queue.
type ReviewNotifier struct {
	queue  Enqueuer
	logger *zap.Logger
}

func NewReviewNotifier(queue Enqueuer, logger *zap.Logger) *ReviewNotifier {
	return &ReviewNotifier{queue: queue, logger: logger.Named("notifier")}
}

// ReviewSubmitted enqueues a confirmation and returns the task ID.
// It only persists the task; delivery happens on a worker.
func (n *ReviewNotifier) ReviewSubmitted(ctx context.Context, review *entities.Review) (string, error) {
	task := ReviewSubmittedTask{
		ReviewID: review.ID,
		BookID:   review.BookID,
		Text:     review.Text,
	}

	ids, err := n.queue.Add(task).Ctx(ctx).Save()
	if err != nil {
		return "", fmt.Errorf("enqueue confirmation for review %d: %w", review.ID, err)
	}
	if len(ids) == 0 {
		return "", fmt.Errorf("enqueue confirmation for review %d: no task id returned", review.ID)
	}

	n.logger.Debug("review confirmation enqueued",
		zap.Uint("review_id", review.ID),
		zap.String("task_id", ids[0]),
	)
	return ids[0], nil
}

// DisabledNotifier is used when the task queue is turned off.
type DisabledNotifier struct {
	logger *zap.Logger
}

func NewDisabledNotifier(logger *zap.Logger) *DisabledNotifier {
	return &DisabledNotifier{logger: logger.Named("notifier")}
}

func (n *DisabledNotifier) ReviewSubmitted(_ context.Context, review *entities.Review) (string, error) {
	n.logger.Info("task queue disabled, skipping review confirmation", zap.Uint("review_id", review.ID))
	return "", nil
}
