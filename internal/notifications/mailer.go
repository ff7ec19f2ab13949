// Package notifications delivers review confirmations.
package notifications

import (
	"context"

	"go.uber.org/zap"
)

// ReviewConfirmation is the content of a confirmation sent after a review
// has been stored.
type ReviewConfirmation struct {
	ReviewID uint
	BookID   uint
	Text     string
}

// Mailer sends review confirmations.
type Mailer interface {
	SendReviewConfirmation(ctx context.Context, msg ReviewConfirmation) error
}

// LogMailer simulates email delivery by writing the message to the log.
type LogMailer struct {
	logger *zap.Logger
}

func NewLogMailer(logger *zap.Logger) *LogMailer {
	return &LogMailer{logger: logger.Named("mailer")}
}

func (m *LogMailer) SendReviewConfirmation(ctx context.Context, msg ReviewConfirmation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.logger.Info("sending confirmation email for review",
		zap.Uint("review_id", msg.ReviewID),
		zap.Uint("book_id", msg.BookID),
		zap.String("text", msg.Text),
	)
	return nil
}
