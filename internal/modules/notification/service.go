// README: Notification service; Push is fire-and-forget for callers.
package notification

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"mishwar/internal/types"
)

type Service struct {
	sink Sink
	log  *logrus.Logger
}

func NewService(sink Sink, log *logrus.Logger) *Service {
	return &Service{sink: sink, log: log}
}

// Push records a notification for a user. Failures are logged and swallowed:
// a trip transition that already committed must not fail because its
// notification could not be written.
func (s *Service) Push(ctx context.Context, recipientID types.ID, recipientKind, title, message, category string) {
	if recipientID == "" {
		s.log.WithField("title", title).Warn("push notification skipped: missing recipient id")
		return
	}
	kind := RecipientKind(recipientKind)
	if kind != KindClient && kind != KindDriver {
		s.log.WithFields(logrus.Fields{"recipient": recipientID, "kind": recipientKind}).
			Warn("push notification skipped: unknown recipient kind")
		return
	}
	if category == "" {
		category = CategorySystem
	}

	n := &Notification{
		ID:            types.ID(uuid.NewString()),
		RecipientID:   recipientID,
		RecipientKind: kind,
		Title:         title,
		Message:       message,
		Category:      category,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.sink.Create(ctx, n); err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{
			"recipient": recipientID,
			"kind":      recipientKind,
			"title":     title,
		}).Warn("push notification failed")
	}
}

func (s *Service) ListForUser(ctx context.Context, userID types.ID) ([]*Notification, error) {
	return s.sink.ListForUser(ctx, userID)
}

func (s *Service) MarkRead(ctx context.Context, id types.ID) (*Notification, error) {
	return s.sink.MarkRead(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id types.ID) error {
	return s.sink.Delete(ctx, id)
}
