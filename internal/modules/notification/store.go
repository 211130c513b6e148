// README: Notification sink interface and the PostgreSQL implementation.
package notification

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mishwar/internal/types"
)

var ErrNotFound = errors.New("notification not found")

// Sink is the append-only side channel. Rows are mutated only to flip the
// read flag and deleted only by their recipient.
type Sink interface {
	Create(ctx context.Context, n *Notification) error
	ListForUser(ctx context.Context, userID types.ID) ([]*Notification, error)
	MarkRead(ctx context.Context, id types.ID) (*Notification, error)
	Delete(ctx context.Context, id types.ID) error
}

type PGSink struct {
	db *pgxpool.Pool
}

func NewPGSink(db *pgxpool.Pool) *PGSink {
	return &PGSink{db: db}
}

func (s *PGSink) Create(ctx context.Context, n *Notification) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO notifications (
			id, recipient_id, recipient_kind, title, message, category, read, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		string(n.ID), string(n.RecipientID), string(n.RecipientKind),
		n.Title, n.Message, n.Category, n.Read, n.CreatedAt,
	)
	return err
}

func (s *PGSink) ListForUser(ctx context.Context, userID types.ID) ([]*Notification, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, recipient_id, recipient_kind, title, message, category, read, created_at
		FROM notifications
		WHERE recipient_id = $1
		ORDER BY created_at DESC`, string(userID),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (s *PGSink) MarkRead(ctx context.Context, id types.ID) (*Notification, error) {
	row := s.db.QueryRow(ctx, `
		UPDATE notifications SET read = TRUE
		WHERE id = $1
		RETURNING id, recipient_id, recipient_kind, title, message, category, read, created_at`,
		string(id),
	)
	n, err := scanNotification(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return n, err
}

func (s *PGSink) Delete(ctx context.Context, id types.ID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM notifications WHERE id = $1`, string(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanNotification(row pgx.Row) (*Notification, error) {
	var n Notification
	var kind string
	err := row.Scan(&n.ID, &n.RecipientID, &kind, &n.Title, &n.Message, &n.Category, &n.Read, &n.CreatedAt)
	if err != nil {
		return nil, err
	}
	n.RecipientKind = RecipientKind(kind)
	return &n, nil
}
