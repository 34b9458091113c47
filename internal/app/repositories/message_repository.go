package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/eduverse/eduverse/internal/app/models"
	"github.com/eduverse/eduverse/internal/db"
	"github.com/eduverse/eduverse/internal/pkg/apperrors"
)

// IMessageRepository defines the interface for message-related database operations
type IMessageRepository interface {
	Create(ctx context.Context, message *models.Message) error
	GetByID(ctx context.Context, id int64) (*models.Message, error)
	ListByPair(ctx context.Context, userA, userB int64) ([]*models.Message, error)
	Delete(ctx context.Context, id int64) error
}

// MessageRepository handles database operations for direct messages
type MessageRepository struct {
	db *db.PostgresDB
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(database *db.PostgresDB) *MessageRepository {
	return &MessageRepository{db: database}
}

func scanMessage(row pgx.Row) (*models.Message, error) {
	var message models.Message
	err := row.Scan(
		&message.ID,
		&message.SenderID,
		&message.ReceiverID,
		&message.Text,
		&message.AttachmentIDs,
		&message.ReplyTo,
		&message.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// Create inserts a new message
func (r *MessageRepository) Create(ctx context.Context, message *models.Message) error {
	query := `
		INSERT INTO messages (sender_id, receiver_id, text, attachment_ids, reply_to)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.Pool.QueryRow(ctx, query,
		message.SenderID,
		message.ReceiverID,
		message.Text,
		message.AttachmentIDs,
		message.ReplyTo,
	).Scan(&message.ID, &message.CreatedAt)

	if err != nil {
		return fmt.Errorf("error creating message: %w", err)
	}
	return nil
}

// GetByID retrieves a message by ID
func (r *MessageRepository) GetByID(ctx context.Context, id int64) (*models.Message, error) {
	query := `
		SELECT id, sender_id, receiver_id, text, attachment_ids, reply_to, created_at
		FROM messages
		WHERE id = $1
	`

	message, err := scanMessage(r.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrMessageNotFound
		}
		return nil, fmt.Errorf("error retrieving message: %w", err)
	}
	return message, nil
}

// ListByPair retrieves the conversation between two users oldest first.
// Messages carry no chat id; the pair itself identifies the conversation.
func (r *MessageRepository) ListByPair(ctx context.Context, userA, userB int64) ([]*models.Message, error) {
	query := `
		SELECT id, sender_id, receiver_id, text, attachment_ids, reply_to, created_at
		FROM messages
		WHERE LEAST(sender_id, receiver_id) = LEAST($1::bigint, $2::bigint)
		  AND GREATEST(sender_id, receiver_id) = GREATEST($1::bigint, $2::bigint)
		ORDER BY created_at ASC
	`

	rows, err := r.db.Pool.Query(ctx, query, userA, userB)
	if err != nil {
		return nil, fmt.Errorf("error retrieving messages: %w", err)
	}
	defer rows.Close()

	var messages []*models.Message
	for rows.Next() {
		message, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning message: %w", err)
		}
		messages = append(messages, message)
	}
	return messages, rows.Err()
}

// Delete removes a message
func (r *MessageRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM messages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting message: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrMessageNotFound
	}
	return nil
}
