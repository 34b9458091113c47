package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/eduverse/eduverse/internal/app/models"
	"github.com/eduverse/eduverse/internal/db"
	"github.com/eduverse/eduverse/internal/pkg/apperrors"
)

const chatColumns = `id, user1_id, user1_name, user1_photo_file_id,
	user2_id, user2_name, user2_photo_file_id, last_message, updated_at`

// IChatRepository defines the interface for chat-related database operations
type IChatRepository interface {
	GetOrCreate(ctx context.Context, user1, user2 models.Sender) (*models.Chat, bool, error)
	GetByID(ctx context.Context, id int64) (*models.Chat, error)
	GetByPair(ctx context.Context, userA, userB int64) (*models.Chat, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.Chat, error)
	UpdateLastMessage(ctx context.Context, chatID int64, preview string) error
}

// ChatRepository handles database operations for one-to-one chats
type ChatRepository struct {
	db *db.PostgresDB
}

// NewChatRepository creates a new ChatRepository
func NewChatRepository(database *db.PostgresDB) *ChatRepository {
	return &ChatRepository{db: database}
}

func scanChat(row pgx.Row) (*models.Chat, error) {
	var chat models.Chat
	err := row.Scan(
		&chat.ID,
		&chat.User1.ID,
		&chat.User1.Name,
		&chat.User1.PhotoFileID,
		&chat.User2.ID,
		&chat.User2.Name,
		&chat.User2.PhotoFileID,
		&chat.LastMessage,
		&chat.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &chat, nil
}

// GetOrCreate returns the chat for an unordered participant pair, creating it
// if none exists. The generated pair key makes concurrent creation attempts
// collapse onto one row.
func (r *ChatRepository) GetOrCreate(ctx context.Context, user1, user2 models.Sender) (*models.Chat, bool, error) {
	insert := `
		INSERT INTO chats (user1_id, user1_name, user1_photo_file_id, user2_id, user2_name, user2_photo_file_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT ON CONSTRAINT chats_pair_unique DO NOTHING
		RETURNING ` + chatColumns

	chat, err := scanChat(r.db.Pool.QueryRow(ctx, insert,
		user1.ID, user1.Name, user1.PhotoFileID,
		user2.ID, user2.Name, user2.PhotoFileID,
	))
	if err == nil {
		return chat, true, nil
	}
	if err != pgx.ErrNoRows {
		return nil, false, fmt.Errorf("error creating chat: %w", err)
	}

	// Conflict: another writer owns the pair, fetch the existing row.
	chat, err = r.GetByPair(ctx, user1.ID, user2.ID)
	if err != nil {
		return nil, false, err
	}
	return chat, false, nil
}

// GetByID retrieves a chat by ID
func (r *ChatRepository) GetByID(ctx context.Context, id int64) (*models.Chat, error) {
	query := `SELECT ` + chatColumns + ` FROM chats WHERE id = $1`

	chat, err := scanChat(r.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrChatNotFound
		}
		return nil, fmt.Errorf("error retrieving chat: %w", err)
	}
	return chat, nil
}

// GetByPair retrieves the chat for an unordered participant pair
func (r *ChatRepository) GetByPair(ctx context.Context, userA, userB int64) (*models.Chat, error) {
	query := `SELECT ` + chatColumns + ` FROM chats
		WHERE pair_low = LEAST($1::bigint, $2::bigint) AND pair_high = GREATEST($1::bigint, $2::bigint)`

	chat, err := scanChat(r.db.Pool.QueryRow(ctx, query, userA, userB))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrChatNotFound
		}
		return nil, fmt.Errorf("error retrieving chat by pair: %w", err)
	}
	return chat, nil
}

// ListByUser retrieves a user's chats, most recently active first
func (r *ChatRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Chat, error) {
	query := `SELECT ` + chatColumns + ` FROM chats
		WHERE user1_id = $1 OR user2_id = $1
		ORDER BY updated_at DESC`

	rows, err := r.db.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving chats: %w", err)
	}
	defer rows.Close()

	var chats []*models.Chat
	for rows.Next() {
		chat, err := scanChat(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning chat: %w", err)
		}
		chats = append(chats, chat)
	}
	return chats, rows.Err()
}

// UpdateLastMessage stores the latest message preview and bumps activity time
func (r *ChatRepository) UpdateLastMessage(ctx context.Context, chatID int64, preview string) error {
	tag, err := r.db.Pool.Exec(ctx,
		`UPDATE chats SET last_message = $1, updated_at = NOW() WHERE id = $2`,
		preview, chatID)
	if err != nil {
		return fmt.Errorf("error updating chat preview: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrChatNotFound
	}
	return nil
}
