package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/eduverse/eduverse/internal/app/models"
	"github.com/eduverse/eduverse/internal/db"
	"github.com/eduverse/eduverse/internal/pkg/apperrors"
)

// IReactionRepository defines the interface for reaction-related database operations
type IReactionRepository interface {
	Upsert(ctx context.Context, reaction *models.Reaction) error
	ListByPost(ctx context.Context, postID int64) ([]*models.Reaction, error)
	SummaryByPost(ctx context.Context, postID int64) (map[models.ReactionType]int64, error)
	GetByPostAndSender(ctx context.Context, postID, senderID int64) (*models.Reaction, error)
	Delete(ctx context.Context, postID, senderID int64) error
}

// ReactionRepository handles database operations for reactions
type ReactionRepository struct {
	db *db.PostgresDB
}

// NewReactionRepository creates a new ReactionRepository
func NewReactionRepository(database *db.PostgresDB) *ReactionRepository {
	return &ReactionRepository{db: database}
}

// Upsert inserts a reaction or replaces the caller's previous one on the same
// post. The unique (post_id, sender_id) constraint makes this a single atomic
// statement.
func (r *ReactionRepository) Upsert(ctx context.Context, reaction *models.Reaction) error {
	query := `
		INSERT INTO reactions (post_id, sender_id, type)
		VALUES ($1, $2, $3)
		ON CONFLICT ON CONSTRAINT reactions_post_sender_unique
		DO UPDATE SET type = EXCLUDED.type, created_at = NOW()
		RETURNING id, created_at
	`

	err := r.db.Pool.QueryRow(ctx, query,
		reaction.PostID,
		reaction.SenderID,
		reaction.Type,
	).Scan(&reaction.ID, &reaction.CreatedAt)

	if err != nil {
		return fmt.Errorf("error upserting reaction: %w", err)
	}
	return nil
}

// ListByPost retrieves all reactions on a post
func (r *ReactionRepository) ListByPost(ctx context.Context, postID int64) ([]*models.Reaction, error) {
	query := `
		SELECT id, post_id, sender_id, type, created_at
		FROM reactions
		WHERE post_id = $1
		ORDER BY created_at ASC
	`

	rows, err := r.db.Pool.Query(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving reactions: %w", err)
	}
	defer rows.Close()

	var reactions []*models.Reaction
	for rows.Next() {
		var reaction models.Reaction
		err := rows.Scan(
			&reaction.ID,
			&reaction.PostID,
			&reaction.SenderID,
			&reaction.Type,
			&reaction.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning reaction: %w", err)
		}
		reactions = append(reactions, &reaction)
	}
	return reactions, rows.Err()
}

// SummaryByPost returns reaction counts per type for a post
func (r *ReactionRepository) SummaryByPost(ctx context.Context, postID int64) (map[models.ReactionType]int64, error) {
	query := `SELECT type, COUNT(*) FROM reactions WHERE post_id = $1 GROUP BY type`

	rows, err := r.db.Pool.Query(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("error summarizing reactions: %w", err)
	}
	defer rows.Close()

	summary := make(map[models.ReactionType]int64)
	for rows.Next() {
		var reactionType models.ReactionType
		var count int64
		if err := rows.Scan(&reactionType, &count); err != nil {
			return nil, fmt.Errorf("error scanning reaction summary: %w", err)
		}
		summary[reactionType] = count
	}
	return summary, rows.Err()
}

// GetByPostAndSender retrieves the caller's reaction on a post, if any
func (r *ReactionRepository) GetByPostAndSender(ctx context.Context, postID, senderID int64) (*models.Reaction, error) {
	query := `
		SELECT id, post_id, sender_id, type, created_at
		FROM reactions
		WHERE post_id = $1 AND sender_id = $2
	`

	var reaction models.Reaction
	err := r.db.Pool.QueryRow(ctx, query, postID, senderID).Scan(
		&reaction.ID,
		&reaction.PostID,
		&reaction.SenderID,
		&reaction.Type,
		&reaction.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrReactionNotFound
		}
		return nil, fmt.Errorf("error retrieving reaction: %w", err)
	}
	return &reaction, nil
}

// Delete removes the caller's reaction from a post
func (r *ReactionRepository) Delete(ctx context.Context, postID, senderID int64) error {
	tag, err := r.db.Pool.Exec(ctx,
		`DELETE FROM reactions WHERE post_id = $1 AND sender_id = $2`,
		postID, senderID)
	if err != nil {
		return fmt.Errorf("error deleting reaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrReactionNotFound
	}
	return nil
}
