package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/eduverse/eduverse/internal/app/models"
	"github.com/eduverse/eduverse/internal/db"
	"github.com/eduverse/eduverse/internal/pkg/apperrors"
)

// ICommentRepository defines the interface for comment-related database operations
type ICommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id int64) (*models.Comment, error)
	ListByPost(ctx context.Context, postID int64) ([]*models.Comment, error)
	Delete(ctx context.Context, id int64) error
}

// CommentRepository handles database operations for comments
type CommentRepository struct {
	db *db.PostgresDB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(database *db.PostgresDB) *CommentRepository {
	return &CommentRepository{db: database}
}

func scanComment(row pgx.Row) (*models.Comment, error) {
	var comment models.Comment
	err := row.Scan(
		&comment.ID,
		&comment.PostID,
		&comment.ParentCommentID,
		&comment.Sender.ID,
		&comment.Sender.Name,
		&comment.Sender.PhotoFileID,
		&comment.Body,
		&comment.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// Create inserts a new comment with the sender's current identity snapshot
func (r *CommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (post_id, parent_comment_id, sender_id, sender_name, sender_photo_file_id, body)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.db.Pool.QueryRow(ctx, query,
		comment.PostID,
		comment.ParentCommentID,
		comment.Sender.ID,
		comment.Sender.Name,
		comment.Sender.PhotoFileID,
		comment.Body,
	).Scan(&comment.ID, &comment.CreatedAt)

	if err != nil {
		return fmt.Errorf("error creating comment: %w", err)
	}
	return nil
}

// GetByID retrieves a comment by ID
func (r *CommentRepository) GetByID(ctx context.Context, id int64) (*models.Comment, error) {
	query := `
		SELECT id, post_id, parent_comment_id, sender_id, sender_name, sender_photo_file_id, body, created_at
		FROM comments
		WHERE id = $1
	`

	comment, err := scanComment(r.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrCommentNotFound
		}
		return nil, fmt.Errorf("error retrieving comment: %w", err)
	}
	return comment, nil
}

// ListByPost retrieves a post's comments oldest first
func (r *CommentRepository) ListByPost(ctx context.Context, postID int64) ([]*models.Comment, error) {
	query := `
		SELECT id, post_id, parent_comment_id, sender_id, sender_name, sender_photo_file_id, body, created_at
		FROM comments
		WHERE post_id = $1
		ORDER BY created_at ASC
	`

	rows, err := r.db.Pool.Query(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving comments: %w", err)
	}
	defer rows.Close()

	var comments []*models.Comment
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning comment: %w", err)
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}

// Delete removes a comment
func (r *CommentRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCommentNotFound
	}
	return nil
}
