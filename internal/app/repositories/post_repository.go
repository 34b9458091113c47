package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/eduverse/eduverse/internal/app/models"
	"github.com/eduverse/eduverse/internal/app/models/dto"
	"github.com/eduverse/eduverse/internal/db"
	"github.com/eduverse/eduverse/internal/pkg/apperrors"
)

const postColumns = `id, sender_id, sender_name, sender_photo_file_id, course_id, title, body,
	type, attachment_ids, deadline, event_date, event_location, created_at`

// IPostRepository defines the interface for post-related database operations
type IPostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id int64) (*models.Post, error)
	List(ctx context.Context, filter dto.PostFilter) ([]*models.Post, error)
	ListBySender(ctx context.Context, senderID int64) ([]*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id int64) error
}

// PostRepository handles database operations for posts
type PostRepository struct {
	db *db.PostgresDB
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(database *db.PostgresDB) *PostRepository {
	return &PostRepository{db: database}
}

func scanPost(row pgx.Row) (*models.Post, error) {
	var post models.Post
	err := row.Scan(
		&post.ID,
		&post.Sender.ID,
		&post.Sender.Name,
		&post.Sender.PhotoFileID,
		&post.CourseID,
		&post.Title,
		&post.Body,
		&post.Type,
		&post.AttachmentIDs,
		&post.Deadline,
		&post.EventDate,
		&post.EventLocation,
		&post.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Create inserts a new post with the sender's current identity snapshot
func (r *PostRepository) Create(ctx context.Context, post *models.Post) error {
	query := `
		INSERT INTO posts (
			sender_id, sender_name, sender_photo_file_id, course_id, title, body,
			type, attachment_ids, deadline, event_date, event_location
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at
	`

	err := r.db.Pool.QueryRow(ctx, query,
		post.Sender.ID,
		post.Sender.Name,
		post.Sender.PhotoFileID,
		post.CourseID,
		post.Title,
		post.Body,
		post.Type,
		post.AttachmentIDs,
		post.Deadline,
		post.EventDate,
		post.EventLocation,
	).Scan(&post.ID, &post.CreatedAt)

	if err != nil {
		return fmt.Errorf("error creating post: %w", err)
	}
	return nil
}

// GetByID retrieves a post by ID
func (r *PostRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`

	post, err := scanPost(r.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("error retrieving post: %w", err)
	}
	return post, nil
}

// List retrieves posts newest first, optionally filtered by course and type
func (r *PostRepository) List(ctx context.Context, filter dto.PostFilter) ([]*models.Post, error) {
	sql := `SELECT ` + postColumns + ` FROM posts WHERE 1=1`
	var args []interface{}

	if filter.CourseID != "" {
		args = append(args, filter.CourseID)
		sql += fmt.Sprintf(` AND course_id = $%d`, len(args))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		sql += fmt.Sprintf(` AND type = $%d`, len(args))
	}

	args = append(args, filter.Limit)
	sql += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d`, len(args))
	args = append(args, filter.Skip)
	sql += fmt.Sprintf(` OFFSET $%d`, len(args))

	return r.queryPosts(ctx, sql, args...)
}

// ListBySender retrieves a user's posts newest first
func (r *PostRepository) ListBySender(ctx context.Context, senderID int64) ([]*models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE sender_id = $1 ORDER BY created_at DESC`
	return r.queryPosts(ctx, query, senderID)
}

func (r *PostRepository) queryPosts(ctx context.Context, query string, args ...interface{}) ([]*models.Post, error) {
	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error retrieving posts: %w", err)
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning post: %w", err)
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

// Update modifies a post's editable fields
func (r *PostRepository) Update(ctx context.Context, post *models.Post) error {
	query := `
		UPDATE posts
		SET title = $1, body = $2, type = $3, attachment_ids = $4,
			deadline = $5, event_date = $6, event_location = $7
		WHERE id = $8
	`

	tag, err := r.db.Pool.Exec(ctx, query,
		post.Title,
		post.Body,
		post.Type,
		post.AttachmentIDs,
		post.Deadline,
		post.EventDate,
		post.EventLocation,
		post.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrPostNotFound
	}
	return nil
}

// Delete removes a post; comments and reactions cascade at the database level
func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrPostNotFound
	}
	return nil
}
