package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/eduverse/eduverse/internal/app/models"
	"github.com/eduverse/eduverse/internal/db"
	"github.com/eduverse/eduverse/internal/pkg/apperrors"
)

// IFileRepository defines the interface for file-related database operations
type IFileRepository interface {
	Create(ctx context.Context, file *models.File) error
	GetByID(ctx context.Context, id int64) (*models.File, error)
	ListByCourse(ctx context.Context, courseID string) ([]*models.File, error)
	Delete(ctx context.Context, id int64) error
}

// FileRepository handles database operations for uploaded files
type FileRepository struct {
	db *db.PostgresDB
}

// NewFileRepository creates a new FileRepository
func NewFileRepository(database *db.PostgresDB) *FileRepository {
	return &FileRepository{db: database}
}

// Create inserts a new file with its payload
func (r *FileRepository) Create(ctx context.Context, file *models.File) error {
	query := `
		INSERT INTO files (file_name, file_type, file_data, course_id, post_id, message_id, file_size)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := r.db.Pool.QueryRow(ctx, query,
		file.FileName,
		file.FileType,
		file.FileData,
		file.CourseID,
		file.PostID,
		file.MessageID,
		file.FileSize,
	).Scan(&file.ID, &file.CreatedAt)

	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}
	return nil
}

// GetByID retrieves a file including its payload
func (r *FileRepository) GetByID(ctx context.Context, id int64) (*models.File, error) {
	query := `
		SELECT id, file_name, file_type, file_data, course_id, post_id, message_id, file_size, created_at
		FROM files
		WHERE id = $1
	`

	var file models.File
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(
		&file.ID,
		&file.FileName,
		&file.FileType,
		&file.FileData,
		&file.CourseID,
		&file.PostID,
		&file.MessageID,
		&file.FileSize,
		&file.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrFileNotFound
		}
		return nil, fmt.Errorf("error retrieving file: %w", err)
	}
	return &file, nil
}

// ListByCourse retrieves file metadata for a course, payloads excluded
func (r *FileRepository) ListByCourse(ctx context.Context, courseID string) ([]*models.File, error) {
	query := `
		SELECT id, file_name, file_type, course_id, post_id, message_id, file_size, created_at
		FROM files
		WHERE course_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Pool.Query(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving files: %w", err)
	}
	defer rows.Close()

	var files []*models.File
	for rows.Next() {
		var file models.File
		err := rows.Scan(
			&file.ID,
			&file.FileName,
			&file.FileType,
			&file.CourseID,
			&file.PostID,
			&file.MessageID,
			&file.FileSize,
			&file.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning file: %w", err)
		}
		files = append(files, &file)
	}
	return files, rows.Err()
}

// Delete removes a file
func (r *FileRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM files WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting file: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrFileNotFound
	}
	return nil
}
