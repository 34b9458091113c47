package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/eduverse/eduverse/internal/app/models"
	"github.com/eduverse/eduverse/internal/db"
	"github.com/eduverse/eduverse/internal/pkg/apperrors"
	"github.com/eduverse/eduverse/internal/pkg/dberrors"
)

const userColumns = `id, name, email, password, role, level, profile_photo_file_id,
	reset_password_token, reset_password_expires, created_at, updated_at`

// IUserRepository defines the interface for user-related database operations
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByIDs(ctx context.Context, ids []int64) (map[int64]*models.User, error)
	UpdateProfile(ctx context.Context, user *models.User, fanOut bool) error
	UpdatePassword(ctx context.Context, userID int64, hashedPassword string) error
	SetResetToken(ctx context.Context, userID int64, token string, expires time.Time) error
	GetByResetToken(ctx context.Context, token string) (*models.User, error)
	Search(ctx context.Context, requesterID int64, query string, role string, limit int) ([]*models.User, error)
	GetStats(ctx context.Context, userID int64) (postsCount, commentsCount, reactionsGiven, enrolledCourses int64, err error)
}

// UserRepository handles database operations for users
type UserRepository struct {
	db *db.PostgresDB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(database *db.PostgresDB) *UserRepository {
	return &UserRepository{db: database}
}

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Password,
		&user.Role,
		&user.Level,
		&user.ProfilePhotoFileID,
		&user.ResetPasswordToken,
		&user.ResetPasswordExpires,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (name, email, password, role, level)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.db.Pool.QueryRow(ctx, query,
		user.Name,
		user.Email,
		user.Password,
		user.Role,
		user.Level,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(r.db.Pool.QueryRow(ctx, query, strings.ToLower(email)))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user by email: %w", err)
	}
	return user, nil
}

// GetByIDs retrieves users for a set of IDs, keyed by ID.
// Missing IDs are simply absent from the result.
func (r *UserRepository) GetByIDs(ctx context.Context, ids []int64) (map[int64]*models.User, error) {
	result := make(map[int64]*models.User, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	query := `SELECT ` + userColumns + ` FROM users WHERE id = ANY($1)`

	rows, err := r.db.Pool.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("error retrieving users: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning user: %w", err)
		}
		result[user.ID] = user
	}
	return result, rows.Err()
}

// UpdateProfile updates a user's profile fields and, when name or photo changed,
// rewrites every denormalized sender snapshot in the same transaction.
func (r *UserRepository) UpdateProfile(ctx context.Context, user *models.User, fanOut bool) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		query := `
			UPDATE users
			SET name = $1, email = $2, level = $3, profile_photo_file_id = $4, updated_at = NOW()
			WHERE id = $5
			RETURNING updated_at
		`

		err := tx.QueryRow(ctx, query,
			user.Name,
			user.Email,
			user.Level,
			user.ProfilePhotoFileID,
			user.ID,
		).Scan(&user.UpdatedAt)
		if err != nil {
			if err == pgx.ErrNoRows {
				return apperrors.ErrUserNotFound
			}
			if dberrors.IsUniqueViolation(err) {
				return apperrors.ErrEmailAlreadyExists
			}
			return fmt.Errorf("error updating user: %w", err)
		}

		if !fanOut {
			return nil
		}

		statements := []string{
			`UPDATE posts SET sender_name = $1, sender_photo_file_id = $2 WHERE sender_id = $3`,
			`UPDATE comments SET sender_name = $1, sender_photo_file_id = $2 WHERE sender_id = $3`,
			`UPDATE chats SET user1_name = $1, user1_photo_file_id = $2 WHERE user1_id = $3`,
			`UPDATE chats SET user2_name = $1, user2_photo_file_id = $2 WHERE user2_id = $3`,
		}
		for _, stmt := range statements {
			if _, err := tx.Exec(ctx, stmt, user.Name, user.ProfilePhotoFileID, user.ID); err != nil {
				return fmt.Errorf("error propagating profile snapshot: %w", err)
			}
		}

		return nil
	})
}

// UpdatePassword replaces a user's password hash and clears any reset token
func (r *UserRepository) UpdatePassword(ctx context.Context, userID int64, hashedPassword string) error {
	query := `
		UPDATE users
		SET password = $1, reset_password_token = NULL, reset_password_expires = NULL, updated_at = NOW()
		WHERE id = $2
	`

	tag, err := r.db.Pool.Exec(ctx, query, hashedPassword, userID)
	if err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// SetResetToken stores a password reset token with its expiry
func (r *UserRepository) SetResetToken(ctx context.Context, userID int64, token string, expires time.Time) error {
	query := `
		UPDATE users
		SET reset_password_token = $1, reset_password_expires = $2, updated_at = NOW()
		WHERE id = $3
	`

	if _, err := r.db.Pool.Exec(ctx, query, token, expires, userID); err != nil {
		return fmt.Errorf("error storing reset token: %w", err)
	}
	return nil
}

// GetByResetToken retrieves the user holding a still-valid reset token
func (r *UserRepository) GetByResetToken(ctx context.Context, token string) (*models.User, error) {
	query := `SELECT ` + userColumns + `
		FROM users
		WHERE reset_password_token = $1 AND reset_password_expires > NOW()`

	user, err := scanUser(r.db.Pool.QueryRow(ctx, query, token))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrInvalidPasswordResetToken
		}
		return nil, fmt.Errorf("error retrieving user by reset token: %w", err)
	}
	return user, nil
}

// Search finds users by name or email fragment, excluding the requester
func (r *UserRepository) Search(ctx context.Context, requesterID int64, query string, role string, limit int) ([]*models.User, error) {
	sql := `SELECT ` + userColumns + ` FROM users WHERE id <> $1`
	args := []interface{}{requesterID}

	if query != "" {
		args = append(args, "%"+query+"%")
		sql += fmt.Sprintf(` AND (name ILIKE $%d OR email ILIKE $%d)`, len(args), len(args))
	}
	if role != "" {
		args = append(args, role)
		sql += fmt.Sprintf(` AND role = $%d`, len(args))
	}

	args = append(args, limit)
	sql += fmt.Sprintf(` ORDER BY name LIMIT $%d`, len(args))

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error searching users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning user: %w", err)
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// GetStats returns aggregate activity counts for a user
func (r *UserRepository) GetStats(ctx context.Context, userID int64) (postsCount, commentsCount, reactionsGiven, enrolledCourses int64, err error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM posts WHERE sender_id = $1),
			(SELECT COUNT(*) FROM comments WHERE sender_id = $1),
			(SELECT COUNT(*) FROM reactions WHERE sender_id = $1),
			(SELECT COUNT(*) FROM enrollments WHERE user_id = $1)
	`

	err = r.db.Pool.QueryRow(ctx, query, userID).Scan(&postsCount, &commentsCount, &reactionsGiven, &enrolledCourses)
	if err != nil {
		err = fmt.Errorf("error retrieving user stats: %w", err)
	}
	return
}
