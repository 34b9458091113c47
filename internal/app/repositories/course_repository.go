package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/eduverse/eduverse/internal/app/models"
	"github.com/eduverse/eduverse/internal/db"
	"github.com/eduverse/eduverse/internal/pkg/apperrors"
	"github.com/eduverse/eduverse/internal/pkg/dberrors"
)

// ICourseRepository defines the interface for course-related database operations
type ICourseRepository interface {
	Create(ctx context.Context, course *models.Course, instructorID int64) error
	GetByID(ctx context.Context, id string) (*models.Course, error)
	List(ctx context.Context) ([]*models.Course, error)
	ListEnrolled(ctx context.Context, userID int64) ([]*models.Course, error)
	ListTaught(ctx context.Context, userID int64) ([]*models.Course, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id string) error
	IsInstructor(ctx context.Context, courseID string, userID int64) (bool, error)
	Enroll(ctx context.Context, courseID string, userID int64) error
	Unenroll(ctx context.Context, courseID string, userID int64) error
}

// CourseRepository handles database operations for courses and enrollments
type CourseRepository struct {
	db *db.PostgresDB
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(database *db.PostgresDB) *CourseRepository {
	return &CourseRepository{db: database}
}

// Create inserts a new course and registers its initial instructor
func (r *CourseRepository) Create(ctx context.Context, course *models.Course, instructorID int64) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		query := `
			INSERT INTO courses (id, name, description, credit_hours, capacity)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING created_at, updated_at
		`

		err := tx.QueryRow(ctx, query,
			course.ID,
			course.Name,
			course.Description,
			course.CreditHours,
			course.Capacity,
		).Scan(&course.CreatedAt, &course.UpdatedAt)
		if err != nil {
			if dberrors.IsUniqueViolation(err) {
				return apperrors.ErrCourseAlreadyExists
			}
			return fmt.Errorf("error creating course: %w", err)
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO course_instructors (course_id, user_id) VALUES ($1, $2)`,
			course.ID, instructorID)
		if err != nil {
			return fmt.Errorf("error registering course instructor: %w", err)
		}

		return nil
	})
}

// GetByID retrieves a course with its instructors
func (r *CourseRepository) GetByID(ctx context.Context, id string) (*models.Course, error) {
	query := `
		SELECT id, name, description, credit_hours, capacity, enrolled, created_at, updated_at
		FROM courses
		WHERE id = $1
	`

	var course models.Course
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.Name,
		&course.Description,
		&course.CreditHours,
		&course.Capacity,
		&course.Enrolled,
		&course.CreatedAt,
		&course.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	instructors, err := r.getInstructors(ctx, course.ID)
	if err != nil {
		return nil, err
	}
	course.Instructors = instructors

	return &course, nil
}

func (r *CourseRepository) getInstructors(ctx context.Context, courseID string) ([]models.CourseInstructor, error) {
	query := `
		SELECT u.id, u.name, u.email
		FROM course_instructors ci
		JOIN users u ON u.id = ci.user_id
		WHERE ci.course_id = $1
		ORDER BY u.name
	`

	rows, err := r.db.Pool.Query(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving course instructors: %w", err)
	}
	defer rows.Close()

	instructors := []models.CourseInstructor{}
	for rows.Next() {
		var instructor models.CourseInstructor
		if err := rows.Scan(&instructor.ID, &instructor.Name, &instructor.Email); err != nil {
			return nil, fmt.Errorf("error scanning course instructor: %w", err)
		}
		instructors = append(instructors, instructor)
	}
	return instructors, rows.Err()
}

// List retrieves all courses ordered by id
func (r *CourseRepository) List(ctx context.Context) ([]*models.Course, error) {
	query := `
		SELECT id, name, description, credit_hours, capacity, enrolled, created_at, updated_at
		FROM courses
		ORDER BY id
	`

	return r.queryCourses(ctx, query)
}

// ListEnrolled retrieves the courses a user is enrolled in
func (r *CourseRepository) ListEnrolled(ctx context.Context, userID int64) ([]*models.Course, error) {
	query := `
		SELECT c.id, c.name, c.description, c.credit_hours, c.capacity, c.enrolled, c.created_at, c.updated_at
		FROM courses c
		JOIN enrollments e ON e.course_id = c.id
		WHERE e.user_id = $1
		ORDER BY c.id
	`

	return r.queryCourses(ctx, query, userID)
}

// ListTaught retrieves the courses a user teaches
func (r *CourseRepository) ListTaught(ctx context.Context, userID int64) ([]*models.Course, error) {
	query := `
		SELECT c.id, c.name, c.description, c.credit_hours, c.capacity, c.enrolled, c.created_at, c.updated_at
		FROM courses c
		JOIN course_instructors ci ON ci.course_id = c.id
		WHERE ci.user_id = $1
		ORDER BY c.id
	`

	return r.queryCourses(ctx, query, userID)
}

func (r *CourseRepository) queryCourses(ctx context.Context, query string, args ...interface{}) ([]*models.Course, error) {
	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		err := rows.Scan(
			&course.ID,
			&course.Name,
			&course.Description,
			&course.CreditHours,
			&course.Capacity,
			&course.Enrolled,
			&course.CreatedAt,
			&course.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning course: %w", err)
		}
		courses = append(courses, &course)
	}
	return courses, rows.Err()
}

// Update modifies course fields
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	query := `
		UPDATE courses
		SET name = $1, description = $2, credit_hours = $3, capacity = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING updated_at
	`

	err := r.db.Pool.QueryRow(ctx, query,
		course.Name,
		course.Description,
		course.CreditHours,
		course.Capacity,
		course.ID,
	).Scan(&course.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.ErrCourseNotFound
		}
		return fmt.Errorf("error updating course: %w", err)
	}
	return nil
}

// Delete removes a course. Enrollments and instructor links cascade;
// posts and files referencing the course are left in place.
func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

// IsInstructor reports whether a user teaches a course
func (r *CourseRepository) IsInstructor(ctx context.Context, courseID string, userID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM course_instructors WHERE course_id = $1 AND user_id = $2)`
	if err := r.db.Pool.QueryRow(ctx, query, courseID, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking course instructor: %w", err)
	}
	return exists, nil
}

// Enroll registers a user in a course. The enrollment row and the counter
// increment happen in one transaction; the conditional update enforces
// capacity without a separate read.
func (r *CourseRepository) Enroll(ctx context.Context, courseID string, userID int64) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO enrollments (user_id, course_id) VALUES ($1, $2)`,
			userID, courseID)
		if err != nil {
			if dberrors.IsUniqueViolation(err) {
				return apperrors.ErrAlreadyEnrolled
			}
			return fmt.Errorf("error creating enrollment: %w", err)
		}

		tag, err := tx.Exec(ctx,
			`UPDATE courses SET enrolled = enrolled + 1 WHERE id = $1 AND enrolled < capacity`,
			courseID)
		if err != nil {
			return fmt.Errorf("error incrementing enrollment counter: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrCourseFull
		}

		return nil
	})
}

// Unenroll removes a user's enrollment and decrements the counter
func (r *CourseRepository) Unenroll(ctx context.Context, courseID string, userID int64) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`DELETE FROM enrollments WHERE user_id = $1 AND course_id = $2`,
			userID, courseID)
		if err != nil {
			return fmt.Errorf("error removing enrollment: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrNotEnrolled
		}

		_, err = tx.Exec(ctx,
			`UPDATE courses SET enrolled = GREATEST(enrolled - 1, 0) WHERE id = $1`,
			courseID)
		if err != nil {
			return fmt.Errorf("error decrementing enrollment counter: %w", err)
		}

		return nil
	})
}
