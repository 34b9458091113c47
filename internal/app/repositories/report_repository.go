package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/eduverse/eduverse/internal/db"
)

// ContributorCounts carries the raw per-user activity counts behind the
// top-contributors report. Scoring happens in the service layer.
type ContributorCounts struct {
	UserID            int64
	Name              string
	Email             string
	Role              string
	Level             string
	MemberSince       time.Time
	PostsCount        int
	QuestionsAsked    int
	AnnouncementsMade int
	CommentsCount     int
	ReactionsGiven    int
	ReactionsReceived int
}

// CourseEngagementCounts carries the raw per-course activity counts derived
// from posts. CourseExists is false when posts reference a deleted course.
type CourseEngagementCounts struct {
	CourseID           string
	CourseName         string
	CourseExists       bool
	Enrolled           int
	TotalPosts         int
	Questions          int
	Announcements      int
	Discussions        int
	Events             int
	TotalComments      int
	TotalReactions     int
	UniqueContributors int
}

// ReactionCounts carries the raw per-type reaction counts
type ReactionCounts struct {
	Type             string
	TotalCount       int
	UniqueUsersCount int
	UniquePostsCount int
	CoursesReached   int
}

// CoursePerformanceCounts carries the raw per-course counts behind the
// course-performance report
type CoursePerformanceCounts struct {
	CourseID           string
	CourseName         string
	Description        string
	CreditHours        int
	Capacity           int
	Enrolled           int
	TotalPosts         int
	Questions          int
	Announcements      int
	Discussions        int
	Events             int
	TotalComments      int
	TotalReactions     int
	UniqueContributors int
}

// CourseInstructorRow links one instructor to one course
type CourseInstructorRow struct {
	CourseID string
	Name     string
	Email    string
}

// IReportRepository defines the interface for report aggregation queries
type IReportRepository interface {
	ContributorCounts(ctx context.Context) ([]ContributorCounts, error)
	CourseEngagementCounts(ctx context.Context) ([]CourseEngagementCounts, error)
	ReactionCounts(ctx context.Context) ([]ReactionCounts, error)
	CoursePerformanceCounts(ctx context.Context) ([]CoursePerformanceCounts, error)
	InstructorsByCourse(ctx context.Context) ([]CourseInstructorRow, error)
}

// ReportRepository runs the aggregation queries behind the instructor reports
type ReportRepository struct {
	db *db.PostgresDB
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(database *db.PostgresDB) *ReportRepository {
	return &ReportRepository{db: database}
}

// ContributorCounts returns activity counts for every user with any activity
func (r *ReportRepository) ContributorCounts(ctx context.Context) ([]ContributorCounts, error) {
	query := `
		SELECT
			u.id, u.name, u.email, u.role, u.level, u.created_at,
			(SELECT COUNT(*) FROM posts p WHERE p.sender_id = u.id),
			(SELECT COUNT(*) FROM posts p WHERE p.sender_id = u.id AND p.type = 'question'),
			(SELECT COUNT(*) FROM posts p WHERE p.sender_id = u.id AND p.type = 'announcement'),
			(SELECT COUNT(*) FROM comments c WHERE c.sender_id = u.id),
			(SELECT COUNT(*) FROM reactions re WHERE re.sender_id = u.id),
			(SELECT COUNT(*) FROM reactions re JOIN posts p ON p.id = re.post_id WHERE p.sender_id = u.id)
		FROM users u
	`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error counting contributor activity: %w", err)
	}
	defer rows.Close()

	var counts []ContributorCounts
	for rows.Next() {
		var c ContributorCounts
		err := rows.Scan(
			&c.UserID, &c.Name, &c.Email, &c.Role, &c.Level, &c.MemberSince,
			&c.PostsCount, &c.QuestionsAsked, &c.AnnouncementsMade,
			&c.CommentsCount, &c.ReactionsGiven, &c.ReactionsReceived,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning contributor counts: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// CourseEngagementCounts returns activity counts grouped by the course id
// recorded on posts, including posts whose course no longer exists
func (r *ReportRepository) CourseEngagementCounts(ctx context.Context) ([]CourseEngagementCounts, error) {
	query := `
		SELECT
			p.course_id,
			COALESCE(c.name, ''),
			c.id IS NOT NULL,
			COALESCE(c.enrolled, 0),
			COUNT(*),
			COUNT(*) FILTER (WHERE p.type = 'question'),
			COUNT(*) FILTER (WHERE p.type = 'announcement'),
			COUNT(*) FILTER (WHERE p.type = 'discussion'),
			COUNT(*) FILTER (WHERE p.type = 'event'),
			COALESCE(SUM(cc.cnt), 0),
			COALESCE(SUM(rc.cnt), 0),
			COUNT(DISTINCT p.sender_id)
		FROM posts p
		LEFT JOIN courses c ON c.id = p.course_id
		LEFT JOIN LATERAL (SELECT COUNT(*) AS cnt FROM comments WHERE post_id = p.id) cc ON true
		LEFT JOIN LATERAL (SELECT COUNT(*) AS cnt FROM reactions WHERE post_id = p.id) rc ON true
		GROUP BY p.course_id, c.id, c.name, c.enrolled
	`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error counting course engagement: %w", err)
	}
	defer rows.Close()

	var counts []CourseEngagementCounts
	for rows.Next() {
		var c CourseEngagementCounts
		err := rows.Scan(
			&c.CourseID, &c.CourseName, &c.CourseExists, &c.Enrolled,
			&c.TotalPosts, &c.Questions, &c.Announcements, &c.Discussions, &c.Events,
			&c.TotalComments, &c.TotalReactions, &c.UniqueContributors,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning course engagement counts: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// ReactionCounts returns distribution counts grouped by reaction type
func (r *ReportRepository) ReactionCounts(ctx context.Context) ([]ReactionCounts, error) {
	query := `
		SELECT
			re.type,
			COUNT(*),
			COUNT(DISTINCT re.sender_id),
			COUNT(DISTINCT re.post_id),
			COUNT(DISTINCT p.course_id)
		FROM reactions re
		JOIN posts p ON p.id = re.post_id
		GROUP BY re.type
	`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error counting reactions: %w", err)
	}
	defer rows.Close()

	var counts []ReactionCounts
	for rows.Next() {
		var c ReactionCounts
		err := rows.Scan(&c.Type, &c.TotalCount, &c.UniqueUsersCount, &c.UniquePostsCount, &c.CoursesReached)
		if err != nil {
			return nil, fmt.Errorf("error scanning reaction counts: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// CoursePerformanceCounts returns per-course activity counts for every course
func (r *ReportRepository) CoursePerformanceCounts(ctx context.Context) ([]CoursePerformanceCounts, error) {
	query := `
		SELECT
			c.id, c.name, c.description, c.credit_hours, c.capacity, c.enrolled,
			(SELECT COUNT(*) FROM posts p WHERE p.course_id = c.id),
			(SELECT COUNT(*) FROM posts p WHERE p.course_id = c.id AND p.type = 'question'),
			(SELECT COUNT(*) FROM posts p WHERE p.course_id = c.id AND p.type = 'announcement'),
			(SELECT COUNT(*) FROM posts p WHERE p.course_id = c.id AND p.type = 'discussion'),
			(SELECT COUNT(*) FROM posts p WHERE p.course_id = c.id AND p.type = 'event'),
			(SELECT COUNT(*) FROM comments cm JOIN posts p ON p.id = cm.post_id WHERE p.course_id = c.id),
			(SELECT COUNT(*) FROM reactions re JOIN posts p ON p.id = re.post_id WHERE p.course_id = c.id),
			(SELECT COUNT(DISTINCT sender_id) FROM (
				SELECT sender_id FROM posts WHERE course_id = c.id
				UNION
				SELECT cm.sender_id FROM comments cm JOIN posts p ON p.id = cm.post_id WHERE p.course_id = c.id
			) contributors)
		FROM courses c
	`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error counting course performance: %w", err)
	}
	defer rows.Close()

	var counts []CoursePerformanceCounts
	for rows.Next() {
		var c CoursePerformanceCounts
		err := rows.Scan(
			&c.CourseID, &c.CourseName, &c.Description, &c.CreditHours, &c.Capacity, &c.Enrolled,
			&c.TotalPosts, &c.Questions, &c.Announcements, &c.Discussions, &c.Events,
			&c.TotalComments, &c.TotalReactions, &c.UniqueContributors,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning course performance counts: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// InstructorsByCourse returns the instructor roster for every course
func (r *ReportRepository) InstructorsByCourse(ctx context.Context) ([]CourseInstructorRow, error) {
	query := `
		SELECT ci.course_id, u.name, u.email
		FROM course_instructors ci
		JOIN users u ON u.id = ci.user_id
		ORDER BY ci.course_id, u.name
	`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error retrieving instructor roster: %w", err)
	}
	defer rows.Close()

	var roster []CourseInstructorRow
	for rows.Next() {
		var row CourseInstructorRow
		if err := rows.Scan(&row.CourseID, &row.Name, &row.Email); err != nil {
			return nil, fmt.Errorf("error scanning instructor row: %w", err)
		}
		roster = append(roster, row)
	}
	return roster, rows.Err()
}
