package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/eduverse/eduverse/internal/app/models"
	"github.com/eduverse/eduverse/internal/app/models/dto"
	"github.com/eduverse/eduverse/internal/app/repositories"
	"github.com/eduverse/eduverse/internal/pkg/apperrors"
)

// CourseService defines the interface for course operations
type CourseService interface {
	Create(ctx context.Context, instructor *models.User, req *dto.CreateCourseRequest) (*models.Course, error)
	GetByID(ctx context.Context, id string) (*models.Course, error)
	List(ctx context.Context) ([]*models.Course, error)
	ListEnrolled(ctx context.Context, userID int64) ([]*models.Course, error)
	Update(ctx context.Context, caller *models.User, id string, req *dto.UpdateCourseRequest) (*models.Course, error)
	Delete(ctx context.Context, caller *models.User, id string) error
	Enroll(ctx context.Context, userID int64, courseID string) (*models.Course, error)
	Unenroll(ctx context.Context, userID int64, courseID string) (*models.Course, error)
}

type courseServiceImpl struct {
	courseRepo repositories.ICourseRepository
	logger     zerolog.Logger
}

// NewCourseService creates a new CourseService
func NewCourseService(courseRepo repositories.ICourseRepository, logger zerolog.Logger) CourseService {
	return &courseServiceImpl{courseRepo: courseRepo, logger: logger}
}

// Create registers a new course with the caller as its instructor
func (s *courseServiceImpl) Create(ctx context.Context, instructor *models.User, req *dto.CreateCourseRequest) (*models.Course, error) {
	capacity := req.Capacity
	if capacity <= 0 {
		capacity = models.DefaultCourseCapacity
	}

	course := &models.Course{
		ID:          strings.ToUpper(strings.TrimSpace(req.ID)),
		Name:        req.Name,
		Description: req.Description,
		CreditHours: req.CreditHours,
		Capacity:    capacity,
	}

	if err := s.courseRepo.Create(ctx, course, instructor.ID); err != nil {
		return nil, err
	}

	course.Instructors = []models.CourseInstructor{{
		ID:    instructor.ID,
		Name:  instructor.Name,
		Email: instructor.Email,
	}}

	s.logger.Info().Str("courseId", course.ID).Int64("instructorId", instructor.ID).Msg("Course created")
	return course, nil
}

// GetByID retrieves a course with its instructors
func (s *courseServiceImpl) GetByID(ctx context.Context, id string) (*models.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

// List retrieves all courses
func (s *courseServiceImpl) List(ctx context.Context) ([]*models.Course, error) {
	return s.courseRepo.List(ctx)
}

// ListEnrolled retrieves the caller's enrolled courses
func (s *courseServiceImpl) ListEnrolled(ctx context.Context, userID int64) ([]*models.Course, error) {
	return s.courseRepo.ListEnrolled(ctx, userID)
}

// requireCourseInstructor rejects callers who neither teach the course nor
// hold the admin role
func (s *courseServiceImpl) requireCourseInstructor(ctx context.Context, caller *models.User, courseID string) error {
	if caller.Role == models.RoleAdmin {
		return nil
	}

	teaches, err := s.courseRepo.IsInstructor(ctx, courseID, caller.ID)
	if err != nil {
		return err
	}
	if !teaches {
		return apperrors.ErrPermissionDenied
	}
	return nil
}

// Update modifies course fields, restricted to the course's instructors
func (s *courseServiceImpl) Update(ctx context.Context, caller *models.User, id string, req *dto.UpdateCourseRequest) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.requireCourseInstructor(ctx, caller, id); err != nil {
		return nil, err
	}

	if req.Name != nil {
		course.Name = *req.Name
	}
	if req.Description != nil {
		course.Description = *req.Description
	}
	if req.CreditHours != nil {
		course.CreditHours = *req.CreditHours
	}
	if req.Capacity != nil {
		course.Capacity = *req.Capacity
	}

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// Delete removes a course, restricted to the course's instructors. Posts and
// files referencing the course are intentionally kept; reports surface them
// under an unknown-course bucket.
func (s *courseServiceImpl) Delete(ctx context.Context, caller *models.User, id string) error {
	if _, err := s.courseRepo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.requireCourseInstructor(ctx, caller, id); err != nil {
		return err
	}

	if err := s.courseRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("courseId", id).Int64("callerId", caller.ID).Msg("Course deleted")
	return nil
}

// Enroll adds the caller to a course if a seat is available
func (s *courseServiceImpl) Enroll(ctx context.Context, userID int64, courseID string) (*models.Course, error) {
	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		return nil, err
	}

	if err := s.courseRepo.Enroll(ctx, courseID, userID); err != nil {
		return nil, err
	}

	return s.courseRepo.GetByID(ctx, courseID)
}

// Unenroll removes the caller's enrollment
func (s *courseServiceImpl) Unenroll(ctx context.Context, userID int64, courseID string) (*models.Course, error) {
	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		return nil, err
	}

	if err := s.courseRepo.Unenroll(ctx, courseID, userID); err != nil {
		return nil, err
	}

	return s.courseRepo.GetByID(ctx, courseID)
}
