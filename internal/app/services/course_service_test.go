package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduverse/eduverse/internal/app/models"
	"github.com/eduverse/eduverse/internal/app/models/dto"
	"github.com/eduverse/eduverse/internal/pkg/apperrors"
)

func TestCourseCreateDefaultsCapacity(t *testing.T) {
	repo := newFakeCourseRepo()
	svc := NewCourseService(repo, zerolog.Nop())
	instructor := &models.User{ID: 1, Name: "Dr. Ada", Email: "ada@university.edu", Role: models.RoleInstructor}

	course, err := svc.Create(context.Background(), instructor, &dto.CreateCourseRequest{
		ID: "cs101", Name: "Intro", CreditHours: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, "CS101", course.ID)
	assert.Equal(t, models.DefaultCourseCapacity, course.Capacity)
	require.Len(t, course.Instructors, 1)
	assert.Equal(t, int64(1), course.Instructors[0].ID)
}

func TestEnrollmentLifecycle(t *testing.T) {
	repo := newFakeCourseRepo(&models.Course{ID: "CS101", Capacity: 1})
	svc := NewCourseService(repo, zerolog.Nop())
	ctx := context.Background()

	course, err := svc.Enroll(ctx, 10, "CS101")
	require.NoError(t, err)
	assert.Equal(t, 1, course.Enrolled)

	// Same user again.
	_, err = svc.Enroll(ctx, 10, "CS101")
	assert.ErrorIs(t, err, apperrors.ErrAlreadyEnrolled)

	// Capacity reached for a different user.
	_, err = svc.Enroll(ctx, 11, "CS101")
	assert.ErrorIs(t, err, apperrors.ErrCourseFull)

	course, err = svc.Unenroll(ctx, 10, "CS101")
	require.NoError(t, err)
	assert.Equal(t, 0, course.Enrolled)

	_, err = svc.Unenroll(ctx, 10, "CS101")
	assert.ErrorIs(t, err, apperrors.ErrNotEnrolled)
}

func TestEnrollUnknownCourse(t *testing.T) {
	svc := NewCourseService(newFakeCourseRepo(), zerolog.Nop())
	_, err := svc.Enroll(context.Background(), 10, "NOPE99")
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestCourseUpdateRequiresCourseInstructor(t *testing.T) {
	repo := newFakeCourseRepo(&models.Course{ID: "CS101", Capacity: 80})
	repo.instructors["CS101"] = []int64{1}
	svc := NewCourseService(repo, zerolog.Nop())

	outsider := &models.User{ID: 2, Role: models.RoleInstructor}
	_, err := svc.Update(context.Background(), outsider, "CS101", &dto.UpdateCourseRequest{Name: strptr("X")})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	owner := &models.User{ID: 1, Role: models.RoleInstructor}
	updated, err := svc.Update(context.Background(), owner, "CS101", &dto.UpdateCourseRequest{Name: strptr("Renamed")})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
}

func TestCourseDeleteAdminBypass(t *testing.T) {
	repo := newFakeCourseRepo(&models.Course{ID: "CS101", Capacity: 80})
	repo.instructors["CS101"] = []int64{1}
	svc := NewCourseService(repo, zerolog.Nop())

	admin := &models.User{ID: 99, Role: models.RoleAdmin}
	require.NoError(t, svc.Delete(context.Background(), admin, "CS101"))

	_, err := repo.GetByID(context.Background(), "CS101")
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}
