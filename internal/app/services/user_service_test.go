package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduverse/eduverse/internal/app/models"
	"github.com/eduverse/eduverse/internal/app/models/dto"
)

func newUserServiceForTest(users *fakeUserRepo, posts *fakePostRepo, courses *fakeCourseRepo) UserService {
	return NewUserService(users, posts, courses, NewReconciler(users, zerolog.Nop()), zerolog.Nop())
}

func strptr(s string) *string { return &s }

func TestUpdateProfileNameChangeTriggersFanOut(t *testing.T) {
	users := newFakeUserRepo(&models.User{ID: 1, Name: "Old", Email: "a@b.edu"})
	svc := newUserServiceForTest(users, newFakePostRepo(), newFakeCourseRepo())

	updated, err := svc.UpdateProfile(context.Background(), 1, &dto.UpdateProfileRequest{Name: strptr("New")})
	require.NoError(t, err)

	assert.Equal(t, "New", updated.Name)
	assert.True(t, users.fanOutCalled)
	assert.True(t, users.fanOutValue)
}

func TestUpdateProfilePhotoChangeTriggersFanOut(t *testing.T) {
	users := newFakeUserRepo(&models.User{ID: 1, Name: "Same", Email: "a@b.edu"})
	svc := newUserServiceForTest(users, newFakePostRepo(), newFakeCourseRepo())

	photo := int64(3)
	_, err := svc.UpdateProfile(context.Background(), 1, &dto.UpdateProfileRequest{ProfilePhotoFileID: &photo})
	require.NoError(t, err)

	assert.True(t, users.fanOutValue)
}

func TestUpdateProfileLevelOnlySkipsFanOut(t *testing.T) {
	users := newFakeUserRepo(&models.User{ID: 1, Name: "Same", Email: "a@b.edu"})
	svc := newUserServiceForTest(users, newFakePostRepo(), newFakeCourseRepo())

	updated, err := svc.UpdateProfile(context.Background(), 1, &dto.UpdateProfileRequest{Level: strptr("Senior")})
	require.NoError(t, err)

	assert.Equal(t, "Senior", updated.Level)
	assert.True(t, users.fanOutCalled)
	assert.False(t, users.fanOutValue)
}

func TestUpdateProfileSameNameSkipsFanOut(t *testing.T) {
	users := newFakeUserRepo(&models.User{ID: 1, Name: "Same", Email: "a@b.edu"})
	svc := newUserServiceForTest(users, newFakePostRepo(), newFakeCourseRepo())

	_, err := svc.UpdateProfile(context.Background(), 1, &dto.UpdateProfileRequest{Name: strptr("Same")})
	require.NoError(t, err)

	assert.False(t, users.fanOutValue)
}

func TestGetUserCoursesByRole(t *testing.T) {
	users := newFakeUserRepo(
		&models.User{ID: 1, Role: models.RoleInstructor},
		&models.User{ID: 2, Role: models.RoleStudent},
	)
	courses := newFakeCourseRepo(&models.Course{ID: "CS101", Capacity: 80})
	courses.instructors["CS101"] = []int64{1}
	courses.enrollments["CS101"] = []int64{2}

	svc := newUserServiceForTest(users, newFakePostRepo(), courses)

	taught, err := svc.GetUserCourses(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, taught, 1)
	assert.Equal(t, "CS101", taught[0].ID)

	enrolled, err := svc.GetUserCourses(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, enrolled, 1)
	assert.Equal(t, "CS101", enrolled[0].ID)
}

func TestSearchExcludesRequester(t *testing.T) {
	users := newFakeUserRepo(
		&models.User{ID: 1, Name: "Me"},
		&models.User{ID: 2, Name: "Other"},
	)
	svc := newUserServiceForTest(users, newFakePostRepo(), newFakeCourseRepo())

	results, err := svc.Search(context.Background(), 1, "", "", 50)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, int64(2), results[0].ID)
}

func TestGetUserPostsUnknownUser(t *testing.T) {
	svc := newUserServiceForTest(newFakeUserRepo(), newFakePostRepo(), newFakeCourseRepo())
	_, err := svc.GetUserPosts(context.Background(), 404)
	assert.Error(t, err)
}
