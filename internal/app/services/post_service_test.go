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

func newPostServiceForTest(users *fakeUserRepo, posts *fakePostRepo, comments *fakeCommentRepo, reactions *fakeReactionRepo) PostService {
	return NewPostService(posts, comments, reactions, NewReconciler(users, zerolog.Nop()), zerolog.Nop())
}

func TestPostCreateDefaultsToDiscussion(t *testing.T) {
	posts := newFakePostRepo()
	svc := newPostServiceForTest(newFakeUserRepo(), posts, newFakeCommentRepo(), newFakeReactionRepo())
	sender := &models.User{ID: 1, Name: "Alice"}

	post, err := svc.Create(context.Background(), sender, &dto.CreatePostRequest{
		CourseID: "CS101", Title: "Hello", Body: "First post",
	})
	require.NoError(t, err)

	assert.Equal(t, models.PostTypeDiscussion, post.Type)
	assert.Equal(t, "Alice", post.Sender.Name)
	assert.NotNil(t, post.AttachmentIDs)
}

func TestPostDetailEnumeratesAllReactionTypes(t *testing.T) {
	users := newFakeUserRepo(&models.User{ID: 1, Name: "Alice"})
	posts := newFakePostRepo(&models.Post{ID: 7, Sender: models.Sender{ID: 1, Name: "Alice"}})
	reactions := newFakeReactionRepo()
	require.NoError(t, reactions.Upsert(context.Background(), &models.Reaction{PostID: 7, SenderID: 2, Type: models.ReactionLike}))

	svc := newPostServiceForTest(users, posts, newFakeCommentRepo(), reactions)

	detail, err := svc.GetDetail(context.Background(), 7, nil)
	require.NoError(t, err)

	require.Len(t, detail.Reactions, len(models.ReactionTypes))
	assert.Equal(t, int64(1), detail.Reactions["like"])
	assert.Equal(t, int64(0), detail.Reactions["sad"])
	assert.Nil(t, detail.UserReaction)
	assert.NotNil(t, detail.Comments)
}

func TestPostDetailIncludesViewerReaction(t *testing.T) {
	users := newFakeUserRepo(&models.User{ID: 1, Name: "Alice"})
	posts := newFakePostRepo(&models.Post{ID: 7, Sender: models.Sender{ID: 1, Name: "Alice"}})
	reactions := newFakeReactionRepo()
	require.NoError(t, reactions.Upsert(context.Background(), &models.Reaction{PostID: 7, SenderID: 5, Type: models.ReactionLove}))

	svc := newPostServiceForTest(users, posts, newFakeCommentRepo(), reactions)

	viewer := int64(5)
	detail, err := svc.GetDetail(context.Background(), 7, &viewer)
	require.NoError(t, err)

	require.NotNil(t, detail.UserReaction)
	assert.Equal(t, "love", *detail.UserReaction)
}

func TestPostUpdateOwnerOnly(t *testing.T) {
	posts := newFakePostRepo(&models.Post{ID: 7, Sender: models.Sender{ID: 1}})
	svc := newPostServiceForTest(newFakeUserRepo(), posts, newFakeCommentRepo(), newFakeReactionRepo())

	_, err := svc.Update(context.Background(), 2, 7, &dto.UpdatePostRequest{Title: strptr("X")})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	updated, err := svc.Update(context.Background(), 1, 7, &dto.UpdatePostRequest{Title: strptr("New title")})
	require.NoError(t, err)
	assert.Equal(t, "New title", updated.Title)
}

func TestPostDeleteAuthorOrAdmin(t *testing.T) {
	posts := newFakePostRepo(&models.Post{ID: 7, Sender: models.Sender{ID: 1}})
	svc := newPostServiceForTest(newFakeUserRepo(), posts, newFakeCommentRepo(), newFakeReactionRepo())

	stranger := &models.User{ID: 3, Role: models.RoleStudent}
	assert.ErrorIs(t, svc.Delete(context.Background(), stranger, 7), apperrors.ErrPermissionDenied)

	admin := &models.User{ID: 3, Role: models.RoleAdmin}
	require.NoError(t, svc.Delete(context.Background(), admin, 7))

	_, err := posts.GetByID(context.Background(), 7)
	assert.ErrorIs(t, err, apperrors.ErrPostNotFound)
}

func TestPostListCapsLimit(t *testing.T) {
	posts := newFakePostRepo()
	svc := newPostServiceForTest(newFakeUserRepo(), posts, newFakeCommentRepo(), newFakeReactionRepo())

	_, err := svc.List(context.Background(), dto.PostFilter{Limit: 5000})
	require.NoError(t, err)
}
