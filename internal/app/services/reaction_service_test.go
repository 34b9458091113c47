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

func newReactionServiceForTest(posts *fakePostRepo, reactions *fakeReactionRepo) ReactionService {
	return NewReactionService(reactions, posts, zerolog.Nop())
}

func TestReactionUpsertLastWriteWins(t *testing.T) {
	posts := newFakePostRepo(&models.Post{ID: 7, Sender: models.Sender{ID: 1}})
	reactions := newFakeReactionRepo()
	svc := newReactionServiceForTest(posts, reactions)
	ctx := context.Background()

	first, err := svc.Upsert(ctx, 5, &dto.UpsertReactionRequest{PostID: 7, Type: "like"})
	require.NoError(t, err)

	second, err := svc.Upsert(ctx, 5, &dto.UpsertReactionRequest{PostID: 7, Type: "love"})
	require.NoError(t, err)

	// Same row, new type; no second reaction appears.
	assert.Equal(t, first.ID, second.ID)

	summary, err := svc.Summary(ctx, 7, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), summary.Reactions["like"])
	assert.Equal(t, int64(1), summary.Reactions["love"])
}

func TestReactionUpsertUnknownPost(t *testing.T) {
	svc := newReactionServiceForTest(newFakePostRepo(), newFakeReactionRepo())
	_, err := svc.Upsert(context.Background(), 5, &dto.UpsertReactionRequest{PostID: 404, Type: "like"})
	assert.ErrorIs(t, err, apperrors.ErrPostNotFound)
}

func TestReactionSummaryZeroFilled(t *testing.T) {
	posts := newFakePostRepo(&models.Post{ID: 7, Sender: models.Sender{ID: 1}})
	svc := newReactionServiceForTest(posts, newFakeReactionRepo())

	summary, err := svc.Summary(context.Background(), 7, nil)
	require.NoError(t, err)

	require.Len(t, summary.Reactions, len(models.ReactionTypes))
	for _, reactionType := range models.ReactionTypes {
		assert.Equal(t, int64(0), summary.Reactions[string(reactionType)])
	}
}

func TestReactionDelete(t *testing.T) {
	posts := newFakePostRepo(&models.Post{ID: 7, Sender: models.Sender{ID: 1}})
	reactions := newFakeReactionRepo()
	svc := newReactionServiceForTest(posts, reactions)
	ctx := context.Background()

	_, err := svc.Upsert(ctx, 5, &dto.UpsertReactionRequest{PostID: 7, Type: "like"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, 5, 7))
	assert.ErrorIs(t, svc.Delete(ctx, 5, 7), apperrors.ErrReactionNotFound)
}
