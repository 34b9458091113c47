package services

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduverse/eduverse/internal/app/models"
	"github.com/eduverse/eduverse/internal/app/models/dto"
	"github.com/eduverse/eduverse/internal/pkg/apperrors"
)

func newChatServiceForTest(users *fakeUserRepo, chats *fakeChatRepo) ChatService {
	return NewChatService(chats, users, NewReconciler(users, zerolog.Nop()), zerolog.Nop())
}

func TestChatGetOrCreateReusesPair(t *testing.T) {
	users := newFakeUserRepo(
		&models.User{ID: 1, Name: "Alice"},
		&models.User{ID: 2, Name: "Bob"},
	)
	chats := newFakeChatRepo()
	svc := newChatServiceForTest(users, chats)
	ctx := context.Background()

	alice := users.users[1]
	bob := users.users[2]

	first, created, err := svc.GetOrCreate(ctx, alice, 2)
	require.NoError(t, err)
	assert.True(t, created)

	// Same pair from the other side returns the existing chat.
	second, created, err := svc.GetOrCreate(ctx, bob, 1)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
}

func TestChatWithSelfRejected(t *testing.T) {
	users := newFakeUserRepo(&models.User{ID: 1, Name: "Alice"})
	svc := newChatServiceForTest(users, newFakeChatRepo())

	_, _, err := svc.GetOrCreate(context.Background(), users.users[1], 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestChatWithUnknownUser(t *testing.T) {
	users := newFakeUserRepo(&models.User{ID: 1, Name: "Alice"})
	svc := newChatServiceForTest(users, newFakeChatRepo())

	_, _, err := svc.GetOrCreate(context.Background(), users.users[1], 404)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestChatGetByIDParticipantsOnly(t *testing.T) {
	users := newFakeUserRepo(
		&models.User{ID: 1, Name: "Alice"},
		&models.User{ID: 2, Name: "Bob"},
	)
	chats := newFakeChatRepo(&models.Chat{
		ID:    5,
		User1: models.Sender{ID: 1, Name: "Alice"},
		User2: models.Sender{ID: 2, Name: "Bob"},
	})
	svc := newChatServiceForTest(users, chats)

	_, err := svc.GetByID(context.Background(), 3, 5)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	chat, err := svc.GetByID(context.Background(), 1, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), chat.ID)
}

func TestMessageCreateWithoutChatIDFindsPairChat(t *testing.T) {
	users := newFakeUserRepo(
		&models.User{ID: 1, Name: "Alice"},
		&models.User{ID: 2, Name: "Bob"},
	)
	chats := newFakeChatRepo()
	messages := newFakeMessageRepo()
	svc := NewMessageService(messages, chats, users, zerolog.Nop())
	ctx := context.Background()

	msg, err := svc.Create(ctx, users.users[1], &dto.CreateMessageRequest{
		ReceiverID: 2,
		Text:       "hello there",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), msg.SenderID)

	// The pair chat now exists and carries the preview.
	chat, err := chats.GetByPair(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, "hello there", chat.LastMessage)

	// A second message reuses the same chat.
	_, err = svc.Create(ctx, users.users[2], &dto.CreateMessageRequest{ReceiverID: 1, Text: "hi"})
	require.NoError(t, err)
	assert.Len(t, chats.chats, 1)
}

func TestMessagePreviewTruncatedTo100Chars(t *testing.T) {
	users := newFakeUserRepo(
		&models.User{ID: 1, Name: "Alice"},
		&models.User{ID: 2, Name: "Bob"},
	)
	chats := newFakeChatRepo()
	svc := NewMessageService(newFakeMessageRepo(), chats, users, zerolog.Nop())

	long := strings.Repeat("x", 250)
	_, err := svc.Create(context.Background(), users.users[1], &dto.CreateMessageRequest{
		ReceiverID: 2,
		Text:       long,
	})
	require.NoError(t, err)

	assert.Len(t, chats.lastPreview, 100)
}

func TestMessageToSelfRejected(t *testing.T) {
	users := newFakeUserRepo(&models.User{ID: 1, Name: "Alice"})
	svc := NewMessageService(newFakeMessageRepo(), newFakeChatRepo(), users, zerolog.Nop())

	_, err := svc.Create(context.Background(), users.users[1], &dto.CreateMessageRequest{ReceiverID: 1, Text: "hi"})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestMessageDeleteSenderOnly(t *testing.T) {
	messages := newFakeMessageRepo(&models.Message{ID: 9, SenderID: 1, ReceiverID: 2})
	svc := NewMessageService(messages, newFakeChatRepo(), newFakeUserRepo(), zerolog.Nop())

	assert.ErrorIs(t, svc.Delete(context.Background(), 2, 9), apperrors.ErrPermissionDenied)
	require.NoError(t, svc.Delete(context.Background(), 1, 9))
}

func TestMessageListRequiresParticipant(t *testing.T) {
	chats := newFakeChatRepo(&models.Chat{
		ID:    5,
		User1: models.Sender{ID: 1},
		User2: models.Sender{ID: 2},
	})
	svc := NewMessageService(newFakeMessageRepo(), chats, newFakeUserRepo(), zerolog.Nop())

	_, err := svc.ListByChat(context.Background(), 3, 5)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}
