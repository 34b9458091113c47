package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/eduverse/eduverse/internal/app/models"
	"github.com/eduverse/eduverse/internal/app/repositories"
	"github.com/eduverse/eduverse/internal/pkg/apperrors"
)

// ChatService defines the interface for chat operations
type ChatService interface {
	GetOrCreate(ctx context.Context, caller *models.User, otherUserID int64) (*models.Chat, bool, error)
	GetByID(ctx context.Context, callerID, chatID int64) (*models.Chat, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.Chat, error)
}

type chatServiceImpl struct {
	chatRepo   repositories.IChatRepository
	userRepo   repositories.IUserRepository
	reconciler *Reconciler
	logger     zerolog.Logger
}

// NewChatService creates a new ChatService
func NewChatService(
	chatRepo repositories.IChatRepository,
	userRepo repositories.IUserRepository,
	reconciler *Reconciler,
	logger zerolog.Logger,
) ChatService {
	return &chatServiceImpl{
		chatRepo:   chatRepo,
		userRepo:   userRepo,
		reconciler: reconciler,
		logger:     logger,
	}
}

// GetOrCreate returns the chat between the caller and another user, creating
// it if the pair has never talked. The second return value reports whether a
// new chat was created.
func (s *chatServiceImpl) GetOrCreate(ctx context.Context, caller *models.User, otherUserID int64) (*models.Chat, bool, error) {
	if otherUserID == caller.ID {
		return nil, false, apperrors.NewBadRequestError("cannot start a chat with yourself")
	}

	other, err := s.userRepo.GetByID(ctx, otherUserID)
	if err != nil {
		return nil, false, err
	}

	chat, created, err := s.chatRepo.GetOrCreate(ctx,
		models.Sender{ID: caller.ID, Name: caller.Name, PhotoFileID: caller.ProfilePhotoFileID},
		models.Sender{ID: other.ID, Name: other.Name, PhotoFileID: other.ProfilePhotoFileID},
	)
	if err != nil {
		return nil, false, err
	}

	if err := s.reconciler.ReconcileChat(ctx, chat); err != nil {
		return nil, false, err
	}

	if created {
		s.logger.Info().Int64("chatId", chat.ID).Msg("Chat created")
	}
	return chat, created, nil
}

// GetByID retrieves a chat, restricted to its participants
func (s *chatServiceImpl) GetByID(ctx context.Context, callerID, chatID int64) (*models.Chat, error) {
	chat, err := s.chatRepo.GetByID(ctx, chatID)
	if err != nil {
		return nil, err
	}

	if !chat.HasParticipant(callerID) {
		return nil, apperrors.ErrPermissionDenied
	}

	if err := s.reconciler.ReconcileChat(ctx, chat); err != nil {
		return nil, err
	}
	return chat, nil
}

// ListByUser retrieves the caller's chats, most recently active first
func (s *chatServiceImpl) ListByUser(ctx context.Context, userID int64) ([]*models.Chat, error) {
	chats, err := s.chatRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.reconciler.ReconcileChats(ctx, chats); err != nil {
		return nil, err
	}
	return chats, nil
}
