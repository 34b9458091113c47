package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/eduverse/eduverse/internal/app/models"
	"github.com/eduverse/eduverse/internal/app/models/dto"
	"github.com/eduverse/eduverse/internal/app/repositories"
	"github.com/eduverse/eduverse/internal/pkg/apperrors"
)

// lastMessagePreviewLen bounds the chat preview stored alongside each chat.
const lastMessagePreviewLen = 100

// MessageService defines the interface for direct-message operations
type MessageService interface {
	Create(ctx context.Context, sender *models.User, req *dto.CreateMessageRequest) (*models.Message, error)
	ListByChat(ctx context.Context, callerID, chatID int64) ([]*models.Message, error)
	Delete(ctx context.Context, callerID, messageID int64) error
}

type messageServiceImpl struct {
	messageRepo repositories.IMessageRepository
	chatRepo    repositories.IChatRepository
	userRepo    repositories.IUserRepository
	logger      zerolog.Logger
}

// NewMessageService creates a new MessageService
func NewMessageService(
	messageRepo repositories.IMessageRepository,
	chatRepo repositories.IChatRepository,
	userRepo repositories.IUserRepository,
	logger zerolog.Logger,
) MessageService {
	return &messageServiceImpl{
		messageRepo: messageRepo,
		chatRepo:    chatRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

func messagePreview(text string) string {
	runes := []rune(text)
	if len(runes) <= lastMessagePreviewLen {
		return text
	}
	return string(runes[:lastMessagePreviewLen])
}

// Create sends a direct message. When no chat id is given, the chat for the
// sender/receiver pair is found or created. The chat's preview and activity
// time are refreshed either way.
func (s *messageServiceImpl) Create(ctx context.Context, sender *models.User, req *dto.CreateMessageRequest) (*models.Message, error) {
	if req.ReceiverID == sender.ID {
		return nil, apperrors.NewBadRequestError("cannot message yourself")
	}

	receiver, err := s.userRepo.GetByID(ctx, req.ReceiverID)
	if err != nil {
		return nil, err
	}

	var chat *models.Chat
	if req.ChatID != nil {
		chat, err = s.chatRepo.GetByID(ctx, *req.ChatID)
		if err != nil {
			return nil, err
		}
		if !chat.HasParticipant(sender.ID) || !chat.HasParticipant(receiver.ID) {
			return nil, apperrors.ErrPermissionDenied
		}
	} else {
		chat, _, err = s.chatRepo.GetOrCreate(ctx,
			models.Sender{ID: sender.ID, Name: sender.Name, PhotoFileID: sender.ProfilePhotoFileID},
			models.Sender{ID: receiver.ID, Name: receiver.Name, PhotoFileID: receiver.ProfilePhotoFileID},
		)
		if err != nil {
			return nil, err
		}
	}

	attachments := req.AttachmentIDs
	if attachments == nil {
		attachments = []int64{}
	}

	message := &models.Message{
		SenderID:      sender.ID,
		ReceiverID:    receiver.ID,
		Text:          req.Text,
		AttachmentIDs: attachments,
		ReplyTo:       req.ReplyTo,
	}

	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	if err := s.chatRepo.UpdateLastMessage(ctx, chat.ID, messagePreview(message.Text)); err != nil {
		s.logger.Error().Err(err).Int64("chatId", chat.ID).Msg("Failed to update chat preview")
	}

	return message, nil
}

// ListByChat retrieves the conversation behind a chat oldest first,
// restricted to its participants. The messages themselves are looked up by
// participant pair.
func (s *messageServiceImpl) ListByChat(ctx context.Context, callerID, chatID int64) ([]*models.Message, error) {
	chat, err := s.chatRepo.GetByID(ctx, chatID)
	if err != nil {
		return nil, err
	}

	if !chat.HasParticipant(callerID) {
		return nil, apperrors.ErrPermissionDenied
	}

	return s.messageRepo.ListByPair(ctx, chat.User1.ID, chat.User2.ID)
}

// Delete removes a message, restricted to its sender
func (s *messageServiceImpl) Delete(ctx context.Context, callerID, messageID int64) error {
	message, err := s.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		return err
	}

	if message.SenderID != callerID {
		return apperrors.ErrPermissionDenied
	}

	return s.messageRepo.Delete(ctx, messageID)
}
