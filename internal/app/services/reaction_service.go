package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/eduverse/eduverse/internal/app/models"
	"github.com/eduverse/eduverse/internal/app/models/dto"
	"github.com/eduverse/eduverse/internal/app/repositories"
)

// ReactionService defines the interface for reaction operations
type ReactionService interface {
	Upsert(ctx context.Context, senderID int64, req *dto.UpsertReactionRequest) (*models.Reaction, error)
	Summary(ctx context.Context, postID int64, viewerID *int64) (*dto.ReactionSummaryResponse, error)
	Delete(ctx context.Context, senderID, postID int64) error
}

type reactionServiceImpl struct {
	reactionRepo repositories.IReactionRepository
	postRepo     repositories.IPostRepository
	logger       zerolog.Logger
}

// NewReactionService creates a new ReactionService
func NewReactionService(
	reactionRepo repositories.IReactionRepository,
	postRepo repositories.IPostRepository,
	logger zerolog.Logger,
) ReactionService {
	return &reactionServiceImpl{
		reactionRepo: reactionRepo,
		postRepo:     postRepo,
		logger:       logger,
	}
}

// Upsert records the caller's reaction on a post, replacing any previous
// reaction of theirs in one atomic write
func (s *reactionServiceImpl) Upsert(ctx context.Context, senderID int64, req *dto.UpsertReactionRequest) (*models.Reaction, error) {
	if _, err := s.postRepo.GetByID(ctx, req.PostID); err != nil {
		return nil, err
	}

	reaction := &models.Reaction{
		PostID:   req.PostID,
		SenderID: senderID,
		Type:     models.ReactionType(req.Type),
	}

	if err := s.reactionRepo.Upsert(ctx, reaction); err != nil {
		return nil, err
	}
	return reaction, nil
}

// Summary returns per-type counts for a post. Every known type appears,
// zero-valued when no such reaction exists.
func (s *reactionServiceImpl) Summary(ctx context.Context, postID int64, viewerID *int64) (*dto.ReactionSummaryResponse, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	counts, err := s.reactionRepo.SummaryByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	reactions := make(map[string]int64, len(models.ReactionTypes))
	for _, t := range models.ReactionTypes {
		reactions[string(t)] = counts[t]
	}

	var userReaction *string
	if viewerID != nil {
		reaction, err := s.reactionRepo.GetByPostAndSender(ctx, postID, *viewerID)
		if err == nil {
			value := string(reaction.Type)
			userReaction = &value
		}
	}

	return &dto.ReactionSummaryResponse{
		Reactions:    reactions,
		UserReaction: userReaction,
	}, nil
}

// Delete removes the caller's reaction from a post
func (s *reactionServiceImpl) Delete(ctx context.Context, senderID, postID int64) error {
	return s.reactionRepo.Delete(ctx, postID, senderID)
}
