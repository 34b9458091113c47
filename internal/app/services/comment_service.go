package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/eduverse/eduverse/internal/app/models"
	"github.com/eduverse/eduverse/internal/app/models/dto"
	"github.com/eduverse/eduverse/internal/app/repositories"
	"github.com/eduverse/eduverse/internal/pkg/apperrors"
)

// CommentService defines the interface for comment operations
type CommentService interface {
	Create(ctx context.Context, sender *models.User, req *dto.CreateCommentRequest) (*models.Comment, error)
	ListByPost(ctx context.Context, postID int64) ([]*models.Comment, error)
	Delete(ctx context.Context, caller *models.User, id int64) error
}

type commentServiceImpl struct {
	commentRepo repositories.ICommentRepository
	postRepo    repositories.IPostRepository
	reconciler  *Reconciler
	logger      zerolog.Logger
}

// NewCommentService creates a new CommentService
func NewCommentService(
	commentRepo repositories.ICommentRepository,
	postRepo repositories.IPostRepository,
	reconciler *Reconciler,
	logger zerolog.Logger,
) CommentService {
	return &commentServiceImpl{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		reconciler:  reconciler,
		logger:      logger,
	}
}

// Create adds a comment to a post, carrying the sender's identity snapshot
func (s *commentServiceImpl) Create(ctx context.Context, sender *models.User, req *dto.CreateCommentRequest) (*models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, req.PostID); err != nil {
		return nil, err
	}

	if req.ParentCommentID != nil {
		parent, err := s.commentRepo.GetByID(ctx, *req.ParentCommentID)
		if err != nil {
			return nil, err
		}
		if parent.PostID != req.PostID {
			return nil, apperrors.NewBadRequestError("parent comment belongs to a different post")
		}
	}

	comment := &models.Comment{
		PostID:          req.PostID,
		ParentCommentID: req.ParentCommentID,
		Sender: models.Sender{
			ID:          sender.ID,
			Name:        sender.Name,
			PhotoFileID: sender.ProfilePhotoFileID,
		},
		Body: req.Body,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("commentId", comment.ID).Int64("postId", comment.PostID).Msg("Comment created")
	return comment, nil
}

// ListByPost retrieves a post's comments oldest first with refreshed
// sender snapshots
func (s *commentServiceImpl) ListByPost(ctx context.Context, postID int64) ([]*models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	if err := s.reconciler.ReconcileComments(ctx, comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// Delete removes a comment. Authors delete their own; admins may delete any.
func (s *commentServiceImpl) Delete(ctx context.Context, caller *models.User, id int64) error {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if comment.Sender.ID != caller.ID && caller.Role != models.RoleAdmin {
		return apperrors.ErrPermissionDenied
	}

	return s.commentRepo.Delete(ctx, id)
}
