package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/eduverse/eduverse/internal/app/models"
	"github.com/eduverse/eduverse/internal/app/models/dto"
	"github.com/eduverse/eduverse/internal/app/repositories"
	"github.com/eduverse/eduverse/internal/pkg/apperrors"
	"github.com/eduverse/eduverse/internal/pkg/helpers"
)

// PostService defines the interface for post operations
type PostService interface {
	Create(ctx context.Context, sender *models.User, req *dto.CreatePostRequest) (*models.Post, error)
	GetDetail(ctx context.Context, id int64, viewerID *int64) (*dto.PostDetailResponse, error)
	List(ctx context.Context, filter dto.PostFilter) ([]*models.Post, error)
	Update(ctx context.Context, callerID, id int64, req *dto.UpdatePostRequest) (*models.Post, error)
	Delete(ctx context.Context, caller *models.User, id int64) error
}

type postServiceImpl struct {
	postRepo     repositories.IPostRepository
	commentRepo  repositories.ICommentRepository
	reactionRepo repositories.IReactionRepository
	reconciler   *Reconciler
	logger       zerolog.Logger
}

// NewPostService creates a new PostService
func NewPostService(
	postRepo repositories.IPostRepository,
	commentRepo repositories.ICommentRepository,
	reactionRepo repositories.IReactionRepository,
	reconciler *Reconciler,
	logger zerolog.Logger,
) PostService {
	return &postServiceImpl{
		postRepo:     postRepo,
		commentRepo:  commentRepo,
		reactionRepo: reactionRepo,
		reconciler:   reconciler,
		logger:       logger,
	}
}

// Create publishes a new post carrying the sender's current identity snapshot
func (s *postServiceImpl) Create(ctx context.Context, sender *models.User, req *dto.CreatePostRequest) (*models.Post, error) {
	postType := models.PostTypeDiscussion
	if req.Type != "" {
		postType = models.PostType(req.Type)
	}

	attachments := req.AttachmentIDs
	if attachments == nil {
		attachments = []int64{}
	}

	post := &models.Post{
		Sender: models.Sender{
			ID:          sender.ID,
			Name:        sender.Name,
			PhotoFileID: sender.ProfilePhotoFileID,
		},
		CourseID:      req.CourseID,
		Title:         req.Title,
		Body:          req.Body,
		Type:          postType,
		AttachmentIDs: attachments,
		Deadline:      req.Deadline,
		EventDate:     req.EventDate,
		EventLocation: req.EventLocation,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("postId", post.ID).Str("courseId", post.CourseID).Msg("Post created")
	return post, nil
}

// GetDetail retrieves a post with its comments and reaction summary. The
// summary always enumerates every reaction type, zero counts included.
func (s *postServiceImpl) GetDetail(ctx context.Context, id int64, viewerID *int64) (*dto.PostDetailResponse, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByPost(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.reconciler.ReconcilePostsAndComments(ctx, []*models.Post{post}, comments); err != nil {
		return nil, err
	}

	summary, err := s.reactionRepo.SummaryByPost(ctx, id)
	if err != nil {
		return nil, err
	}

	reactions := make(map[string]int64, len(models.ReactionTypes))
	for _, t := range models.ReactionTypes {
		reactions[string(t)] = summary[t]
	}

	var userReaction *string
	if viewerID != nil {
		reaction, err := s.reactionRepo.GetByPostAndSender(ctx, id, *viewerID)
		if err == nil {
			value := string(reaction.Type)
			userReaction = &value
		}
	}

	if comments == nil {
		comments = []*models.Comment{}
	}

	return &dto.PostDetailResponse{
		Post:         post,
		Comments:     comments,
		Reactions:    reactions,
		UserReaction: userReaction,
	}, nil
}

// List retrieves posts newest first with refreshed sender snapshots
func (s *postServiceImpl) List(ctx context.Context, filter dto.PostFilter) ([]*models.Post, error) {
	if filter.Limit <= 0 {
		filter.Limit = helpers.DefaultPageSize
	}
	if filter.Limit > helpers.MaxPageSize {
		filter.Limit = helpers.MaxPageSize
	}
	if filter.Skip < 0 {
		filter.Skip = 0
	}

	posts, err := s.postRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	if err := s.reconciler.ReconcilePosts(ctx, posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// Update modifies a post, restricted to its author
func (s *postServiceImpl) Update(ctx context.Context, callerID, id int64, req *dto.UpdatePostRequest) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if post.Sender.ID != callerID {
		return nil, apperrors.ErrPermissionDenied
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Body != nil {
		post.Body = *req.Body
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes a post together with its comments and reactions. Authors
// delete their own posts; admins may delete any.
func (s *postServiceImpl) Delete(ctx context.Context, caller *models.User, id int64) error {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if post.Sender.ID != caller.ID && caller.Role != models.RoleAdmin {
		return apperrors.ErrPermissionDenied
	}

	if err := s.postRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("postId", id).Int64("callerId", caller.ID).Msg("Post deleted")
	return nil
}
