package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/eduverse/eduverse/internal/app/models"
	"github.com/eduverse/eduverse/internal/app/repositories"
)

// Reconciler overlays current identity data onto the denormalized sender
// snapshots carried by posts, comments and chats. The overlay happens at read
// time only and is never written back; a sender whose identity record is gone
// keeps its stored snapshot.
type Reconciler struct {
	userRepo repositories.IUserRepository
	logger   zerolog.Logger
}

// NewReconciler creates a new Reconciler
func NewReconciler(userRepo repositories.IUserRepository, logger zerolog.Logger) *Reconciler {
	return &Reconciler{userRepo: userRepo, logger: logger}
}

func (r *Reconciler) overlay(sender *models.Sender, users map[int64]*models.User) {
	if user, ok := users[sender.ID]; ok {
		sender.Name = user.Name
		sender.PhotoFileID = user.ProfilePhotoFileID
	}
}

func (r *Reconciler) fetch(ctx context.Context, idSet map[int64]struct{}) (map[int64]*models.User, error) {
	ids := make([]int64, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}
	return r.userRepo.GetByIDs(ctx, ids)
}

// ReconcilePosts refreshes the sender snapshots of a post list
func (r *Reconciler) ReconcilePosts(ctx context.Context, posts []*models.Post) error {
	return r.ReconcilePostsAndComments(ctx, posts, nil)
}

// ReconcilePostsAndComments refreshes post and comment snapshots with a
// single identity lookup
func (r *Reconciler) ReconcilePostsAndComments(ctx context.Context, posts []*models.Post, comments []*models.Comment) error {
	if len(posts) == 0 && len(comments) == 0 {
		return nil
	}

	idSet := make(map[int64]struct{})
	for _, post := range posts {
		idSet[post.Sender.ID] = struct{}{}
	}
	for _, comment := range comments {
		idSet[comment.Sender.ID] = struct{}{}
	}

	users, err := r.fetch(ctx, idSet)
	if err != nil {
		return err
	}

	for _, post := range posts {
		r.overlay(&post.Sender, users)
	}
	for _, comment := range comments {
		r.overlay(&comment.Sender, users)
	}
	return nil
}

// ReconcileComments refreshes the sender snapshots of a comment list
func (r *Reconciler) ReconcileComments(ctx context.Context, comments []*models.Comment) error {
	return r.ReconcilePostsAndComments(ctx, nil, comments)
}

// ReconcileChats refreshes both participant snapshots of a chat list
func (r *Reconciler) ReconcileChats(ctx context.Context, chats []*models.Chat) error {
	if len(chats) == 0 {
		return nil
	}

	idSet := make(map[int64]struct{})
	for _, chat := range chats {
		idSet[chat.User1.ID] = struct{}{}
		idSet[chat.User2.ID] = struct{}{}
	}

	users, err := r.fetch(ctx, idSet)
	if err != nil {
		return err
	}

	for _, chat := range chats {
		r.overlay(&chat.User1, users)
		r.overlay(&chat.User2, users)
	}
	return nil
}

// ReconcileChat refreshes a single chat
func (r *Reconciler) ReconcileChat(ctx context.Context, chat *models.Chat) error {
	return r.ReconcileChats(ctx, []*models.Chat{chat})
}
