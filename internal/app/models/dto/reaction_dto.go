package dto

// UpsertReactionRequest represents an insert-or-update reaction request
type UpsertReactionRequest struct {
	PostID int64  `json:"postId" binding:"required" example:"7"`
	Type   string `json:"type" binding:"required,oneof=like love shocked laugh sad" example:"like"`
}

// ReactionSummaryResponse carries per-type counts for a post plus the
// requesting user's own reaction, if any. Every type is present, zero-valued
// when absent.
type ReactionSummaryResponse struct {
	Reactions    map[string]int64 `json:"reactions"`
	UserReaction *string          `json:"userReaction"`
}
