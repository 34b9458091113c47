package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/eduverse/eduverse/internal/app/models/dto"
	"github.com/eduverse/eduverse/internal/app/services"
	"github.com/eduverse/eduverse/internal/middleware"
)

// ReactionController handles reaction operations
type ReactionController struct {
	reactionService services.ReactionService
	logger          zerolog.Logger
}

// NewReactionController creates a new ReactionController
func NewReactionController(reactionService services.ReactionService, logger zerolog.Logger) *ReactionController {
	return &ReactionController{reactionService: reactionService, logger: logger}
}

// Upsert sets the caller's reaction on a post
// @Summary React to a post
// @Description Inserts the caller's reaction or replaces their previous one.
// A user holds at most one reaction per post.
// @Tags reactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpsertReactionRequest true "Reaction data"
// @Success 200 {object} dto.APIResponse{data=models.Reaction}
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Router /reactions [post]
func (c *ReactionController) Upsert(ctx *gin.Context) {
	var req dto.UpsertReactionRequest
	if !bindJSON(ctx, &req) {
		return
	}

	reaction, err := c.reactionService.Upsert(ctx.Request.Context(), middleware.CallerID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(reaction))
}

// Summary returns the per-type reaction counts of a post
// @Summary Get a post's reaction summary
// @Description Every reaction type is present in the counts, zero when
// unused. The caller's own reaction is included when authenticated.
// @Tags reactions
// @Produce json
// @Param postId query int true "Post ID"
// @Success 200 {object} dto.APIResponse{data=dto.ReactionSummaryResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /reactions [get]
func (c *ReactionController) Summary(ctx *gin.Context) {
	postID, ok := queryID(ctx, "postId")
	if !ok {
		return
	}

	summary, err := c.reactionService.Summary(ctx.Request.Context(), postID, middleware.OptionalCallerID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(summary))
}

// Delete removes the caller's reaction from a post
// @Summary Remove a reaction
// @Tags reactions
// @Produce json
// @Security BearerAuth
// @Param postId path int true "Post ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "No reaction to remove"
// @Router /reactions/{postId} [delete]
func (c *ReactionController) Delete(ctx *gin.Context) {
	postID, ok := pathID(ctx, "postId")
	if !ok {
		return
	}

	if err := c.reactionService.Delete(ctx.Request.Context(), middleware.CallerID(ctx), postID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Reaction removed"))
}
