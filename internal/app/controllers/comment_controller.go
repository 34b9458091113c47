package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/eduverse/eduverse/internal/app/models/dto"
	"github.com/eduverse/eduverse/internal/app/services"
	"github.com/eduverse/eduverse/internal/middleware"
)

// CommentController handles comment operations
type CommentController struct {
	callerLoader
	commentService services.CommentService
	logger         zerolog.Logger
}

// NewCommentController creates a new CommentController
func NewCommentController(commentService services.CommentService, userService services.UserService, logger zerolog.Logger) *CommentController {
	return &CommentController{
		callerLoader:   callerLoader{userService: userService},
		commentService: commentService,
		logger:         logger,
	}
}

// Create creates a comment
// @Summary Create a comment
// @Description Adds a comment to a post, optionally replying to another
// comment on the same post.
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCommentRequest true "Comment data"
// @Success 201 {object} dto.APIResponse{data=models.Comment}
// @Failure 400 {object} dto.ErrorResponse "Parent comment belongs to another post"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Router /comments [post]
func (c *CommentController) Create(ctx *gin.Context) {
	var req dto.CreateCommentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	caller, ok := c.caller(ctx)
	if !ok {
		return
	}

	comment, err := c.commentService.Create(ctx.Request.Context(), caller, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(comment))
}

// ListByPost returns a post's comments, oldest first
// @Summary List comments of a post
// @Tags comments
// @Produce json
// @Param postId query int true "Post ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Comment}
// @Failure 404 {object} dto.ErrorResponse
// @Router /comments [get]
func (c *CommentController) ListByPost(ctx *gin.Context) {
	postID, ok := queryID(ctx, "postId")
	if !ok {
		return
	}

	comments, err := c.commentService.ListByPost(ctx.Request.Context(), postID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(comments))
}

// Delete deletes a comment
// @Summary Delete a comment
// @Description The author or an admin may delete. Replies to the comment are
// kept with their parent reference cleared.
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Comment ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /comments/{id} [delete]
func (c *CommentController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	caller, ok := c.caller(ctx)
	if !ok {
		return
	}

	if err := c.commentService.Delete(ctx.Request.Context(), caller, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Comment deleted"))
}
