package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/eduverse/eduverse/internal/app/models/dto"
	"github.com/eduverse/eduverse/internal/app/services"
	"github.com/eduverse/eduverse/internal/middleware"
)

// PostController handles post operations
type PostController struct {
	callerLoader
	postService services.PostService
	logger      zerolog.Logger
}

// NewPostController creates a new PostController
func NewPostController(postService services.PostService, userService services.UserService, logger zerolog.Logger) *PostController {
	return &PostController{
		callerLoader: callerLoader{userService: userService},
		postService:  postService,
		logger:       logger,
	}
}

// Create creates a post
// @Summary Create a post
// @Description Creates a course post. Type defaults to discussion.
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePostRequest true "Post data"
// @Success 201 {object} dto.APIResponse{data=models.Post}
// @Failure 400 {object} dto.ErrorResponse
// @Router /posts [post]
func (c *PostController) Create(ctx *gin.Context) {
	var req dto.CreatePostRequest
	if !bindJSON(ctx, &req) {
		return
	}

	caller, ok := c.caller(ctx)
	if !ok {
		return
	}

	post, err := c.postService.Create(ctx.Request.Context(), caller, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(post))
}

// List returns posts, newest first
// @Summary List posts
// @Tags posts
// @Produce json
// @Param courseId query string false "Course filter"
// @Param type query string false "Post type filter" Enums(question, announcement, discussion, event)
// @Param limit query int false "Page size, capped at 100"
// @Param skip query int false "Offset"
// @Success 200 {object} dto.APIResponse{data=[]models.Post}
// @Router /posts [get]
func (c *PostController) List(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	skip, _ := strconv.Atoi(ctx.DefaultQuery("skip", "0"))

	posts, err := c.postService.List(ctx.Request.Context(), dto.PostFilter{
		CourseID: ctx.Query("courseId"),
		Type:     ctx.Query("type"),
		Limit:    limit,
		Skip:     skip,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(posts))
}

// GetDetail returns a post with comments and reaction summary
// @Summary Get a post
// @Description Returns the post, its comments oldest first, the per-type
// reaction counts and the caller's own reaction when authenticated.
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} dto.APIResponse{data=dto.PostDetailResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /posts/{id} [get]
func (c *PostController) GetDetail(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	detail, err := c.postService.GetDetail(ctx.Request.Context(), id, middleware.OptionalCallerID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(detail))
}

// Update updates a post
// @Summary Update a post
// @Description Only the author may edit title and body.
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param request body dto.UpdatePostRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Post}
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /posts/{id} [put]
func (c *PostController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdatePostRequest
	if !bindJSON(ctx, &req) {
		return
	}

	post, err := c.postService.Update(ctx.Request.Context(), middleware.CallerID(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(post))
}

// Delete deletes a post
// @Summary Delete a post
// @Description Removes the post together with its comments and reactions.
// The author or an admin may delete.
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /posts/{id} [delete]
func (c *PostController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	caller, ok := c.caller(ctx)
	if !ok {
		return
	}

	if err := c.postService.Delete(ctx.Request.Context(), caller, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("postId", id).Int64("userId", caller.ID).Msg("post deleted")
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Post deleted"))
}
