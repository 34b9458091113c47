package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/eduverse/eduverse/internal/app/models/dto"
	"github.com/eduverse/eduverse/internal/app/services"
	"github.com/eduverse/eduverse/internal/middleware"
)

// ChatController handles direct-message chat operations
type ChatController struct {
	callerLoader
	chatService services.ChatService
	logger      zerolog.Logger
}

// NewChatController creates a new ChatController
func NewChatController(chatService services.ChatService, userService services.UserService, logger zerolog.Logger) *ChatController {
	return &ChatController{
		callerLoader: callerLoader{userService: userService},
		chatService:  chatService,
		logger:       logger,
	}
}

// Create finds or creates the chat with another user
// @Summary Open a chat
// @Description Returns the existing chat for the pair when one exists,
// otherwise creates it. 201 on creation, 200 on reuse.
// @Tags chats
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateChatRequest true "The other participant"
// @Success 200 {object} dto.APIResponse{data=models.Chat}
// @Success 201 {object} dto.APIResponse{data=models.Chat}
// @Failure 400 {object} dto.ErrorResponse "Chat with self"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /chats [post]
func (c *ChatController) Create(ctx *gin.Context) {
	var req dto.CreateChatRequest
	if !bindJSON(ctx, &req) {
		return
	}

	caller, ok := c.caller(ctx)
	if !ok {
		return
	}

	chat, created, err := c.chatService.GetOrCreate(ctx.Request.Context(), caller, req.User2ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	ctx.JSON(status, dto.NewSuccessResponse(chat))
}

// GetByID returns one chat
// @Summary Get a chat
// @Description Only a participant may read the chat.
// @Tags chats
// @Produce json
// @Security BearerAuth
// @Param id path int true "Chat ID"
// @Success 200 {object} dto.APIResponse{data=models.Chat}
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /chats/{id} [get]
func (c *ChatController) GetByID(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	chat, err := c.chatService.GetByID(ctx.Request.Context(), middleware.CallerID(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(chat))
}

// List returns the caller's chats, most recently active first
// @Summary List own chats
// @Tags chats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ChatListResponse}
// @Router /chats [get]
func (c *ChatController) List(ctx *gin.Context) {
	chats, err := c.chatService.ListByUser(ctx.Request.Context(), middleware.CallerID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ChatListResponse{Chats: chats, Count: len(chats)}))
}
