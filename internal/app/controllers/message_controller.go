package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/eduverse/eduverse/internal/app/models/dto"
	"github.com/eduverse/eduverse/internal/app/services"
	"github.com/eduverse/eduverse/internal/middleware"
)

// MessageController handles direct-message operations
type MessageController struct {
	callerLoader
	messageService services.MessageService
	logger         zerolog.Logger
}

// NewMessageController creates a new MessageController
func NewMessageController(messageService services.MessageService, userService services.UserService, logger zerolog.Logger) *MessageController {
	return &MessageController{
		callerLoader:   callerLoader{userService: userService},
		messageService: messageService,
		logger:         logger,
	}
}

// Create sends a direct message
// @Summary Send a message
// @Description Sends a message to another user. Without a chatId the chat for
// the pair is found or created. The chat's last-message preview is updated.
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateMessageRequest true "Message data"
// @Success 201 {object} dto.APIResponse{data=models.Message}
// @Failure 400 {object} dto.ErrorResponse "Message to self"
// @Failure 403 {object} dto.ErrorResponse "Not a participant of the chat"
// @Failure 404 {object} dto.ErrorResponse "Receiver not found"
// @Router /messages [post]
func (c *MessageController) Create(ctx *gin.Context) {
	var req dto.CreateMessageRequest
	if !bindJSON(ctx, &req) {
		return
	}

	caller, ok := c.caller(ctx)
	if !ok {
		return
	}

	message, err := c.messageService.Create(ctx.Request.Context(), caller, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(message))
}

// ListByChat returns a chat's messages, oldest first
// @Summary List messages of a chat
// @Description Only a participant may read the history.
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param chatId query int true "Chat ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Message}
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /messages [get]
func (c *MessageController) ListByChat(ctx *gin.Context) {
	chatID, ok := queryID(ctx, "chatId")
	if !ok {
		return
	}

	messages, err := c.messageService.ListByChat(ctx.Request.Context(), middleware.CallerID(ctx), chatID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(messages))
}

// Delete deletes a message
// @Summary Delete a message
// @Description Only the sender may delete.
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /messages/{id} [delete]
func (c *MessageController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.messageService.Delete(ctx.Request.Context(), middleware.CallerID(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Message deleted"))
}
