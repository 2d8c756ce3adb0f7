package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Oluwaferanmi-Dev/yrdly-app/internal/events"
	"github.com/Oluwaferanmi-Dev/yrdly-app/internal/middleware"
	"github.com/Oluwaferanmi-Dev/yrdly-app/internal/model"
	"github.com/Oluwaferanmi-Dev/yrdly-app/internal/service"
)

// ChatHandler handles direct messaging endpoints
type ChatHandler struct {
	chatService *service.ChatService
	bus         Publisher
}

func NewChatHandler(chatService *service.ChatService, bus Publisher) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		bus:         bus,
	}
}

// GetOrCreateDirect godoc
// @Summary Get or create a direct conversation with another user
// @Tags Conversations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.CreateConversationRequest true "Partner ID"
// @Success 200 {object} model.Conversation
// @Failure 400 {object} model.ErrorResponse
// @Router /conversations [post]
func (h *ChatHandler) GetOrCreateDirect(c *gin.Context) {
	userID := middleware.UserID(c)
	var req model.CreateConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request", Message: err.Error()})
		return
	}

	conv, err := h.chatService.GetOrCreateDirect(c.Request.Context(), userID, req.PartnerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, conv)
}

// SendMessage godoc
// @Summary Send a message in a conversation
// @Tags Conversations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Conversation ID"
// @Param body body model.SendMessageRequest true "Send message request"
// @Success 201 {object} model.Message
// @Failure 403 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /conversations/{id}/messages [post]
func (h *ChatHandler) SendMessage(c *gin.Context) {
	userID := middleware.UserID(c)
	conversationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid conversation id"})
		return
	}

	var req model.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request", Message: err.Error()})
		return
	}

	msg, err := h.chatService.SendMessage(c.Request.Context(), conversationID, userID, req.Text)
	if err != nil {
		respondError(c, err)
		return
	}

	h.bus.Publish(c.Request.Context(), events.Created(msg.ID, events.CollectionMessages, msg))
	c.JSON(http.StatusCreated, msg)
}
