package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Oluwaferanmi-Dev/yrdly-app/internal/events"
	"github.com/Oluwaferanmi-Dev/yrdly-app/internal/middleware"
	"github.com/Oluwaferanmi-Dev/yrdly-app/internal/model"
	"github.com/Oluwaferanmi-Dev/yrdly-app/internal/service"
	"github.com/Oluwaferanmi-Dev/yrdly-app/pkg/apperr"
)

// FriendHandler handles friend request and friendship endpoints
type FriendHandler struct {
	friendService *service.FriendService
	bus           Publisher
}

func NewFriendHandler(friendService *service.FriendService, bus Publisher) *FriendHandler {
	return &FriendHandler{
		friendService: friendService,
		bus:           bus,
	}
}

// SendRequest godoc
// @Summary Send a friend request
// @Tags Friends
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.SendFriendRequestRequest true "Send friend request"
// @Success 201 {object} model.FriendRequest
// @Failure 400 {object} model.ErrorResponse
// @Failure 409 {object} model.ErrorResponse
// @Router /friends/requests [post]
func (h *FriendHandler) SendRequest(c *gin.Context) {
	userID := middleware.UserID(c)
	var req model.SendFriendRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request", Message: err.Error()})
		return
	}

	fr, err := h.friendService.SendRequest(c.Request.Context(), userID, req.ToUserID)
	if err != nil {
		respondError(c, err)
		return
	}

	h.bus.Publish(c.Request.Context(), events.Created(fr.ID, events.CollectionFriendRequests, fr))
	c.JSON(http.StatusCreated, fr)
}

// ListRequests godoc
// @Summary List incoming pending friend requests
// @Tags Friends
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.FriendRequestResponse
// @Router /friends/requests [get]
func (h *FriendHandler) ListRequests(c *gin.Context) {
	userID := middleware.UserID(c)

	requests, err := h.friendService.ListIncoming(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, requests)
}

// Accept godoc
// @Summary Accept a friend request
// @Tags Friends
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.AcceptFriendRequestRequest true "Accept friend request"
// @Success 200 {object} model.SuccessResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 403 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /friends/requests/accept [post]
func (h *FriendHandler) Accept(c *gin.Context) {
	userID := middleware.UserID(c)
	var req model.AcceptFriendRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request", Message: err.Error()})
		return
	}

	if err := h.friendService.AcceptFriendRequest(c.Request.Context(), userID, req.FriendRequestID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.SuccessResponse{Success: true})
}

// Decline godoc
// @Summary Decline a friend request
// @Tags Friends
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.AcceptFriendRequestRequest true "Decline friend request"
// @Success 200 {object} model.SuccessResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 403 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /friends/requests/decline [post]
func (h *FriendHandler) Decline(c *gin.Context) {
	userID := middleware.UserID(c)
	var req model.AcceptFriendRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request", Message: err.Error()})
		return
	}

	if err := h.friendService.DeclineFriendRequest(c.Request.Context(), userID, req.FriendRequestID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.SuccessResponse{Success: true})
}

// ListFriends godoc
// @Summary List accepted friends
// @Tags Friends
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.UserResponse
// @Router /friends [get]
func (h *FriendHandler) ListFriends(c *gin.Context) {
	userID := middleware.UserID(c)

	friends, err := h.friendService.ListFriends(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, friends)
}

// respondError maps coded service errors onto HTTP responses.
func respondError(c *gin.Context, err error) {
	code := apperr.CodeOf(err)
	c.JSON(apperr.HTTPStatus(code), model.ErrorResponse{
		Error:   string(code),
		Message: apperr.MessageOf(err),
	})
}
