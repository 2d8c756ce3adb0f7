package model

import "github.com/google/uuid"

// ===== Request DTOs =====

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SendFriendRequestRequest struct {
	ToUserID uuid.UUID `json:"to_user_id" binding:"required"`
}

type AcceptFriendRequestRequest struct {
	FriendRequestID string `json:"friend_request_id"`
}

type CreatePostRequest struct {
	Text string `json:"text" binding:"required"`
}

type CreateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

type CreateConversationRequest struct {
	PartnerID uuid.UUID `json:"partner_id" binding:"required"`
}

type SendMessageRequest struct {
	Text string `json:"text" binding:"required"`
}

type CreateEventRequest struct {
	Title    string `json:"title" binding:"required"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Location string `json:"location"`
	URL      string `json:"url"`
}

type InviteRequest struct {
	UserID uuid.UUID `json:"user_id" binding:"required"`
}

type UpdateSettingsRequest struct {
	NotificationSettings NotificationSettings `json:"notification_settings" binding:"required"`
}

type UpdateFCMTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

// ===== Response DTOs =====

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type FriendRequestResponse struct {
	FriendRequest
	FromUserName string `json:"from_user_name,omitempty"`
}
