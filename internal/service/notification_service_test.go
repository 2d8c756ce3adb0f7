package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/Oluwaferanmi-Dev/yrdly-app/internal/mocks"
	"github.com/Oluwaferanmi-Dev/yrdly-app/internal/model"
)

func TestDispatch_StoresAndPushes(t *testing.T) {
	recipient := uuid.New()
	users := new(mocks.MockUserStore)
	users.On("GetByID", mock.Anything, recipient).Return(&model.User{
		ID:       recipient,
		FCMToken: "token-1",
	}, nil)
	notifications := new(mocks.MockNotificationStore)
	notifications.On("Create", mock.Anything, mock.MatchedBy(func(n *model.Notification) bool {
		return n.UserID == recipient && n.Type == model.NotificationFriendRequest && !n.IsRead
	})).Return(nil)
	push := new(mocks.MockPushSender)
	push.On("Send", mock.Anything, "token-1", "New Friend Request", "Ada sent you a friend request.", "/neighbors").Return(nil)

	svc := NewNotificationService(users, notifications, push)
	svc.Dispatch(context.Background(), NotificationInput{
		UserID:      recipient,
		Type:        model.NotificationFriendRequest,
		Message:     "Ada sent you a friend request.",
		Title:       "New Friend Request",
		ClickAction: "/neighbors",
	})

	notifications.AssertExpectations(t)
	push.AssertExpectations(t)
}

func TestDispatch_PreferenceDisabledSuppressesEverything(t *testing.T) {
	recipient := uuid.New()
	users := new(mocks.MockUserStore)
	users.On("GetByID", mock.Anything, recipient).Return(&model.User{
		ID:                   recipient,
		FCMToken:             "token-1",
		NotificationSettings: model.NotificationSettings{model.PrefPosts: false},
	}, nil)
	notifications := new(mocks.MockNotificationStore)
	push := new(mocks.MockPushSender)

	svc := NewNotificationService(users, notifications, push)
	svc.Dispatch(context.Background(), NotificationInput{
		UserID: recipient,
		Type:   model.NotificationPostLike,
	})

	notifications.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	push.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatch_MissingSettingDefaultsToEnabled(t *testing.T) {
	recipient := uuid.New()
	users := new(mocks.MockUserStore)
	users.On("GetByID", mock.Anything, recipient).Return(&model.User{ID: recipient}, nil)
	notifications := new(mocks.MockNotificationStore)
	notifications.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewNotificationService(users, notifications, new(mocks.MockPushSender))
	svc.Dispatch(context.Background(), NotificationInput{
		UserID: recipient,
		Type:   model.NotificationComment,
	})

	notifications.AssertExpectations(t)
}

func TestDispatch_RecipientMissingIsSilent(t *testing.T) {
	recipient := uuid.New()
	users := new(mocks.MockUserStore)
	users.On("GetByID", mock.Anything, recipient).Return(nil, gorm.ErrRecordNotFound)
	notifications := new(mocks.MockNotificationStore)

	svc := NewNotificationService(users, notifications, new(mocks.MockPushSender))
	svc.Dispatch(context.Background(), NotificationInput{UserID: recipient, Type: model.NotificationMessage})

	notifications.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDispatch_PushFailureKeepsInAppRecord(t *testing.T) {
	recipient := uuid.New()
	users := new(mocks.MockUserStore)
	users.On("GetByID", mock.Anything, recipient).Return(&model.User{
		ID:       recipient,
		FCMToken: "stale-token",
	}, nil)
	notifications := new(mocks.MockNotificationStore)
	notifications.On("Create", mock.Anything, mock.Anything).Return(nil)
	push := new(mocks.MockPushSender)
	push.On("Send", mock.Anything, "stale-token", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("registration token expired"))

	svc := NewNotificationService(users, notifications, push)
	svc.Dispatch(context.Background(), NotificationInput{UserID: recipient, Type: model.NotificationMessage})

	notifications.AssertExpectations(t)
	push.AssertExpectations(t)
}

func TestDispatch_NoTokenSkipsPush(t *testing.T) {
	recipient := uuid.New()
	users := new(mocks.MockUserStore)
	users.On("GetByID", mock.Anything, recipient).Return(&model.User{ID: recipient}, nil)
	notifications := new(mocks.MockNotificationStore)
	notifications.On("Create", mock.Anything, mock.Anything).Return(nil)
	push := new(mocks.MockPushSender)

	svc := NewNotificationService(users, notifications, push)
	svc.Dispatch(context.Background(), NotificationInput{UserID: recipient, Type: model.NotificationMessage})

	push.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
