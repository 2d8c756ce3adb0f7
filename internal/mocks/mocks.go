package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/Oluwaferanmi-Dev/yrdly-app/internal/model"
	"github.com/Oluwaferanmi-Dev/yrdly-app/internal/repository"
)

// Compile-time assertions
var (
	_ repository.UserStore          = (*MockUserStore)(nil)
	_ repository.FriendRequestStore = (*MockFriendRequestStore)(nil)
	_ repository.NotificationStore  = (*MockNotificationStore)(nil)
	_ repository.PostStore          = (*MockPostStore)(nil)
	_ repository.ConversationStore  = (*MockConversationStore)(nil)
	_ repository.MailQueueStore     = (*MockMailQueueStore)(nil)
)

// MockUserStore mocks repository.UserStore.
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	var user *model.User
	if val := args.Get(0); val != nil {
		user = val.(*model.User)
	}
	return user, args.Error(1)
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	var user *model.User
	if val := args.Get(0); val != nil {
		user = val.(*model.User)
	}
	return user, args.Error(1)
}

func (m *MockUserStore) ListByLGA(ctx context.Context, lga string, exclude uuid.UUID) ([]model.User, error) {
	args := m.Called(ctx, lga, exclude)
	var users []model.User
	if val := args.Get(0); val != nil {
		users = val.([]model.User)
	}
	return users, args.Error(1)
}

func (m *MockUserStore) ListFriendIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, userID)
	var ids []uuid.UUID
	if val := args.Get(0); val != nil {
		ids = val.([]uuid.UUID)
	}
	return ids, args.Error(1)
}

func (m *MockUserStore) AreFriends(ctx context.Context, userID, otherID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, otherID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserStore) UpdateSettings(ctx context.Context, id uuid.UUID, settings model.NotificationSettings) error {
	args := m.Called(ctx, id, settings)
	return args.Error(0)
}

func (m *MockUserStore) UpdateFCMToken(ctx context.Context, id uuid.UUID, token string) error {
	args := m.Called(ctx, id, token)
	return args.Error(0)
}

// MockFriendRequestStore mocks repository.FriendRequestStore.
type MockFriendRequestStore struct {
	mock.Mock
}

func (m *MockFriendRequestStore) Create(ctx context.Context, req *model.FriendRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockFriendRequestStore) GetByID(ctx context.Context, id uuid.UUID) (*model.FriendRequest, error) {
	args := m.Called(ctx, id)
	var req *model.FriendRequest
	if val := args.Get(0); val != nil {
		req = val.(*model.FriendRequest)
	}
	return req, args.Error(1)
}

func (m *MockFriendRequestStore) ListIncoming(ctx context.Context, userID uuid.UUID) ([]model.FriendRequest, error) {
	args := m.Called(ctx, userID)
	var reqs []model.FriendRequest
	if val := args.Get(0); val != nil {
		reqs = val.([]model.FriendRequest)
	}
	return reqs, args.Error(1)
}

func (m *MockFriendRequestStore) HasPending(ctx context.Context, userID, otherID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, otherID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFriendRequestStore) Accept(ctx context.Context, requestID, callerID uuid.UUID) (*model.FriendRequest, bool, error) {
	args := m.Called(ctx, requestID, callerID)
	var req *model.FriendRequest
	if val := args.Get(0); val != nil {
		req = val.(*model.FriendRequest)
	}
	return req, args.Bool(1), args.Error(2)
}

func (m *MockFriendRequestStore) Decline(ctx context.Context, requestID, callerID uuid.UUID) (*model.FriendRequest, bool, error) {
	args := m.Called(ctx, requestID, callerID)
	var req *model.FriendRequest
	if val := args.Get(0); val != nil {
		req = val.(*model.FriendRequest)
	}
	return req, args.Bool(1), args.Error(2)
}

// MockNotificationStore mocks repository.NotificationStore.
type MockNotificationStore struct {
	mock.Mock
}

func (m *MockNotificationStore) Create(ctx context.Context, n *model.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationStore) ListForUser(ctx context.Context, userID uuid.UUID, limit int) ([]model.Notification, error) {
	args := m.Called(ctx, userID, limit)
	var notifications []model.Notification
	if val := args.Get(0); val != nil {
		notifications = val.([]model.Notification)
	}
	return notifications, args.Error(1)
}

func (m *MockNotificationStore) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// MockPostStore mocks repository.PostStore.
type MockPostStore struct {
	mock.Mock
}

func (m *MockPostStore) Create(ctx context.Context, post *model.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostStore) GetByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	args := m.Called(ctx, id)
	var post *model.Post
	if val := args.Get(0); val != nil {
		post = val.(*model.Post)
	}
	return post, args.Error(1)
}

func (m *MockPostStore) AddLike(ctx context.Context, postID, userID uuid.UUID) (*model.Post, error) {
	args := m.Called(ctx, postID, userID)
	var post *model.Post
	if val := args.Get(0); val != nil {
		post = val.(*model.Post)
	}
	return post, args.Error(1)
}

func (m *MockPostStore) CreateComment(ctx context.Context, comment *model.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

// MockConversationStore mocks repository.ConversationStore.
type MockConversationStore struct {
	mock.Mock
}

func (m *MockConversationStore) GetOrCreateDirect(ctx context.Context, a, b uuid.UUID) (*model.Conversation, error) {
	args := m.Called(ctx, a, b)
	var conv *model.Conversation
	if val := args.Get(0); val != nil {
		conv = val.(*model.Conversation)
	}
	return conv, args.Error(1)
}

func (m *MockConversationStore) GetByID(ctx context.Context, id uuid.UUID) (*model.Conversation, error) {
	args := m.Called(ctx, id)
	var conv *model.Conversation
	if val := args.Get(0); val != nil {
		conv = val.(*model.Conversation)
	}
	return conv, args.Error(1)
}

func (m *MockConversationStore) CreateMessage(ctx context.Context, msg *model.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

// MockMailQueueStore mocks repository.MailQueueStore.
type MockMailQueueStore struct {
	mock.Mock
}

func (m *MockMailQueueStore) Enqueue(ctx context.Context, entry *model.MailQueueEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockMailQueueStore) ListPending(ctx context.Context, limit int) ([]model.MailQueueEntry, error) {
	args := m.Called(ctx, limit)
	var entries []model.MailQueueEntry
	if val := args.Get(0); val != nil {
		entries = val.([]model.MailQueueEntry)
	}
	return entries, args.Error(1)
}

func (m *MockMailQueueStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPushSender mocks service.PushSender.
type MockPushSender struct {
	mock.Mock
}

func (m *MockPushSender) Send(ctx context.Context, token, title, body, link string) error {
	args := m.Called(ctx, token, title, body, link)
	return args.Error(0)
}

// MockMailSender mocks service.MailSender.
type MockMailSender struct {
	mock.Mock
}

func (m *MockMailSender) Send(to, subject, htmlBody string) error {
	args := m.Called(to, subject, htmlBody)
	return args.Error(0)
}
