package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Oluwaferanmi-Dev/yrdly-app/internal/mocks"
	"github.com/Oluwaferanmi-Dev/yrdly-app/internal/model"
	"github.com/Oluwaferanmi-Dev/yrdly-app/pkg/apperr"
)

// recordingNotifier captures dispatched notifications for assertions.
type recordingNotifier struct {
	inputs []NotificationInput
}

func (r *recordingNotifier) Dispatch(ctx context.Context, in NotificationInput) {
	r.inputs = append(r.inputs, in)
}

func TestSendRequest_ToSelf(t *testing.T) {
	svc := NewFriendService(new(mocks.MockFriendRequestStore), new(mocks.MockUserStore), &recordingNotifier{})
	me := uuid.New()

	_, err := svc.SendRequest(context.Background(), me, me)

	assert.True(t, apperr.Is(err, apperr.CodeInvalidArgument))
}

func TestSendRequest_Unauthenticated(t *testing.T) {
	svc := NewFriendService(new(mocks.MockFriendRequestStore), new(mocks.MockUserStore), &recordingNotifier{})

	_, err := svc.SendRequest(context.Background(), uuid.Nil, uuid.New())

	assert.True(t, apperr.Is(err, apperr.CodeUnauthenticated))
}

func TestSendRequest_TargetMissing(t *testing.T) {
	users := new(mocks.MockUserStore)
	target := uuid.New()
	users.On("GetByID", mock.Anything, target).Return(nil, gorm.ErrRecordNotFound)

	svc := NewFriendService(new(mocks.MockFriendRequestStore), users, &recordingNotifier{})
	_, err := svc.SendRequest(context.Background(), uuid.New(), target)

	assert.True(t, apperr.Is(err, apperr.CodeNotFound))
}

func TestSendRequest_AlreadyFriends(t *testing.T) {
	from, to := uuid.New(), uuid.New()
	users := new(mocks.MockUserStore)
	users.On("GetByID", mock.Anything, to).Return(&model.User{ID: to}, nil)
	users.On("AreFriends", mock.Anything, from, to).Return(true, nil)

	svc := NewFriendService(new(mocks.MockFriendRequestStore), users, &recordingNotifier{})
	_, err := svc.SendRequest(context.Background(), from, to)

	assert.True(t, apperr.Is(err, apperr.CodeAlreadyExists))
}

func TestSendRequest_DuplicatePending(t *testing.T) {
	from, to := uuid.New(), uuid.New()
	users := new(mocks.MockUserStore)
	users.On("GetByID", mock.Anything, to).Return(&model.User{ID: to}, nil)
	users.On("AreFriends", mock.Anything, from, to).Return(false, nil)
	requests := new(mocks.MockFriendRequestStore)
	requests.On("HasPending", mock.Anything, from, to).Return(true, nil)

	svc := NewFriendService(requests, users, &recordingNotifier{})
	_, err := svc.SendRequest(context.Background(), from, to)

	assert.True(t, apperr.Is(err, apperr.CodeAlreadyExists))
	requests.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSendRequest_CreatesPending(t *testing.T) {
	from, to := uuid.New(), uuid.New()
	users := new(mocks.MockUserStore)
	users.On("GetByID", mock.Anything, to).Return(&model.User{ID: to}, nil)
	users.On("AreFriends", mock.Anything, from, to).Return(false, nil)
	requests := new(mocks.MockFriendRequestStore)
	requests.On("HasPending", mock.Anything, from, to).Return(false, nil)
	requests.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewFriendService(requests, users, &recordingNotifier{})
	req, err := svc.SendRequest(context.Background(), from, to)

	require.NoError(t, err)
	assert.Equal(t, from, req.FromUserID)
	assert.Equal(t, to, req.ToUserID)
	assert.Equal(t, model.FriendRequestPending, req.Status)
	requests.AssertExpectations(t)
}

func TestAcceptFriendRequest_EmptyID(t *testing.T) {
	svc := NewFriendService(new(mocks.MockFriendRequestStore), new(mocks.MockUserStore), &recordingNotifier{})

	err := svc.AcceptFriendRequest(context.Background(), uuid.New(), "")

	assert.True(t, apperr.Is(err, apperr.CodeInvalidArgument))
	assert.Equal(t, `The function must be called with a "friendRequestId".`, apperr.MessageOf(err))
}

func TestAcceptFriendRequest_Unauthenticated(t *testing.T) {
	svc := NewFriendService(new(mocks.MockFriendRequestStore), new(mocks.MockUserStore), &recordingNotifier{})

	err := svc.AcceptFriendRequest(context.Background(), uuid.Nil, uuid.New().String())

	assert.True(t, apperr.Is(err, apperr.CodeUnauthenticated))
}

func TestAcceptFriendRequest_MalformedID(t *testing.T) {
	svc := NewFriendService(new(mocks.MockFriendRequestStore), new(mocks.MockUserStore), &recordingNotifier{})

	err := svc.AcceptFriendRequest(context.Background(), uuid.New(), "not-a-uuid")

	assert.True(t, apperr.Is(err, apperr.CodeInvalidArgument))
}

func TestAcceptFriendRequest_NotFound(t *testing.T) {
	caller := uuid.New()
	requestID := uuid.New()
	requests := new(mocks.MockFriendRequestStore)
	requests.On("Accept", mock.Anything, requestID, caller).Return(nil, false, gorm.ErrRecordNotFound)

	svc := NewFriendService(requests, new(mocks.MockUserStore), &recordingNotifier{})
	err := svc.AcceptFriendRequest(context.Background(), caller, requestID.String())

	assert.True(t, apperr.Is(err, apperr.CodeNotFound))
	assert.Equal(t, "The specified friend request does not exist.", apperr.MessageOf(err))
}

func TestAcceptFriendRequest_WrongAddressee(t *testing.T) {
	caller := uuid.New()
	requestID := uuid.New()
	requests := new(mocks.MockFriendRequestStore)
	requests.On("Accept", mock.Anything, requestID, caller).
		Return(nil, false, apperr.New(apperr.CodePermissionDenied, "You can only accept friend requests sent to you."))

	notifier := &recordingNotifier{}
	svc := NewFriendService(requests, new(mocks.MockUserStore), notifier)
	err := svc.AcceptFriendRequest(context.Background(), caller, requestID.String())

	assert.True(t, apperr.Is(err, apperr.CodePermissionDenied))
	assert.Empty(t, notifier.inputs)
}

func TestAcceptFriendRequest_AlreadyResolvedIsNoOp(t *testing.T) {
	caller := uuid.New()
	req := &model.FriendRequest{
		ID:         uuid.New(),
		FromUserID: uuid.New(),
		ToUserID:   caller,
		Status:     model.FriendRequestAccepted,
	}
	requests := new(mocks.MockFriendRequestStore)
	requests.On("Accept", mock.Anything, req.ID, caller).Return(req, false, nil)

	notifier := &recordingNotifier{}
	svc := NewFriendService(requests, new(mocks.MockUserStore), notifier)
	err := svc.AcceptFriendRequest(context.Background(), caller, req.ID.String())

	assert.NoError(t, err)
	assert.Empty(t, notifier.inputs, "resolved request must not notify again")
}

func TestAcceptFriendRequest_NotifiesSender(t *testing.T) {
	caller := uuid.New()
	sender := uuid.New()
	req := &model.FriendRequest{
		ID:         uuid.New(),
		FromUserID: sender,
		ToUserID:   caller,
		Status:     model.FriendRequestAccepted,
	}
	requests := new(mocks.MockFriendRequestStore)
	requests.On("Accept", mock.Anything, req.ID, caller).Return(req, true, nil)
	users := new(mocks.MockUserStore)
	users.On("GetByID", mock.Anything, caller).Return(&model.User{ID: caller, Name: "Ada"}, nil)

	notifier := &recordingNotifier{}
	svc := NewFriendService(requests, users, notifier)
	err := svc.AcceptFriendRequest(context.Background(), caller, req.ID.String())

	require.NoError(t, err)
	require.Len(t, notifier.inputs, 1)
	in := notifier.inputs[0]
	assert.Equal(t, sender, in.UserID)
	assert.Equal(t, model.NotificationFriendRequestAccepted, in.Type)
	assert.Equal(t, "Ada accepted your friend request.", in.Message)
	assert.Equal(t, "/users/"+caller.String(), in.ClickAction)
}

func TestDeclineFriendRequest_NoNotification(t *testing.T) {
	caller := uuid.New()
	req := &model.FriendRequest{
		ID:         uuid.New(),
		FromUserID: uuid.New(),
		ToUserID:   caller,
		Status:     model.FriendRequestDeclined,
	}
	requests := new(mocks.MockFriendRequestStore)
	requests.On("Decline", mock.Anything, req.ID, caller).Return(req, true, nil)

	notifier := &recordingNotifier{}
	svc := NewFriendService(requests, new(mocks.MockUserStore), notifier)
	err := svc.DeclineFriendRequest(context.Background(), caller, req.ID.String())

	assert.NoError(t, err)
	assert.Empty(t, notifier.inputs)
}

func TestListIncoming_ResolvesSenderNames(t *testing.T) {
	me := uuid.New()
	sender := uuid.New()
	requests := new(mocks.MockFriendRequestStore)
	requests.On("ListIncoming", mock.Anything, me).Return([]model.FriendRequest{
		{ID: uuid.New(), FromUserID: sender, ToUserID: me, Status: model.FriendRequestPending},
	}, nil)
	users := new(mocks.MockUserStore)
	users.On("GetByID", mock.Anything, sender).Return(&model.User{ID: sender, Name: "Bisi"}, nil)

	svc := NewFriendService(requests, users, &recordingNotifier{})
	resp, err := svc.ListIncoming(context.Background(), me)

	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "Bisi", resp[0].FromUserName)
}
