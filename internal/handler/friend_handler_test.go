package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Oluwaferanmi-Dev/yrdly-app/internal/events"
	"github.com/Oluwaferanmi-Dev/yrdly-app/internal/mocks"
	"github.com/Oluwaferanmi-Dev/yrdly-app/internal/model"
	"github.com/Oluwaferanmi-Dev/yrdly-app/internal/service"
	"github.com/Oluwaferanmi-Dev/yrdly-app/pkg/apperr"
)

type nopNotifier struct{}

func (nopNotifier) Dispatch(ctx context.Context, in service.NotificationInput) {}

type nopPublisher struct{}

func (nopPublisher) Publish(ctx context.Context, change events.Change) {}

func setupFriendRouter(requests *mocks.MockFriendRequestStore, users *mocks.MockUserStore, callerID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.NewFriendService(requests, users, nopNotifier{})
	h := NewFriendHandler(svc, nopPublisher{})

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("user_id", callerID) })
	r.POST("/friends/requests/accept", h.Accept)
	r.POST("/friends/requests", h.SendRequest)
	return r
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAccept_Success(t *testing.T) {
	caller := uuid.New()
	req := &model.FriendRequest{ID: uuid.New(), FromUserID: uuid.New(), ToUserID: caller, Status: model.FriendRequestAccepted}
	requests := new(mocks.MockFriendRequestStore)
	requests.On("Accept", mock.Anything, req.ID, caller).Return(req, true, nil)
	users := new(mocks.MockUserStore)
	users.On("GetByID", mock.Anything, caller).Return(&model.User{ID: caller, Name: "Ada"}, nil)

	router := setupFriendRouter(requests, users, caller)
	rec := postJSON(t, router, "/friends/requests/accept", model.AcceptFriendRequestRequest{FriendRequestID: req.ID.String()})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp model.SuccessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestAccept_AlreadyResolvedStillSucceeds(t *testing.T) {
	caller := uuid.New()
	req := &model.FriendRequest{ID: uuid.New(), ToUserID: caller, Status: model.FriendRequestDeclined}
	requests := new(mocks.MockFriendRequestStore)
	requests.On("Accept", mock.Anything, req.ID, caller).Return(req, false, nil)

	router := setupFriendRouter(requests, new(mocks.MockUserStore), caller)
	rec := postJSON(t, router, "/friends/requests/accept", model.AcceptFriendRequestRequest{FriendRequestID: req.ID.String()})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAccept_MissingIDReturns400(t *testing.T) {
	router := setupFriendRouter(new(mocks.MockFriendRequestStore), new(mocks.MockUserStore), uuid.New())
	rec := postJSON(t, router, "/friends/requests/accept", model.AcceptFriendRequestRequest{})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp model.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, string(apperr.CodeInvalidArgument), resp.Error)
	assert.Equal(t, `The function must be called with a "friendRequestId".`, resp.Message)
}

func TestAccept_WrongAddresseeReturns403(t *testing.T) {
	caller := uuid.New()
	requestID := uuid.New()
	requests := new(mocks.MockFriendRequestStore)
	requests.On("Accept", mock.Anything, requestID, caller).
		Return(nil, false, apperr.New(apperr.CodePermissionDenied, "You can only accept friend requests sent to you."))

	router := setupFriendRouter(requests, new(mocks.MockUserStore), caller)
	rec := postJSON(t, router, "/friends/requests/accept", model.AcceptFriendRequestRequest{FriendRequestID: requestID.String()})

	require.Equal(t, http.StatusForbidden, rec.Code)
	var resp model.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, string(apperr.CodePermissionDenied), resp.Error)
}

func TestAccept_UnknownRequestReturns404(t *testing.T) {
	caller := uuid.New()
	requestID := uuid.New()
	requests := new(mocks.MockFriendRequestStore)
	requests.On("Accept", mock.Anything, requestID, caller).Return(nil, false, gorm.ErrRecordNotFound)

	router := setupFriendRouter(requests, new(mocks.MockUserStore), caller)
	rec := postJSON(t, router, "/friends/requests/accept", model.AcceptFriendRequestRequest{FriendRequestID: requestID.String()})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSendRequest_DuplicateReturns409(t *testing.T) {
	caller := uuid.New()
	target := uuid.New()
	users := new(mocks.MockUserStore)
	users.On("GetByID", mock.Anything, target).Return(&model.User{ID: target}, nil)
	users.On("AreFriends", mock.Anything, caller, target).Return(false, nil)
	requests := new(mocks.MockFriendRequestStore)
	requests.On("HasPending", mock.Anything, caller, target).Return(true, nil)

	router := setupFriendRouter(requests, users, caller)
	rec := postJSON(t, router, "/friends/requests", model.SendFriendRequestRequest{ToUserID: target})

	assert.Equal(t, http.StatusConflict, rec.Code)
}
