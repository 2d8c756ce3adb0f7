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

// PostHandler handles neighborhood feed endpoints
type PostHandler struct {
	feedService *service.FeedService
	bus         Publisher
}

func NewPostHandler(feedService *service.FeedService, bus Publisher) *PostHandler {
	return &PostHandler{
		feedService: feedService,
		bus:         bus,
	}
}

// Create godoc
// @Summary Create a post in the author's neighborhood
// @Tags Posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.CreatePostRequest true "Create post request"
// @Success 201 {object} model.Post
// @Failure 400 {object} model.ErrorResponse
// @Router /posts [post]
func (h *PostHandler) Create(c *gin.Context) {
	userID := middleware.UserID(c)
	var req model.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request", Message: err.Error()})
		return
	}

	post, err := h.feedService.CreatePost(c.Request.Context(), userID, req.Text)
	if err != nil {
		respondError(c, err)
		return
	}

	h.bus.Publish(c.Request.Context(), events.Created(post.ID, events.CollectionPosts, post))
	c.JSON(http.StatusCreated, post)
}

// Like godoc
// @Summary Like a post
// @Tags Posts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {object} model.Post
// @Failure 404 {object} model.ErrorResponse
// @Router /posts/{id}/like [post]
func (h *PostHandler) Like(c *gin.Context) {
	userID := middleware.UserID(c)
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid post id"})
		return
	}

	before, after, err := h.feedService.LikePost(c.Request.Context(), postID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	h.bus.Publish(c.Request.Context(), events.Updated(after.ID, events.CollectionPosts, before, after))
	c.JSON(http.StatusOK, after)
}

// Comment godoc
// @Summary Comment on a post
// @Tags Posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Param body body model.CreateCommentRequest true "Create comment request"
// @Success 201 {object} model.Comment
// @Failure 404 {object} model.ErrorResponse
// @Router /posts/{id}/comments [post]
func (h *PostHandler) Comment(c *gin.Context) {
	userID := middleware.UserID(c)
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid post id"})
		return
	}

	var req model.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request", Message: err.Error()})
		return
	}

	comment, err := h.feedService.CreateComment(c.Request.Context(), postID, userID, req.Text)
	if err != nil {
		respondError(c, err)
		return
	}

	h.bus.Publish(c.Request.Context(), events.Created(comment.ID, events.CollectionComments, comment))
	c.JSON(http.StatusCreated, comment)
}
