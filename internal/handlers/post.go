package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gamebuddy/internal/database"
	"gamebuddy/internal/handlers/dto"
	"gamebuddy/internal/middleware"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 50
)

type PostHandler struct {
	posts  PostStore
	logger *zap.Logger
}

func NewPostHandler(posts PostStore, logger *zap.Logger) *PostHandler {
	return &PostHandler{posts: posts, logger: logger}
}

// parsePagination validates page and limit query params. Out-of-range
// values are a 400, not clamped; a page past the last one is left to the
// store, which returns an empty page.
func parsePagination(c *gin.Context) (page, limit int, ok bool) {
	page, err := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(defaultPage)))
	if err != nil || page < 1 {
		return 0, 0, false
	}
	limit, err = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 || limit > maxLimit {
		return 0, 0, false
	}
	return page, limit, true
}

func pageResponse(page *database.PostPage) dto.PostPageResponse {
	data := make([]dto.PostResponse, 0, len(page.Data))
	for i := range page.Data {
		data = append(data, dto.NewPostResponse(&page.Data[i]))
	}
	return dto.PostPageResponse{
		Data:       data,
		Total:      page.Total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: page.TotalPages,
	}
}

func (h *PostHandler) ListPosts(c *gin.Context) {
	page, limit, ok := parsePagination(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pagination parameters"})
		return
	}

	result, err := h.posts.ListPosts(page, limit, c.Query("search"))
	if err != nil {
		h.logger.Error("failed to list posts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, pageResponse(result))
}

func (h *PostHandler) ListUserPosts(c *gin.Context) {
	page, limit, ok := parsePagination(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pagination parameters"})
		return
	}

	username := c.Param("username")
	result, err := h.posts.ListPostsByUser(username, page, limit)
	if err != nil {
		h.logger.Error("failed to list user posts", zap.String("username", username), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, pageResponse(result))
}

// CreatePost takes the author from the authenticated identity, never
// from the request body.
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "game and description are required"})
		return
	}

	author := c.GetString(middleware.UsernameKey)
	post, err := h.posts.CreatePost(author, req.Game, req.Description)
	if err != nil {
		h.logger.Error("failed to create post", zap.String("author", author), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, dto.NewPostResponse(post))
}

func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.posts.GetPost(c.Param("id"))
	if err != nil {
		h.logger.Error("failed to get post", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if post == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	c.JSON(http.StatusOK, dto.NewPostResponse(post))
}

func (h *PostHandler) ToggleVote(c *gin.Context) {
	username := c.GetString(middleware.UsernameKey)

	result, err := h.posts.ToggleVote(c.Param("id"), username)
	if err != nil {
		h.logger.Error("failed to toggle vote", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if result == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	c.JSON(http.StatusOK, dto.VoteResponse{Voted: result.Voted, VoteCount: result.VoteCount})
}
