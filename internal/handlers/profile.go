package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gamebuddy/internal/handlers/dto"
	"gamebuddy/internal/middleware"
	"gamebuddy/internal/models"
)

type ProfileHandler struct {
	profiles ProfileStore
	logger   *zap.Logger
}

func NewProfileHandler(profiles ProfileStore, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, logger: logger}
}

// isOwner reports whether the authenticated identity matches the
// :username path parameter. Mutating profile routes are owner-only.
func isOwner(c *gin.Context) bool {
	return c.GetString(middleware.UsernameKey) == c.Param("username")
}

func (h *ProfileHandler) profileResponse(profile *models.Profile) (*dto.ProfileResponse, error) {
	friends, err := h.profiles.ListFriends(profile.Username)
	if err != nil {
		return nil, err
	}
	return &dto.ProfileResponse{
		Username:   profile.Username,
		Email:      profile.Email,
		FriendList: friends,
		CreatedAt:  profile.CreatedAt,
		UpdatedAt:  profile.UpdatedAt,
	}, nil
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	username := c.Param("username")

	profile, err := h.profiles.GetProfile(username)
	if err != nil {
		h.logger.Error("failed to get profile", zap.String("username", username), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user profile not found"})
		return
	}

	resp, err := h.profileResponse(profile)
	if err != nil {
		h.logger.Error("failed to list friends", zap.String("username", username), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	username := c.Param("username")

	if !isOwner(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "you can only update your own profile"})
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	changed, err := h.profiles.UpdateProfile(username, req.Email)
	if err != nil {
		h.logger.Error("failed to update profile", zap.String("username", username), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if !changed {
		c.JSON(http.StatusNotFound, gin.H{"error": "user profile not found"})
		return
	}

	profile, err := h.profiles.GetProfile(username)
	if err != nil || profile == nil {
		h.logger.Error("failed to reload profile", zap.String("username", username), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	resp, err := h.profileResponse(profile)
	if err != nil {
		h.logger.Error("failed to list friends", zap.String("username", username), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) AddFriend(c *gin.Context) {
	username := c.Param("username")

	if !isOwner(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "you can only modify your own friend list"})
		return
	}

	var req dto.AddFriendRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.FriendUsername == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "friend username is required"})
		return
	}
	if req.FriendUsername == username {
		c.JSON(http.StatusBadRequest, gin.H{"error": "you cannot add yourself as a friend"})
		return
	}

	friendProfile, err := h.profiles.GetProfile(req.FriendUsername)
	if err != nil {
		h.logger.Error("failed to get friend profile", zap.String("friend", req.FriendUsername), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if friendProfile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "friend user not found"})
		return
	}

	added, err := h.profiles.AddFriend(username, req.FriendUsername)
	if err != nil {
		h.logger.Error("failed to add friend", zap.String("username", username), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if !added {
		c.JSON(http.StatusConflict, gin.H{"error": "friend already exists"})
		return
	}

	h.respondFriendList(c, username)
}

func (h *ProfileHandler) RemoveFriend(c *gin.Context) {
	username := c.Param("username")

	if !isOwner(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "you can only modify your own friend list"})
		return
	}

	removed, err := h.profiles.RemoveFriend(username, c.Param("friendUsername"))
	if err != nil {
		h.logger.Error("failed to remove friend", zap.String("username", username), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "friend not found in your friend list"})
		return
	}

	h.respondFriendList(c, username)
}

func (h *ProfileHandler) ListFriends(c *gin.Context) {
	h.respondFriendList(c, c.Param("username"))
}

func (h *ProfileHandler) respondFriendList(c *gin.Context, username string) {
	friends, err := h.profiles.ListFriends(username)
	if err != nil {
		h.logger.Error("failed to list friends", zap.String("username", username), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.FriendListResponse{FriendList: friends})
}

// InitializeProfile creates the profile if it does not exist yet, or
// updates it otherwise, optionally seeding the friend list. Friends are
// added through the normal AddFriend path, so the bidirectional edge and
// its checks apply to seeded entries too.
func (h *ProfileHandler) InitializeProfile(c *gin.Context) {
	username := c.Param("username")

	if !isOwner(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "you can only initialize your own profile"})
		return
	}

	var req dto.InitializeProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existing, err := h.profiles.GetProfile(username)
	if err != nil {
		h.logger.Error("failed to get profile", zap.String("username", username), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	status := http.StatusOK
	if existing == nil {
		email := ""
		if req.Email != nil {
			email = *req.Email
		}
		if _, err := h.profiles.CreateProfile(username, email); err != nil {
			h.logger.Error("failed to create profile", zap.String("username", username), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		status = http.StatusCreated
	} else if req.Email != nil {
		if _, err := h.profiles.UpdateProfile(username, req.Email); err != nil {
			h.logger.Error("failed to update profile", zap.String("username", username), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
	}

	for _, friend := range req.FriendList {
		// Duplicates, self-references and unknown users are rejected by
		// the store; seeding skips them rather than failing the request.
		if _, err := h.profiles.AddFriend(username, friend); err != nil {
			h.logger.Error("failed to seed friend", zap.String("username", username), zap.String("friend", friend), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
	}

	profile, err := h.profiles.GetProfile(username)
	if err != nil || profile == nil {
		h.logger.Error("failed to reload profile", zap.String("username", username), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	resp, err := h.profileResponse(profile)
	if err != nil {
		h.logger.Error("failed to list friends", zap.String("username", username), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, resp)
}
