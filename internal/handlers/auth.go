package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gamebuddy/internal/handlers/dto"
	"gamebuddy/pkg/auth"
)

type AuthHandler struct {
	creds      CredentialStore
	profiles   ProfileStore
	jwtManager *auth.JWTManager
	denylist   TokenDenylist
	logger     *zap.Logger
}

func NewAuthHandler(creds CredentialStore, profiles ProfileStore, jwtMgr *auth.JWTManager, denylist TokenDenylist, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		creds:      creds,
		profiles:   profiles,
		jwtManager: jwtMgr,
		denylist:   denylist,
		logger:     logger,
	}
}

// Register creates a credential record and its profile. Duplicate
// usernames get a 409.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	created, err := h.creds.RegisterUser(req.Username, req.Password)
	if err != nil {
		h.logger.Error("failed to register user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if !created {
		c.JSON(http.StatusConflict, gin.H{"error": "user already exists"})
		return
	}

	if _, err := h.profiles.CreateProfile(req.Username, req.Email); err != nil {
		h.logger.Error("failed to create user profile", zap.String("username", req.Username), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "user registered successfully"})
}

// Login verifies credentials and issues a token. Unknown usernames and
// wrong passwords share one 401 body.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	valid, err := h.creds.VerifyPassword(req.Username, req.Password)
	if err != nil {
		h.logger.Error("failed to verify password", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if !valid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
		return
	}

	token, err := h.jwtManager.Generate(req.Username)
	if err != nil {
		h.logger.Error("failed to generate token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, Username: req.Username})
}

// Verify checks a username/password pair without issuing a token.
func (h *AuthHandler) Verify(c *gin.Context) {
	var req dto.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	valid, err := h.creds.VerifyPassword(req.Username, req.Password)
	if err != nil {
		h.logger.Error("failed to verify password", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	message := "Invalid username or password"
	if valid {
		message = "Password is correct"
	}
	c.JSON(http.StatusOK, dto.VerifyResponse{
		Username:      req.Username,
		PasswordValid: valid,
		Message:       message,
	})
}

// Logout denylists the presented token until it would have expired.
func (h *AuthHandler) Logout(c *gin.Context) {
	rawToken, err := auth.ExtractTokenFromHeader(c.Request)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	exp, err := h.jwtManager.Expiry(rawToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	if err := h.denylist.Add(c.Request.Context(), rawToken, time.Until(exp)); err != nil {
		h.logger.Error("failed to denylist token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Status(http.StatusOK)
}
