package main

import (
	"github.com/gin-gonic/gin"

	"gamebuddy/internal/handlers"
	"gamebuddy/internal/middleware"
	"gamebuddy/pkg/auth"
)

func APIEndpoints(
	r *gin.Engine,
	authH *handlers.AuthHandler,
	profileH *handlers.ProfileHandler,
	postH *handlers.PostHandler,
	jwtMgr *auth.JWTManager,
	denylist *auth.Denylist,
) {
	requireAuth := middleware.AuthMiddleware(jwtMgr, denylist)

	// Auth endpoints
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authH.Register)
		authGroup.POST("/login", authH.Login)
		authGroup.POST("/verify", authH.Verify)
		authGroup.POST("/logout", requireAuth, authH.Logout)
	}

	// API endpoints, all behind the token gate
	api := r.Group("/api")
	api.Use(requireAuth)
	{
		api.GET("/posts", postH.ListPosts)
		api.POST("/posts", postH.CreatePost)
		api.GET("/posts/user/:username", postH.ListUserPosts)
		api.GET("/posts/:id", postH.GetPost)
		api.POST("/posts/:id/vote", postH.ToggleVote)

		api.GET("/profile/:username", profileH.GetProfile)
		api.PUT("/profile/:username", profileH.UpdateProfile)
		api.POST("/profile/:username/initialize", profileH.InitializeProfile)
		api.GET("/profile/:username/friends", profileH.ListFriends)
		api.POST("/profile/:username/friends", profileH.AddFriend)
		api.DELETE("/profile/:username/friends/:friendUsername", profileH.RemoveFriend)
	}
}
