package handlers

import (
	"context"
	"time"

	"gamebuddy/internal/database"
	"gamebuddy/internal/models"
)

// Store interfaces declared on the consumer side so handlers can be
// tested against fakes. *database.Database satisfies all three.

type CredentialStore interface {
	RegisterUser(username, password string) (bool, error)
	VerifyPassword(username, password string) (bool, error)
}

type ProfileStore interface {
	CreateProfile(username, email string) (*models.Profile, error)
	GetProfile(username string) (*models.Profile, error)
	UpdateProfile(username string, email *string) (bool, error)
	AddFriend(username, friendUsername string) (bool, error)
	RemoveFriend(username, friendUsername string) (bool, error)
	ListFriends(username string) ([]string, error)
}

type PostStore interface {
	CreatePost(author, game, description string) (*models.Post, error)
	ListPosts(page, limit int, search string) (*database.PostPage, error)
	ListPostsByUser(username string, page, limit int) (*database.PostPage, error)
	GetPost(id string) (*models.Post, error)
	ToggleVote(id, username string) (*database.VoteResult, error)
}

// TokenDenylist is what the logout handler needs from the denylist.
type TokenDenylist interface {
	Add(ctx context.Context, token string, ttl time.Duration) error
}
