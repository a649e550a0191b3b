package dto

import (
	"time"

	"gamebuddy/internal/models"
)

type CreatePostRequest struct {
	Game        string `json:"game" binding:"required"`
	Description string `json:"description" binding:"required"`
}

type PostResponse struct {
	ID          string    `json:"id"`
	User        string    `json:"user"`
	Game        string    `json:"game"`
	Description string    `json:"description"`
	Votes       []string  `json:"votes"`
	Timestamp   time.Time `json:"timestamp"`
}

type PostPageResponse struct {
	Data       []PostResponse `json:"data"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"totalPages"`
}

type VoteResponse struct {
	Voted     bool `json:"voted"`
	VoteCount int  `json:"voteCount"`
}

// NewPostResponse flattens a post's vote rows into the wire shape: a
// plain list of usernames.
func NewPostResponse(post *models.Post) PostResponse {
	votes := make([]string, 0, len(post.Votes))
	for _, v := range post.Votes {
		votes = append(votes, v.Username)
	}
	return PostResponse{
		ID:          post.ID.String(),
		User:        post.Author,
		Game:        post.Game,
		Description: post.Description,
		Votes:       votes,
		Timestamp:   post.CreatedAt,
	}
}
