package database

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gamebuddy/internal/models"
)

// PostPage is one page of posts plus the metadata a paginated listing
// carries.
type PostPage struct {
	Data       []models.Post
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// VoteResult reports the outcome of a vote toggle.
type VoteResult struct {
	Voted     bool
	VoteCount int
}

func (d *Database) CreatePost(author, game, description string) (*models.Post, error) {
	post := &models.Post{
		Author:      author,
		Game:        game,
		Description: description,
		CreatedAt:   time.Now(),
		Votes:       []models.Vote{},
	}
	if err := d.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// ListPosts returns posts newest-first. A non-empty search term matches
// case-insensitively as a substring of either the author or the game.
func (d *Database) ListPosts(page, limit int, search string) (*PostPage, error) {
	query := d.db.Model(&models.Post{})
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("author ILIKE ? OR game ILIKE ?", pattern, pattern)
	}
	return d.paginatePosts(query, page, limit)
}

// ListPostsByUser returns the given author's posts, newest-first.
func (d *Database) ListPostsByUser(username string, page, limit int) (*PostPage, error) {
	query := d.db.Model(&models.Post{}).Where("author = ?", username)
	return d.paginatePosts(query, page, limit)
}

func (d *Database) paginatePosts(query *gorm.DB, page, limit int) (*PostPage, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var posts []models.Post
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Preload("Votes").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []models.Post{}
	}

	return &PostPage{
		Data:       posts,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// GetPost returns nil without an error for an unknown or malformed id.
func (d *Database) GetPost(id string) (*models.Post, error) {
	postID, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}

	var post models.Post
	if err := d.db.Preload("Votes").First(&post, "id = ?", postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// ToggleVote flips the caller's membership in the post's vote set based
// on a fresh read: present removes, absent adds. The read-then-write
// pair is not isolated, so concurrent togglers for the same user/post
// land last-write-wins. Returns nil for an unknown post.
func (d *Database) ToggleVote(id, username string) (*VoteResult, error) {
	postID, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}

	var post models.Post
	if err := d.db.First(&post, "id = ?", postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var vote models.Vote
	err = d.db.First(&vote, "post_id = ? AND username = ?", postID, username).Error

	voted := false
	switch {
	case err == nil:
		err = d.db.Delete(&models.Vote{}, "post_id = ? AND username = ?", postID, username).Error
		if err != nil {
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		newVote := &models.Vote{PostID: postID, Username: username, CreatedAt: time.Now()}
		if err := d.db.Create(newVote).Error; err != nil {
			return nil, err
		}
		voted = true
	default:
		return nil, err
	}

	var count int64
	err = d.db.Model(&models.Vote{}).Where("post_id = ?", postID).Count(&count).Error
	if err != nil {
		return nil, err
	}

	return &VoteResult{Voted: voted, VoteCount: int(count)}, nil
}
