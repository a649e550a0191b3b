package models

import (
	"time"

	"github.com/google/uuid"
)

type Post struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Author      string    `gorm:"not null;index"`
	Game        string    `gorm:"not null"`
	Description string    `gorm:"not null"`
	CreatedAt   time.Time

	Votes []Vote `gorm:"foreignKey:PostID"`
}

// Vote marks that a user has voted for a post. The composite primary key
// keeps a user from appearing twice in a post's vote set.
type Vote struct {
	PostID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username  string    `gorm:"primaryKey"`
	CreatedAt time.Time
}
