package models

import (
	"time"
)

type Profile struct {
	Username  string `gorm:"primaryKey"`
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Friendship is one directed edge of a bidirectional friendship. A
// friendship between A and B is stored as two rows, A->B and B->A, so
// each side keeps its own ordered friend list.
type Friendship struct {
	Username       string `gorm:"primaryKey"`
	FriendUsername string `gorm:"primaryKey"`
	CreatedAt      time.Time
}
