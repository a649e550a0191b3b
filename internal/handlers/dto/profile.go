package dto

import "time"

type ProfileResponse struct {
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	FriendList []string  `json:"friendList"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type UpdateProfileRequest struct {
	Email *string `json:"email"`
}

type AddFriendRequest struct {
	FriendUsername string `json:"friendUsername"`
}

type FriendListResponse struct {
	FriendList []string `json:"friendList"`
}

type InitializeProfileRequest struct {
	Email      *string  `json:"email"`
	FriendList []string `json:"friendList"`
}
