package database

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"gamebuddy/internal/models"
)

func (d *Database) CreateProfile(username, email string) (*models.Profile, error) {
	now := time.Now()
	profile := &models.Profile{
		Username:  username,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := d.db.Create(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

// GetProfile returns nil without an error when no profile exists.
func (d *Database) GetProfile(username string) (*models.Profile, error) {
	var profile models.Profile
	if err := d.db.First(&profile, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile applies the given email (when non-nil) and stamps
// updated_at. Returns false when no profile row matched.
func (d *Database) UpdateProfile(username string, email *string) (bool, error) {
	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if email != nil {
		updates["email"] = *email
	}

	result := d.db.Model(&models.Profile{}).Where("username = ?", username).Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// AddFriend creates the bidirectional friendship between two existing
// profiles. Returns false for self-friending, a missing profile on
// either side, or an edge that already exists. Both directed rows and
// both updated_at stamps go in one transaction.
func (d *Database) AddFriend(username, friendUsername string) (bool, error) {
	if username == friendUsername {
		return false, nil
	}

	profile, err := d.GetProfile(username)
	if err != nil {
		return false, err
	}
	if profile == nil {
		return false, nil
	}

	friend, err := d.GetProfile(friendUsername)
	if err != nil {
		return false, err
	}
	if friend == nil {
		return false, nil
	}

	var existing int64
	err = d.db.Model(&models.Friendship{}).
		Where("username = ? AND friend_username = ?", username, friendUsername).
		Count(&existing).Error
	if err != nil {
		return false, err
	}
	if existing > 0 {
		return false, nil
	}

	now := time.Now()
	err = d.db.Transaction(func(tx *gorm.DB) error {
		edges := []models.Friendship{
			{Username: username, FriendUsername: friendUsername, CreatedAt: now},
			{Username: friendUsername, FriendUsername: username, CreatedAt: now},
		}
		if err := tx.Create(&edges).Error; err != nil {
			return err
		}
		return tx.Model(&models.Profile{}).
			Where("username IN ?", []string{username, friendUsername}).
			Update("updated_at", now).Error
	})
	if err != nil {
		return false, err
	}

	return true, nil
}

// RemoveFriend deletes both directed edges and reports success if either
// side actually lost one. A half-removed edge (only one direction was
// present) still counts as removed; the graph is left as the deletes
// leave it, with no read-time repair.
func (d *Database) RemoveFriend(username, friendUsername string) (bool, error) {
	res1 := d.db.Delete(&models.Friendship{}, "username = ? AND friend_username = ?", username, friendUsername)
	if res1.Error != nil {
		return false, res1.Error
	}

	res2 := d.db.Delete(&models.Friendship{}, "username = ? AND friend_username = ?", friendUsername, username)
	if res2.Error != nil {
		return false, res2.Error
	}

	removed := res1.RowsAffected > 0 || res2.RowsAffected > 0
	if !removed {
		return false, nil
	}

	err := d.db.Model(&models.Profile{}).
		Where("username IN ?", []string{username, friendUsername}).
		Update("updated_at", time.Now()).Error
	if err != nil {
		return false, err
	}

	return true, nil
}

// ListFriends returns the user's friends in the order the edges were
// created. A missing profile yields an empty list, not an error.
func (d *Database) ListFriends(username string) ([]string, error) {
	var friends []string
	err := d.db.Model(&models.Friendship{}).
		Where("username = ?", username).
		Order("created_at ASC").
		Pluck("friend_username", &friends).Error
	if err != nil {
		return nil, err
	}
	if friends == nil {
		friends = []string{}
	}
	return friends, nil
}
