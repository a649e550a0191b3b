package database

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"gamebuddy/internal/models"
)

// bcrypt cost used for all stored password hashes.
const passwordHashCost = 10

// RegisterUser creates a credential record for a new user. Returns false
// when the username is already taken. The existence check is a pre-read,
// not a database constraint, so two racing registrations for the same
// name can still collide on the unique primary key.
func (d *Database) RegisterUser(username, password string) (bool, error) {
	var count int64
	if err := d.db.Model(&models.Credential{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return false, err
	}

	cred := &models.Credential{
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := d.db.Create(cred).Error; err != nil {
		return false, err
	}

	return true, nil
}

// VerifyPassword reports whether the plaintext matches the stored hash.
// Unknown usernames and wrong passwords both come back as plain false so
// callers cannot tell which field was wrong.
func (d *Database) VerifyPassword(username, password string) (bool, error) {
	var cred models.Credential
	if err := d.db.First(&cred, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return false, nil
	}
	return true, nil
}
