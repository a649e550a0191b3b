package models

// Credential pairs a username with its bcrypt password hash. Rows are
// written once at registration and read on every login.
type Credential struct {
	Username     string `gorm:"primaryKey"`
	PasswordHash string `gorm:"not null"`
}
