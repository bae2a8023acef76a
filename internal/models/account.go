package models

import "time"

// Account is a system user. The credential hash never leaves the process.
type Account struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Username  string `gorm:"size:150;uniqueIndex;not null" json:"username"`
	FirstName string `gorm:"size:150" json:"first_name"`
	LastName  string `gorm:"size:150" json:"last_name"`
	Email     string `gorm:"size:254;index" json:"email"`
	IsActive  bool   `gorm:"not null" json:"is_active"`

	PasswordHash string `gorm:"size:255" json:"-"`

	DateJoined time.Time `gorm:"autoCreateTime" json:"date_joined"`
}
