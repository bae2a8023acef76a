package models

import "time"

const (
	RoleClient = "client"
	RoleBarber = "barber"
	RoleAdmin  = "admin"
)

var ProfileRoles = []string{RoleClient, RoleBarber, RoleAdmin}

type Profile struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AccountID uint    `gorm:"uniqueIndex;not null" json:"user"`
	Account   Account `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user_detail"`

	Role        string `gorm:"size:20;not null;index" json:"role"`
	PhoneNumber string `gorm:"size:20" json:"phone_number"`
	GoogleID    string `gorm:"size:255" json:"google_id"`
	Active      bool   `gorm:"not null" json:"active"`

	CreatedAt time.Time `json:"created_at"`
}
