package models

import "time"

type Rating struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	AppointmentID uint `gorm:"not null;index" json:"appointment"`

	UserID uint     `gorm:"not null;index" json:"user"`
	User   *Account `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user_detail,omitempty"`

	Score   int    `gorm:"not null" json:"score"`
	Comment string `gorm:"type:text" json:"comment"`

	CreatedAt time.Time `json:"created_at"`
}
