package models

type Service struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	Name            string  `gorm:"size:100;not null" json:"name"`
	DurationMinutes int     `gorm:"not null" json:"duration_minutes"`
	Price           float64 `gorm:"type:numeric(10,2);not null" json:"price"`
	Description     string  `gorm:"type:text" json:"description"`
	Active          bool    `gorm:"not null" json:"active"`
}
