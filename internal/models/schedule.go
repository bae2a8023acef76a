package models

// Schedule is a recurring weekly availability window. DayOfWeek follows ISO
// numbering (1 = Monday, 7 = Sunday); times are stored as zero-padded HH:MM:SS.
type Schedule struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID uint    `gorm:"not null;index" json:"barber"`
	Barber   Account `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"barber_detail"`

	DayOfWeek int    `gorm:"not null" json:"day_of_week"`
	StartTime string `gorm:"size:8;not null" json:"start_time"`
	EndTime   string `gorm:"size:8;not null" json:"end_time"`
	Active    bool   `gorm:"not null" json:"active"`
}
