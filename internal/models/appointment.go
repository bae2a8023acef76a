package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint    `gorm:"not null;index" json:"client"`
	Client   Account `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"client_detail"`

	BarberID uint    `gorm:"not null;index" json:"barber"`
	Barber   Account `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"barber_detail"`

	AppointmentDatetime time.Time `gorm:"not null;index" json:"appointment_datetime"`
	DurationMinutes     int       `gorm:"not null" json:"duration_minutes"`

	Status string `gorm:"size:20;not null;index" json:"status"`
	Notes  string `gorm:"type:text" json:"notes"`
	Active bool   `gorm:"not null" json:"active"`

	CreatedAt time.Time `json:"created_at"`

	Ratings        []Rating        `gorm:"foreignKey:AppointmentID;constraint:OnDelete:CASCADE;" json:"ratings"`
	Payments       []Payment       `gorm:"foreignKey:AppointmentID;constraint:OnDelete:CASCADE;" json:"payments"`
	CalendarEvents []CalendarEvent `gorm:"foreignKey:AppointmentID;constraint:OnDelete:CASCADE;" json:"calendar_events"`
}

// End is the instant the appointment slot finishes.
func (a *Appointment) End() time.Time {
	return a.AppointmentDatetime.Add(time.Duration(a.DurationMinutes) * time.Minute)
}
