package models

import "time"

type CalendarEvent struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	AppointmentID uint `gorm:"not null;uniqueIndex:idx_calendar_event_appointment_provider" json:"appointment"`

	ExternalEventID string     `gorm:"size:255;not null" json:"external_event_id"`
	Provider        string     `gorm:"size:50;not null;uniqueIndex:idx_calendar_event_appointment_provider" json:"provider"`
	SyncedAt        *time.Time `json:"synced_at"`
}
