package dto

import (
	"time"

	domain "github.com/BruksfildServices01/barbershop-api/internal/domain/appointment"
)

// AppointmentListDTO is one row of a barber's daily agenda.
type AppointmentListDTO struct {
	ID              uint      `json:"id"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	DurationMinutes int       `json:"duration_minutes"`
	Status          string    `json:"status"`
	ClientID        uint      `json:"client"`
	ClientUsername  string    `json:"client_username"`
	Notes           string    `json:"notes"`
}

type AvailabilityDTO struct {
	Barber          uint              `json:"barber"`
	Date            string            `json:"date"`
	DayOfWeek       int               `json:"day_of_week"`
	DurationMinutes int               `json:"duration_minutes"`
	Slots           []domain.TimeSlot `json:"slots"`
}
