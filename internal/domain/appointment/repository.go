package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/barbershop-api/internal/domain"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
)

// ErrTimeConflict is returned when a write would double-book a barber.
var ErrTimeConflict = errors.New("time_conflict")

type Repository interface {
	domain.Store[models.Appointment]
	domain.Directory

	// -------- Appointment (create / update with conflict check) --------
	CreateAppointment(ctx context.Context, ap *models.Appointment) error
	UpdateAppointment(ctx context.Context, ap *models.Appointment) error

	// -------- Availability --------
	ListAppointmentsForPeriod(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListSchedules(ctx context.Context, barberID uint, dayOfWeek int) ([]models.Schedule, error)
}
