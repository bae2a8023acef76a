package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/barbershop-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/query"
)

type AppointmentGormRepository struct {
	*GormStore[models.Appointment]
	*DirectoryGorm
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{
		GormStore:     NewGormStore[models.Appointment](db, query.Appointments),
		DirectoryGorm: NewDirectory(db),
		db:            db,
	}
}

// --------------------------------------------------
// Appointment (create / update)
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	return r.writeChecked(ctx, ap, func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(ap).Error
	})
}

func (r *AppointmentGormRepository) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	return r.writeChecked(ctx, ap, func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Save(ap).Error
	})
}

// writeChecked runs write under a transaction-scoped advisory lock on the
// barber so that two overlapping bookings cannot both pass the check.
func (r *AppointmentGormRepository) writeChecked(
	ctx context.Context,
	ap *models.Appointment,
	write func(tx *gorm.DB) error,
) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if occupiesBarber(ap) {
			if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", int64(ap.BarberID)).Error; err != nil {
				return err
			}

			conflict, err := hasTimeConflict(tx, ap)
			if err != nil {
				return err
			}
			if conflict {
				return domain.ErrTimeConflict
			}
		}

		return write(tx)
	})

	if err == domain.ErrTimeConflict {
		return err
	}
	return translate(query.Appointments.Name, ap.ID, err)
}

// occupiesBarber reports whether ap takes part in double-booking checks.
func occupiesBarber(ap *models.Appointment) bool {
	return ap.Active && domain.Status(ap.Status).Blocks()
}

// overlapping selects the other blocking appointments of ap's barber whose
// interval intersects ap's.
func overlapping(tx *gorm.DB, ap *models.Appointment) *gorm.DB {
	return tx.
		Model(&models.Appointment{}).
		Where("barber_id = ? AND active = ? AND status NOT IN ?",
			ap.BarberID, true, []string{string(domain.StatusCancelled), string(domain.StatusNoShow)}).
		Where("id <> ?", ap.ID).
		Where("appointment_datetime < ?", ap.End()).
		Where("appointment_datetime + (duration_minutes * interval '1 minute') > ?", ap.AppointmentDatetime)
}

func hasTimeConflict(tx *gorm.DB, ap *models.Appointment) (bool, error) {
	var count int64
	err := overlapping(tx, ap).Count(&count).Error
	return count > 0, err
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	err := r.db.WithContext(ctx).
		Where("barber_id = ? AND active = ? AND status NOT IN ?",
			barberID, true, []string{string(domain.StatusCancelled), string(domain.StatusNoShow)}).
		Where("appointment_datetime < ?", end).
		Where("appointment_datetime + (duration_minutes * interval '1 minute') > ?", start).
		Preload("Client").
		Order("appointment_datetime ASC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *AppointmentGormRepository) ListSchedules(
	ctx context.Context,
	barberID uint,
	dayOfWeek int,
) ([]models.Schedule, error) {

	var schedules []models.Schedule
	if err := r.db.WithContext(ctx).
		Where("barber_id = ? AND day_of_week = ? AND active = ?", barberID, dayOfWeek, true).
		Order("start_time ASC").
		Find(&schedules).Error; err != nil {
		return nil, err
	}

	return schedules, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
