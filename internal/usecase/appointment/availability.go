package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/BruksfildServices01/barbershop-api/internal/apperr"
	domain "github.com/BruksfildServices01/barbershop-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-api/internal/domain/schedule"
	"github.com/BruksfildServices01/barbershop-api/internal/dto"
	"github.com/BruksfildServices01/barbershop-api/internal/timezone"
)

// Availability lists the free slots of the given length inside the
// barber's active schedules for the weekday of date.
func (uc *Appointments) Availability(
	ctx context.Context,
	barberID uint,
	date string,
	durationMinutes int,
) (*dto.AvailabilityDTO, error) {

	day, err := uc.day(date)
	if err != nil {
		return nil, err
	}
	if durationMinutes <= 0 || durationMinutes > MaxDurationMinutes {
		return nil, apperr.Invalid("duration", fmt.Sprintf("duration must be between 1 and %d.", MaxDurationMinutes))
	}

	if err := uc.requireBarber(ctx, barberID); err != nil {
		return nil, err
	}

	weekday := timezone.ISOWeekday(day)

	schedules, err := uc.repo.ListSchedules(ctx, barberID, weekday)
	if err != nil {
		return nil, err
	}

	windows := make([]domain.Window, 0, len(schedules))
	for _, s := range schedules {
		start, err1 := schedule.ParseClock(s.StartTime)
		end, err2 := schedule.ParseClock(s.EndTime)
		if err1 != nil || err2 != nil {
			continue
		}
		windows = append(windows, domain.Window{Start: start.On(day), End: end.On(day)})
	}

	booked, err := uc.repo.ListAppointmentsForPeriod(ctx, barberID, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	busy := make([]domain.Window, 0, len(booked))
	for i := range booked {
		busy = append(busy, domain.Window{
			Start: booked[i].AppointmentDatetime.In(uc.loc),
			End:   booked[i].End().In(uc.loc),
		})
	}

	return &dto.AvailabilityDTO{
		Barber:          barberID,
		Date:            day.Format("2006-01-02"),
		DayOfWeek:       weekday,
		DurationMinutes: durationMinutes,
		Slots:           domain.FreeSlots(windows, busy, time.Duration(durationMinutes)*time.Minute),
	}, nil
}

// Agenda lists the barber's booked appointments on date.
func (uc *Appointments) Agenda(ctx context.Context, barberID uint, date string) ([]dto.AppointmentListDTO, error) {
	day, err := uc.day(date)
	if err != nil {
		return nil, err
	}

	if err := uc.requireBarber(ctx, barberID); err != nil {
		return nil, err
	}

	appointments, err := uc.repo.ListAppointmentsForPeriod(ctx, barberID, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:              ap.ID,
			StartTime:       ap.AppointmentDatetime.In(uc.loc),
			EndTime:         ap.End().In(uc.loc),
			DurationMinutes: ap.DurationMinutes,
			Status:          ap.Status,
			ClientID:        ap.ClientID,
			ClientUsername:  ap.Client.Username,
			Notes:           ap.Notes,
		})
	}

	return out, nil
}

func (uc *Appointments) day(date string) (time.Time, error) {
	if date == "" {
		return time.Time{}, apperr.Invalid("date", "This field is required.")
	}
	day, err := timezone.ParseDay(date, uc.loc)
	if err != nil {
		return time.Time{}, apperr.Invalid("date", "Enter a valid date.")
	}
	return day, nil
}

func (uc *Appointments) requireBarber(ctx context.Context, barberID uint) error {
	ok, err := uc.repo.AccountExists(ctx, barberID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("account", barberID)
	}
	return nil
}
