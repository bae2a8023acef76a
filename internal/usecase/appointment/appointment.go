package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/BruksfildServices01/barbershop-api/internal/apperr"
	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	domain "github.com/BruksfildServices01/barbershop-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/query"
	"github.com/BruksfildServices01/barbershop-api/internal/usecase"
)

const (
	// DefaultDurationMinutes applies when a new appointment omits its length.
	DefaultDurationMinutes = 30
	// MaxDurationMinutes caps appointment lengths and availability steps at one day.
	MaxDurationMinutes = 24 * 60
)

// ======================================================
// INPUT
// ======================================================

type AppointmentInput struct {
	Client              *uint      `json:"client"`
	Barber              *uint      `json:"barber"`
	AppointmentDatetime *time.Time `json:"appointment_datetime"`
	DurationMinutes     *int       `json:"duration_minutes"`
	Status              *string    `json:"status"`
	Notes               *string    `json:"notes"`
	Active              *bool      `json:"active"`
}

// ======================================================
// USE CASE
// ======================================================

type Appointments struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	loc   *time.Location
}

func New(repo domain.Repository, d *audit.Dispatcher, loc *time.Location) *Appointments {
	if loc == nil {
		loc = time.UTC
	}
	return &Appointments{repo: repo, audit: d, loc: loc}
}

func (uc *Appointments) List(ctx context.Context, q query.Query, page query.Page) ([]models.Appointment, int64, error) {
	return uc.repo.List(ctx, q, page)
}

func (uc *Appointments) Get(ctx context.Context, id uint) (*models.Appointment, error) {
	return uc.repo.Get(ctx, id)
}

func (uc *Appointments) Create(ctx context.Context, in AppointmentInput) (*models.Appointment, error) {
	ap := &models.Appointment{
		DurationMinutes: DefaultDurationMinutes,
		Status:          string(domain.InitialStatus()),
		Active:          true,
	}

	if err := uc.apply(ctx, ap, in, usecase.ModeCreate); err != nil {
		return nil, err
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, conflictAsValidation(err)
	}

	usecase.Record(ctx, uc.audit, "appointment_created", "appointment", ap.ID, map[string]any{
		"client": ap.ClientID,
		"barber": ap.BarberID,
	})

	return uc.repo.Get(ctx, ap.ID)
}

func (uc *Appointments) Update(ctx context.Context, id uint, in AppointmentInput, mode usecase.Mode) (*models.Appointment, error) {
	ap, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uc.apply(ctx, ap, in, mode); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, conflictAsValidation(err)
	}

	usecase.Record(ctx, uc.audit, "appointment_updated", "appointment", ap.ID, nil)
	return uc.repo.Get(ctx, ap.ID)
}

// Deactivate clears the active flag. The slot is released for new bookings.
func (uc *Appointments) Deactivate(ctx context.Context, id uint) error {
	ap, err := uc.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	ap.Active = false
	if err := uc.repo.Save(ctx, ap); err != nil {
		return err
	}

	usecase.Record(ctx, uc.audit, "appointment_deactivated", "appointment", ap.ID, nil)
	return nil
}

// apply resolves the request against ap, runs the booking rules over the
// resolved state and only then writes the fields. On failure ap is left
// untouched.
func (uc *Appointments) apply(ctx context.Context, ap *models.Appointment, in AppointmentInput, mode usecase.Mode) error {
	verr := apperr.NewValidation()

	usecase.Require(verr, mode, "client", in.Client != nil)
	usecase.Require(verr, mode, "barber", in.Barber != nil)
	usecase.Require(verr, mode, "appointment_datetime", in.AppointmentDatetime != nil)

	clientID, barberID := ap.ClientID, ap.BarberID

	if in.Client != nil {
		if err := usecase.AccountRef(ctx, uc.repo, verr, "client", *in.Client); err != nil {
			return err
		}
		clientID = *in.Client
	}

	barberKnown := false
	if in.Barber != nil {
		before := len(verr.Fields)
		if err := usecase.AccountRef(ctx, uc.repo, verr, "barber", *in.Barber); err != nil {
			return err
		}
		barberKnown = len(verr.Fields) == before
		barberID = *in.Barber
	} else {
		barberKnown = barberID != 0
	}

	eligibility := domain.NoProfile
	if barberKnown {
		profile, err := uc.repo.ProfileFor(ctx, barberID)
		if err != nil {
			return err
		}
		eligibility = domain.EligibilityOf(profile)
	}

	status := domain.Status(ap.Status)
	if in.Status != nil {
		status = domain.Status(*in.Status)
	}

	if in.DurationMinutes != nil && *in.DurationMinutes > MaxDurationMinutes {
		verr.Add("duration_minutes", fmt.Sprintf("Ensure this value is less than or equal to %d.", MaxDurationMinutes))
	}

	if err := verr.Merge(domain.Validate(domain.Proposal{
		ClientID:        clientID,
		BarberID:        barberID,
		DurationMinutes: in.DurationMinutes,
		Status:          status,
		Barber:          eligibility,
	})); err != nil {
		return err
	}

	if err := verr.Err(); err != nil {
		return err
	}

	if clientID != ap.ClientID {
		ap.Client = models.Account{}
	}
	if barberID != ap.BarberID {
		ap.Barber = models.Account{}
	}
	ap.ClientID = clientID
	ap.BarberID = barberID
	ap.Status = string(status)

	if in.AppointmentDatetime != nil {
		ap.AppointmentDatetime = in.AppointmentDatetime.In(uc.loc)
	}
	if in.DurationMinutes != nil {
		ap.DurationMinutes = *in.DurationMinutes
	}
	if in.Notes != nil {
		ap.Notes = *in.Notes
	}
	if in.Active != nil {
		ap.Active = *in.Active
	}

	return nil
}

func conflictAsValidation(err error) error {
	if errors.Is(err, domain.ErrTimeConflict) {
		return apperr.Invalid("appointment_datetime", "The barber already has an appointment at this time.")
	}
	return err
}
