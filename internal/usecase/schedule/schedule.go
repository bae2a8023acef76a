package schedule

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/barbershop-api/internal/apperr"
	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	"github.com/BruksfildServices01/barbershop-api/internal/domain"
	rules "github.com/BruksfildServices01/barbershop-api/internal/domain/schedule"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/query"
	"github.com/BruksfildServices01/barbershop-api/internal/usecase"
)

type ScheduleInput struct {
	Barber    *uint   `json:"barber"`
	DayOfWeek *int    `json:"day_of_week"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	Active    *bool   `json:"active"`
}

type Schedules struct {
	store domain.Store[models.Schedule]
	dir   domain.Directory
	audit *audit.Dispatcher
}

func New(store domain.Store[models.Schedule], dir domain.Directory, d *audit.Dispatcher) *Schedules {
	return &Schedules{store: store, dir: dir, audit: d}
}

func (uc *Schedules) List(ctx context.Context, q query.Query, page query.Page) ([]models.Schedule, int64, error) {
	return uc.store.List(ctx, q, page)
}

func (uc *Schedules) Get(ctx context.Context, id uint) (*models.Schedule, error) {
	return uc.store.Get(ctx, id)
}

func (uc *Schedules) Create(ctx context.Context, in ScheduleInput) (*models.Schedule, error) {
	s := &models.Schedule{Active: true}
	if err := uc.apply(ctx, s, in, usecase.ModeCreate); err != nil {
		return nil, err
	}

	if err := uc.store.Create(ctx, s); err != nil {
		return nil, err
	}

	usecase.Record(ctx, uc.audit, "schedule_created", "schedule", s.ID, nil)
	return uc.store.Get(ctx, s.ID)
}

func (uc *Schedules) Update(ctx context.Context, id uint, in ScheduleInput, mode usecase.Mode) (*models.Schedule, error) {
	s, err := uc.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uc.apply(ctx, s, in, mode); err != nil {
		return nil, err
	}

	if err := uc.store.Save(ctx, s); err != nil {
		return nil, err
	}

	usecase.Record(ctx, uc.audit, "schedule_updated", "schedule", s.ID, nil)
	return uc.store.Get(ctx, s.ID)
}

func (uc *Schedules) Deactivate(ctx context.Context, id uint) error {
	s, err := uc.store.Get(ctx, id)
	if err != nil {
		return err
	}

	s.Active = false
	if err := uc.store.Save(ctx, s); err != nil {
		return err
	}

	usecase.Record(ctx, uc.audit, "schedule_deactivated", "schedule", s.ID, nil)
	return nil
}

// apply layers the request over s and validates the resulting window as a
// whole, so a partial update is checked against the stored times.
func (uc *Schedules) apply(ctx context.Context, s *models.Schedule, in ScheduleInput, mode usecase.Mode) error {
	verr := apperr.NewValidation()

	usecase.Require(verr, mode, "barber", in.Barber != nil)
	usecase.Require(verr, mode, "day_of_week", in.DayOfWeek != nil)
	usecase.Require(verr, mode, "start_time", in.StartTime != nil)
	usecase.Require(verr, mode, "end_time", in.EndTime != nil)

	if in.Barber != nil {
		if err := usecase.AccountRef(ctx, uc.dir, verr, "barber", *in.Barber); err != nil {
			return err
		}
		s.BarberID = *in.Barber
		s.Barber = models.Account{}
	}

	// Full writes never inherit stored values.
	var p rules.Proposal
	if !mode.RequiresAll() {
		p = rules.Proposal{DayOfWeek: s.DayOfWeek, StartTime: s.StartTime, EndTime: s.EndTime}
	}
	if in.DayOfWeek != nil {
		p.DayOfWeek = *in.DayOfWeek
	}
	if in.StartTime != nil {
		p.StartTime = *in.StartTime
	}
	if in.EndTime != nil {
		p.EndTime = *in.EndTime
	}

	if err := mergeUnreported(verr, rules.Validate(p)); err != nil {
		return err
	}
	if err := verr.Err(); err != nil {
		return err
	}

	p = rules.Normalize(p)
	s.DayOfWeek = p.DayOfWeek
	s.StartTime = p.StartTime
	s.EndTime = p.EndTime

	if in.Active != nil {
		s.Active = *in.Active
	}

	return nil
}

// mergeUnreported copies rule failures onto verr, skipping fields already
// reported as missing.
func mergeUnreported(verr *apperr.ValidationError, err error) error {
	var rv *apperr.ValidationError
	if !errors.As(err, &rv) {
		return err
	}
	for _, f := range rv.Fields {
		if !verr.Has(f.Field) {
			verr.Add(f.Field, f.Message)
		}
	}
	return nil
}
