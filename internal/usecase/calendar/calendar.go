package calendar

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barbershop-api/internal/apperr"
	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	"github.com/BruksfildServices01/barbershop-api/internal/domain"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/query"
	"github.com/BruksfildServices01/barbershop-api/internal/usecase"
)

type CalendarEventInput struct {
	Appointment     *uint      `json:"appointment"`
	ExternalEventID *string    `json:"external_event_id"`
	Provider        *string    `json:"provider"`
	SyncedAt        *time.Time `json:"synced_at"`
}

// Events stores external calendar sync records, at most one per
// appointment and provider.
type Events struct {
	store domain.Store[models.CalendarEvent]
	dir   domain.Directory
	audit *audit.Dispatcher
	now   func() time.Time
}

func New(store domain.Store[models.CalendarEvent], dir domain.Directory, d *audit.Dispatcher) *Events {
	return &Events{store: store, dir: dir, audit: d, now: time.Now}
}

func (uc *Events) List(ctx context.Context, q query.Query, page query.Page) ([]models.CalendarEvent, int64, error) {
	return uc.store.List(ctx, q, page)
}

func (uc *Events) Get(ctx context.Context, id uint) (*models.CalendarEvent, error) {
	return uc.store.Get(ctx, id)
}

func (uc *Events) Create(ctx context.Context, in CalendarEventInput) (*models.CalendarEvent, error) {
	ev := &models.CalendarEvent{}
	if err := uc.apply(ctx, ev, in, usecase.ModeCreate); err != nil {
		return nil, err
	}
	if ev.SyncedAt == nil {
		now := uc.now()
		ev.SyncedAt = &now
	}

	if err := uc.store.Create(ctx, ev); err != nil {
		return nil, err
	}

	usecase.Record(ctx, uc.audit, "calendar_event_created", "calendar_event", ev.ID, map[string]string{"provider": ev.Provider})
	return ev, nil
}

func (uc *Events) Update(ctx context.Context, id uint, in CalendarEventInput, mode usecase.Mode) (*models.CalendarEvent, error) {
	ev, err := uc.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uc.apply(ctx, ev, in, mode); err != nil {
		return nil, err
	}

	if err := uc.store.Save(ctx, ev); err != nil {
		return nil, err
	}

	usecase.Record(ctx, uc.audit, "calendar_event_updated", "calendar_event", ev.ID, nil)
	return ev, nil
}

func (uc *Events) Delete(ctx context.Context, id uint) error {
	if err := uc.store.Delete(ctx, id); err != nil {
		return err
	}
	usecase.Record(ctx, uc.audit, "calendar_event_deleted", "calendar_event", id, nil)
	return nil
}

func (uc *Events) apply(ctx context.Context, ev *models.CalendarEvent, in CalendarEventInput, mode usecase.Mode) error {
	verr := apperr.NewValidation()

	usecase.Require(verr, mode, "appointment", in.Appointment != nil)
	usecase.Require(verr, mode, "external_event_id", in.ExternalEventID != nil)
	usecase.Require(verr, mode, "provider", in.Provider != nil)

	if in.Appointment != nil {
		if err := usecase.AppointmentRef(ctx, uc.dir, verr, "appointment", *in.Appointment); err != nil {
			return err
		}
		ev.AppointmentID = *in.Appointment
	}
	if in.ExternalEventID != nil {
		usecase.NotBlank(verr, "external_event_id", *in.ExternalEventID)
		usecase.MaxLength(verr, "external_event_id", *in.ExternalEventID, 255)
		ev.ExternalEventID = *in.ExternalEventID
	}
	if in.Provider != nil {
		usecase.NotBlank(verr, "provider", *in.Provider)
		usecase.MaxLength(verr, "provider", *in.Provider, 50)
		ev.Provider = *in.Provider
	}
	if in.SyncedAt != nil {
		ev.SyncedAt = in.SyncedAt
	}

	return verr.Err()
}
