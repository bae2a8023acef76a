package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/barbershop-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/usecase"
)

func (uc *Appointments) Confirm(ctx context.Context, id uint) (*models.Appointment, error) {
	return uc.transition(ctx, id, domain.Confirm, "appointment_confirmed")
}

func (uc *Appointments) Cancel(ctx context.Context, id uint) (*models.Appointment, error) {
	return uc.transition(ctx, id, domain.Cancel, "appointment_cancelled")
}

func (uc *Appointments) Complete(ctx context.Context, id uint) (*models.Appointment, error) {
	return uc.transition(ctx, id, domain.Complete, "appointment_completed")
}

func (uc *Appointments) transition(
	ctx context.Context,
	id uint,
	move func(*models.Appointment) error,
	action string,
) (*models.Appointment, error) {

	ap, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	from := ap.Status
	if err := move(ap); err != nil {
		return nil, err
	}

	if err := uc.repo.Save(ctx, ap); err != nil {
		return nil, err
	}

	usecase.Record(ctx, uc.audit, action, "appointment", ap.ID, map[string]string{
		"from": from,
		"to":   ap.Status,
	})

	return ap, nil
}
