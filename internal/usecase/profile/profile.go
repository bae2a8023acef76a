package profile

import (
	"context"

	"github.com/BruksfildServices01/barbershop-api/internal/apperr"
	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	"github.com/BruksfildServices01/barbershop-api/internal/domain"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/query"
	"github.com/BruksfildServices01/barbershop-api/internal/usecase"
)

type ProfileInput struct {
	User        *uint   `json:"user"`
	Role        *string `json:"role"`
	PhoneNumber *string `json:"phone_number"`
	GoogleID    *string `json:"google_id"`
	Active      *bool   `json:"active"`
}

type Profiles struct {
	store domain.Store[models.Profile]
	dir   domain.Directory
	audit *audit.Dispatcher
}

func New(store domain.Store[models.Profile], dir domain.Directory, d *audit.Dispatcher) *Profiles {
	return &Profiles{store: store, dir: dir, audit: d}
}

func (uc *Profiles) List(ctx context.Context, q query.Query, page query.Page) ([]models.Profile, int64, error) {
	return uc.store.List(ctx, q, page)
}

func (uc *Profiles) Get(ctx context.Context, id uint) (*models.Profile, error) {
	return uc.store.Get(ctx, id)
}

func (uc *Profiles) Create(ctx context.Context, in ProfileInput) (*models.Profile, error) {
	p := &models.Profile{Active: true}
	if err := uc.apply(ctx, p, in, usecase.ModeCreate); err != nil {
		return nil, err
	}

	if err := uc.store.Create(ctx, p); err != nil {
		return nil, err
	}

	usecase.Record(ctx, uc.audit, "profile_created", "profile", p.ID, map[string]any{"role": p.Role})
	return uc.store.Get(ctx, p.ID)
}

func (uc *Profiles) Update(ctx context.Context, id uint, in ProfileInput, mode usecase.Mode) (*models.Profile, error) {
	p, err := uc.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uc.apply(ctx, p, in, mode); err != nil {
		return nil, err
	}

	if err := uc.store.Save(ctx, p); err != nil {
		return nil, err
	}

	usecase.Record(ctx, uc.audit, "profile_updated", "profile", p.ID, nil)
	return uc.store.Get(ctx, p.ID)
}

func (uc *Profiles) Deactivate(ctx context.Context, id uint) error {
	p, err := uc.store.Get(ctx, id)
	if err != nil {
		return err
	}

	p.Active = false
	if err := uc.store.Save(ctx, p); err != nil {
		return err
	}

	usecase.Record(ctx, uc.audit, "profile_deactivated", "profile", p.ID, nil)
	return nil
}

func (uc *Profiles) apply(ctx context.Context, p *models.Profile, in ProfileInput, mode usecase.Mode) error {
	verr := apperr.NewValidation()

	usecase.Require(verr, mode, "user", in.User != nil)
	usecase.Require(verr, mode, "role", in.Role != nil)

	if in.User != nil {
		if err := usecase.AccountRef(ctx, uc.dir, verr, "user", *in.User); err != nil {
			return err
		}
		p.AccountID = *in.User
		// The preloaded account no longer matches the new reference.
		p.Account = models.Account{}
	}
	if in.Role != nil {
		usecase.Choice(verr, "role", *in.Role, models.ProfileRoles)
		p.Role = *in.Role
	}
	if in.PhoneNumber != nil {
		usecase.MaxLength(verr, "phone_number", *in.PhoneNumber, 20)
		p.PhoneNumber = *in.PhoneNumber
	}
	if in.GoogleID != nil {
		usecase.MaxLength(verr, "google_id", *in.GoogleID, 255)
		p.GoogleID = *in.GoogleID
	}
	if in.Active != nil {
		p.Active = *in.Active
	}

	return verr.Err()
}
